package coolprop

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/coolprop/coolprop-go/pkg/coolprop/internal/backend"
)

// requireEngine skips tests that need a linked native engine.
func requireEngine(t *testing.T) *State {
	t.Helper()
	s, err := NewState("HEOS", "Water")
	if errors.Is(err, ErrNotBuilt) {
		t.Skip("native engine not linked into this build")
	}
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStateZeroValueRejected(t *testing.T) {
	var s State
	if err := s.Update(PairPT, 101325, 300); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("Update on zero-value State: got %v, want KindInvalidHandle", err)
	}
	if _, err := s.Get(ParamT); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("Get on zero-value State: got %v, want KindInvalidHandle", err)
	}
}

func TestStateCloseNilSafe(t *testing.T) {
	var s *State
	if err := s.Close(); err != nil {
		t.Fatalf("Close on nil State: %v", err)
	}
	var zero State
	if err := zero.Close(); err != nil {
		t.Fatalf("Close on zero-value State: %v", err)
	}
}

func TestNewStateValidation(t *testing.T) {
	cases := []struct {
		name    string
		backend string
		fluids  []string
	}{
		{"empty backend", "", []string{"Water"}},
		{"no fluids", "HEOS", nil},
		{"empty fluid", "HEOS", []string{"Water", ""}},
		{"NUL in backend", "HE\x00OS", []string{"Water"}},
		{"NUL in fluid", "HEOS", []string{"Wat\x00er"}},
	}
	for _, tc := range cases {
		before := backend.Calls()
		if _, err := NewState(tc.backend, tc.fluids...); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: got %v, want KindInvalidInput", tc.name, err)
		}
		if got := backend.Calls(); got != before {
			t.Errorf("%s: made %d native calls, want 0", tc.name, got-before)
		}
	}
}

func TestStateDoubleClose(t *testing.T) {
	s := requireEngine(t)
	if err := s.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, err := s.Get(ParamT); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("Get after Close: got %v, want KindInvalidHandle", err)
	}
	if err := s.Update(PairPT, 101325, 300); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("Update after Close: got %v, want KindInvalidHandle", err)
	}
}

func TestStateRoundTrip(t *testing.T) {
	s := requireEngine(t)
	if err := s.Update(PairPT, 101325, 300); err != nil {
		t.Fatalf("Update: %v", err)
	}
	rho, err := s.Get(ParamDmass)
	if err != nil {
		t.Fatalf("Get Dmass: %v", err)
	}
	// Water at 1 atm, 300 K.
	const want = 996.556
	if math.Abs(rho-want) > want*0.01 {
		t.Fatalf("Dmass = %g, want %g within 1%%", rho, want)
	}

	ph, err := s.Phase()
	if err != nil {
		t.Fatalf("Phase: %v", err)
	}
	if ph != PhaseLiquid {
		t.Fatalf("Phase = %v, want liquid", ph)
	}

	p, err := s.Pressure()
	if err != nil {
		t.Fatalf("Pressure: %v", err)
	}
	if math.Abs(p-101325) > 1 {
		t.Fatalf("Pressure = %g, want 101325", p)
	}
}

func TestStateLifecycleLeak(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping leak loop in short mode")
	}
	requireEngine(t) // skip early if the engine is absent

	start := backend.LiveStates()
	for i := 0; i < 10000; i++ {
		s, err := NewState("HEOS", "Water")
		if err != nil {
			t.Fatalf("iteration %d: NewState: %v", i, err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("iteration %d: Close: %v", i, err)
		}
	}
	if got := backend.LiveStates(); got != start {
		t.Fatalf("live handles after loop: %d, want %d", got, start)
	}
}

func TestNewStateFailureLeavesNothingLive(t *testing.T) {
	requireEngine(t)

	start := backend.LiveStates()
	if _, err := NewState("HEOS", "NotAFluid"); !errors.Is(err, ErrNativeFailure) {
		t.Fatalf("NewState with bogus fluid: got %v, want KindNativeFailure", err)
	}
	if got := backend.LiveStates(); got != start {
		t.Fatalf("live handles after failed construction: %d, want %d", got, start)
	}
}

func TestStateUsableAfterFailedUpdate(t *testing.T) {
	s := requireEngine(t)

	// Deliberately impossible inputs: negative pressure.
	if err := s.Update(PairPT, -1, 300); err == nil {
		t.Fatal("Update with negative pressure succeeded")
	}

	if err := s.Update(PairPT, 101325, 300); err != nil {
		t.Fatalf("Update after failure: %v", err)
	}
	if _, err := s.Get(ParamHmass); err != nil {
		t.Fatalf("Get after recovery: %v", err)
	}
}

func TestStateErrorTextIsFresh(t *testing.T) {
	s := requireEngine(t)

	err1 := s.Update(PairPT, -1, 300)
	if err1 == nil {
		t.Fatal("first bad update succeeded")
	}
	err2 := s.Update(PairQT, 2.0, 300) // quality out of [0,1]
	if err2 == nil {
		t.Fatal("second bad update succeeded")
	}
	// Different failures must not report each other's message.
	if err1.Error() == err2.Error() {
		t.Fatalf("distinct failures share message %q", err1.Error())
	}
}

func TestFractionOrderingEnforced(t *testing.T) {
	s, err := NewState("HEOS", "Methane", "Ethane")
	if errors.Is(err, ErrNotBuilt) {
		t.Skip("native engine not linked into this build")
	}
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	defer s.Close()

	if err := s.SetMoleFractions([]float64{0.4, 0.6}); err != nil {
		t.Fatalf("SetMoleFractions before update: %v", err)
	}
	if err := s.Update(PairPT, 101325, 300); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := s.SetMoleFractions([]float64{0.5, 0.5}); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("SetMoleFractions after update: got %v, want KindUnsupported", err)
	}
}

func TestStateMetadata(t *testing.T) {
	s := requireEngine(t)

	if got := s.Backend(); got != "HEOS" {
		t.Fatalf("Backend = %q", got)
	}
	if got := s.Fluids(); len(got) != 1 || got[0] != "Water" {
		t.Fatalf("Fluids = %v", got)
	}

	name, err := s.BackendName()
	if err != nil {
		t.Fatalf("BackendName: %v", err)
	}
	if name == "" {
		t.Fatal("BackendName is empty")
	}
	fluids, err := s.FluidNames()
	if err != nil {
		t.Fatalf("FluidNames: %v", err)
	}
	if len(fluids) != 1 {
		t.Fatalf("FluidNames = %v", fluids)
	}
}

func TestStateClone(t *testing.T) {
	s := requireEngine(t)
	clone, err := s.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	defer clone.Close()

	if err := clone.Update(PairPT, 101325, 300); err != nil {
		t.Fatalf("Update on clone: %v", err)
	}
	// The original is untouched by the clone's update.
	if err := s.Update(PairPT, 200000, 320); err != nil {
		t.Fatalf("Update on original: %v", err)
	}
	tOrig, err := s.Get(ParamT)
	if err != nil {
		t.Fatalf("Get on original: %v", err)
	}
	tClone, err := clone.Get(ParamT)
	if err != nil {
		t.Fatalf("Get on clone: %v", err)
	}
	if tOrig == tClone {
		t.Fatal("original and clone share state")
	}
}

func TestConcurrentStatesMatchSequential(t *testing.T) {
	requireEngine(t)

	points := []struct{ p, temp float64 }{
		{101325, 290}, {101325, 300}, {101325, 310},
		{200000, 290}, {200000, 300}, {200000, 310},
		{500000, 290}, {500000, 300},
	}

	// Sequential reference on one state.
	ref := make([]float64, len(points))
	seq := requireEngine(t)
	for i, pt := range points {
		if err := seq.Update(PairPT, pt.p, pt.temp); err != nil {
			t.Fatalf("sequential Update %d: %v", i, err)
		}
		h, err := seq.Get(ParamHmass)
		if err != nil {
			t.Fatalf("sequential Get %d: %v", i, err)
		}
		ref[i] = h
	}

	// One independent state per goroutine, no coordination.
	got := make([]float64, len(points))
	var g errgroup.Group
	for i, pt := range points {
		i, pt := i, pt
		g.Go(func() error {
			s, err := NewState("HEOS", "Water")
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.Update(PairPT, pt.p, pt.temp); err != nil {
				return err
			}
			h, err := s.Get(ParamHmass)
			if err != nil {
				return err
			}
			got[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent worker: %v", err)
	}
	for i := range points {
		if got[i] != ref[i] {
			t.Errorf("point %d: concurrent Hmass %g != sequential %g", i, got[i], ref[i])
		}
	}
}

func TestBatchInputValidation(t *testing.T) {
	s := requireEngine(t)

	if _, err := s.UpdateBatch(PairPT, []float64{1, 2}, []float64{1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("mismatched lengths: got %v, want KindInvalidInput", err)
	}
	if _, err := s.UpdateBatch(PairPT, nil, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty arrays: got %v, want KindInvalidInput", err)
	}
}

func TestBatchAgainstScalar(t *testing.T) {
	s := requireEngine(t)

	ps := []float64{101325, 150000, 200000}
	ts := []float64{290, 300, 310}
	out, err := s.UpdateBatch(PairPT, ps, ts)
	if err != nil {
		t.Fatalf("UpdateBatch: %v", err)
	}

	check := requireEngine(t)
	for i := range ps {
		if err := check.Update(PairPT, ps[i], ts[i]); err != nil {
			t.Fatalf("scalar Update %d: %v", i, err)
		}
		h, err := check.Get(ParamHmolar)
		if err != nil {
			t.Fatalf("scalar Get %d: %v", i, err)
		}
		if math.Abs(out.Hmolar[i]-h) > math.Abs(h)*1e-9 {
			t.Errorf("point %d: batch Hmolar %g != scalar %g", i, out.Hmolar[i], h)
		}
	}

	single, err := s.UpdateBatchOutput(PairPT, ps, ts, ParamHmolar)
	if err != nil {
		t.Fatalf("UpdateBatchOutput: %v", err)
	}
	for i := range ps {
		if math.Abs(single[i]-out.Hmolar[i]) > math.Abs(out.Hmolar[i])*1e-9 {
			t.Errorf("point %d: one-output batch %g != common batch %g", i, single[i], out.Hmolar[i])
		}
	}
}
