package coolprop

import (
	"context"
	"runtime"
	"slices"

	"github.com/coolprop/coolprop-go/pkg/coolprop/internal/backend"
)

// State wraps one native engine state object. It is created by NewState,
// mutated in place by Update and the fraction setters, queried by Get and the
// derivative methods, and released by Close. The native handle is owned
// exclusively by this State and is never exposed.
//
// A State must not be used from two goroutines at once; the native engine's
// per-handle operations are not internally synchronized. The safe pattern is
// one State per goroutine. Independent States may be used concurrently with
// no coordination, provided the configuration gateway is quiet (see the
// package documentation).
type State struct {
	st      *backend.State
	backend string
	fluids  []string
	updated bool
}

// NewState constructs a state for the given engine backend ("HEOS",
// "REFPROP", ...) and one fluid, or several fluids for a mixture. Arguments
// are validated before any native call; on engine failure no handle is
// retained and there is nothing to release.
//
// A finalizer releases the native handle if the caller forgets, but Close
// should be called explicitly: finalizers run late, and a tight
// create-and-drop loop can exhaust the engine before the collector catches
// up.
func NewState(backendName string, fluids ...string) (*State, error) {
	if backendName == "" {
		return nil, errInvalidInput("backend name must not be empty")
	}
	if err := checkNoNUL("backend", backendName); err != nil {
		return nil, err
	}
	if len(fluids) == 0 {
		return nil, errInvalidInput("at least one fluid is required")
	}
	for i, f := range fluids {
		if f == "" {
			return nil, errInvalidInput("fluid at index %d is empty", i)
		}
		if err := checkNoNUL("fluid", f); err != nil {
			return nil, err
		}
	}
	// Resolve the token tables before taking a handle so the first Update
	// does not interleave index lookups with the state's own calls.
	if _, err := loadIndices(); err != nil {
		return nil, err
	}

	st, err := backend.NewState(backendName, backend.JoinFluids(fluids))
	if err != nil {
		return nil, remapBackend(err)
	}

	s := &State{st: st, backend: backendName, fluids: slices.Clone(fluids)}
	runtime.SetFinalizer(s, func(s *State) { _ = s.Close() })
	logger().Debug(context.Background(), "state created", "backend", backendName, "fluids", s.fluids)
	return s, nil
}

// Close releases the native handle. It is nil-safe and idempotent; after the
// first call every other method fails with KindInvalidHandle. The release
// always happens even if the engine reports an error freeing.
func (s *State) Close() error {
	if s == nil || s.st == nil {
		return nil
	}
	runtime.SetFinalizer(s, nil)
	err := s.st.Free()
	s.st = nil
	s.updated = false
	logger().Debug(context.Background(), "state closed", "backend", s.backend, "fluids", s.fluids)
	return remapBackend(err)
}

// live returns the backend handle, or KindInvalidHandle if the State was
// closed or never constructed through NewState.
func (s *State) live() (*backend.State, error) {
	if s == nil || s.st == nil {
		return nil, errClosedState()
	}
	return s.st, nil
}

// Update sets the thermodynamic state from an input pair and its two values.
// Values are in SI units as defined by the pair. A failed update leaves the
// State live and usable with different inputs.
func (s *State) Update(pair InputPair, value1, value2 float64) error {
	st, err := s.live()
	if err != nil {
		return err
	}
	id, err := pairCode(pair)
	if err != nil {
		return err
	}
	if err := st.Update(id, value1, value2); err != nil {
		return remapBackend(err)
	}
	s.updated = true
	return nil
}

// UpdateDmolarT is shorthand for Update(PairDmolarT, dmolar, t).
func (s *State) UpdateDmolarT(dmolar, t float64) error {
	return s.Update(PairDmolarT, dmolar, t)
}

// Get reads one scalar property at the current state. A property undefined
// for the current phase (for example a two-phase-only quantity in a
// single-phase region) is an expected KindNativeFailure, not a programming
// error, and the State stays usable.
func (s *State) Get(p Param) (float64, error) {
	st, err := s.live()
	if err != nil {
		return 0, err
	}
	id, err := paramCode(p)
	if err != nil {
		return 0, err
	}
	v, err := st.KeyedOutput(id)
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}

// Pressure is shorthand for Get(ParamP).
func (s *State) Pressure() (float64, error) {
	return s.Get(ParamP)
}

// Backend returns the backend name the State was constructed with. No native
// call is made.
func (s *State) Backend() string {
	return s.backend
}

// Fluids returns the fluid names the State was constructed with. No native
// call is made.
func (s *State) Fluids() []string {
	return slices.Clone(s.fluids)
}

// BackendName asks the engine which backend actually implements this state.
// Usually matches Backend, but some backend selectors expand to another name.
func (s *State) BackendName() (string, error) {
	st, err := s.live()
	if err != nil {
		return "", err
	}
	name, err := st.BackendName()
	if err != nil {
		return "", remapBackend(err)
	}
	return name, nil
}

// FluidNames asks the engine for the expanded component list of this state.
func (s *State) FluidNames() ([]string, error) {
	st, err := s.live()
	if err != nil {
		return nil, err
	}
	raw, err := st.FluidNames()
	if err != nil {
		return nil, remapBackend(err)
	}
	return backend.SplitNames(raw), nil
}

// FluidParamString reads per-fluid string metadata ("aliases", "CAS",
// "formula", "JSON") through this state.
func (s *State) FluidParamString(param string) (string, error) {
	st, err := s.live()
	if err != nil {
		return "", err
	}
	if err := checkNoNUL("param", param); err != nil {
		return "", err
	}
	v, err := st.FluidParamString(param)
	if err != nil {
		return "", remapBackend(err)
	}
	return v, nil
}

// Phase reports the engine's phase classification of the current state.
func (s *State) Phase() (Phase, error) {
	st, err := s.live()
	if err != nil {
		return 0, err
	}
	code, err := st.Phase()
	if err != nil {
		return 0, remapBackend(err)
	}
	return phaseFromCode(code)
}

// SpecifyPhase constrains subsequent updates to the given phase branch.
// Useful for iterative schemes near phase boundaries. Undo with
// UnspecifyPhase.
func (s *State) SpecifyPhase(ph Phase) error {
	st, err := s.live()
	if err != nil {
		return err
	}
	token, ok := ph.specifier()
	if !ok {
		return errInvalidInput("phase value %d is out of range", int(ph))
	}
	return remapBackend(st.SpecifyPhase(token))
}

// UnspecifyPhase restores automatic phase detection.
func (s *State) UnspecifyPhase() error {
	st, err := s.live()
	if err != nil {
		return err
	}
	return remapBackend(st.UnspecifyPhase())
}

// Clone reconstructs an independent State with the same backend, fluids, and
// composition. The engine exposes no native clone entry point, so the clone
// is built from metadata; the thermodynamic point itself is not copied and
// the clone starts un-updated.
func (s *State) Clone() (*State, error) {
	if _, err := s.live(); err != nil {
		return nil, err
	}
	backendName, err := s.BackendName()
	if err != nil {
		return nil, err
	}
	fluids, err := s.FluidNames()
	if err != nil {
		return nil, err
	}
	clone, err := NewState(backendName, fluids...)
	if err != nil {
		return nil, err
	}
	if fractions, ferr := s.MoleFractions(); ferr == nil && len(fractions) > 1 {
		if serr := clone.SetMoleFractions(fractions); serr != nil {
			_ = clone.Close()
			return nil, serr
		}
	}
	return clone, nil
}
