package coolprop

import (
	"math"

	"github.com/coolprop/coolprop-go/pkg/coolprop/internal/backend"
)

// Phase-envelope, spinodal, and critical-point extraction for mixtures.

// PhaseEnvelope holds the saturation boundary of a mixture. The composition
// matrices are indexed [component][point].
type PhaseEnvelope struct {
	Temperature []float64 // K
	Pressure    []float64 // Pa
	RhomolarLiq []float64 // mol/m^3, saturated-liquid branch
	RhomolarVap []float64 // mol/m^3, saturated-vapor branch
	X           [][]float64
	Y           [][]float64
}

// SpinodalCurve holds spinodal sample points in reduced coordinates.
type SpinodalCurve struct {
	Tau   []float64 // Tc / T
	Delta []float64 // rho / rho_c
	M1    []float64 // leading stability eigenvalue
}

// CriticalPoint is one critical-point candidate of a mixture.
type CriticalPoint struct {
	Temperature float64 // K
	Pressure    float64 // Pa
	Rhomolar    float64 // mol/m^3
	Stable      bool
}

// BuildPhaseEnvelope computes the phase envelope for the current composition.
// level selects the engine's refinement level; pass "" for the default. The
// envelope is then read with PhaseEnvelope.
func (s *State) BuildPhaseEnvelope(level string) error {
	st, err := s.live()
	if err != nil {
		return err
	}
	if err := checkNoNUL("level", level); err != nil {
		return err
	}
	return remapBackend(st.BuildPhaseEnvelope(level))
}

const (
	envelopeDefaultPoints = 256
	maxEnvelopePoints     = 1 << 16
)

// PhaseEnvelope reads back the envelope built by BuildPhaseEnvelope. The
// engine negotiates sizes through a zero-length probe call; if it rejects the
// probe, the read falls back to guessed sizes and grows on demand. An empty
// envelope is a valid result.
func (s *State) PhaseEnvelope() (*PhaseEnvelope, error) {
	st, err := s.live()
	if err != nil {
		return nil, err
	}

	points, components, err := st.GetPhaseEnvelopeData(0, 0, nil, nil, nil, nil, nil, nil)
	if err != nil {
		wrapped := remapBackend(err)
		if !isBufferSizeError(wrapped) {
			return nil, wrapped
		}
		points = envelopeDefaultPoints
		components = int64(max(len(s.fluids), 1))
	}
	if points <= 0 && components <= 0 {
		return &PhaseEnvelope{}, nil
	}
	if points <= 0 {
		points = envelopeDefaultPoints
	}
	if components <= 0 {
		components = 1
	}

	for points <= maxEnvelopePoints {
		n := int(points)
		c := int(components)
		t := make([]float64, n)
		p := make([]float64, n)
		rhoVap := make([]float64, n)
		rhoLiq := make([]float64, n)
		x := make([]float64, n*c)
		y := make([]float64, n*c)

		gotPoints, gotComponents, err := st.GetPhaseEnvelopeData(points, components, t, p, rhoVap, rhoLiq, x, y)
		if err != nil {
			wrapped := remapBackend(err)
			if isBufferSizeError(wrapped) {
				points = max(points, 1) * 2
				components = max(components, 1) * 2
				continue
			}
			return nil, wrapped
		}
		if gotPoints > points || gotComponents > components {
			points = max(points, gotPoints) * 2
			components = max(components, gotComponents)
			continue
		}

		np := int(max(gotPoints, 0))
		nc := int(max(gotComponents, 0))
		env := &PhaseEnvelope{
			Temperature: t[:np],
			Pressure:    p[:np],
			RhomolarLiq: rhoLiq[:np],
			RhomolarVap: rhoVap[:np],
		}
		if np > 0 && nc > 0 {
			env.X = backend.ReshapeCompositions(x[:np*nc], np, nc)
			env.Y = backend.ReshapeCompositions(y[:np*nc], np, nc)
		}
		return env, nil
	}
	return nil, errInvalidInput("phase envelope exceeds %d points", maxEnvelopePoints)
}

// BuildSpinodal computes the spinodal curve for the current composition.
func (s *State) BuildSpinodal() error {
	st, err := s.live()
	if err != nil {
		return err
	}
	return remapBackend(st.BuildSpinodal())
}

const maxSpinodalPoints = 8192

// SpinodalData reads the spinodal curve built by BuildSpinodal. The engine
// fills a prefix of the caller's buffers and leaves the rest as NaN, so the
// filled length is detected and the buffers regrown while they saturate.
func (s *State) SpinodalData() (*SpinodalCurve, error) {
	st, err := s.live()
	if err != nil {
		return nil, err
	}
	for capacity := 256; ; capacity *= 2 {
		tau := nanSlice(capacity)
		delta := nanSlice(capacity)
		m1 := nanSlice(capacity)
		if err := st.GetSpinodalData(tau, delta, m1); err != nil {
			return nil, remapBackend(err)
		}
		n := backend.FilledPrefix(tau, delta, m1)
		if n >= capacity && capacity < maxSpinodalPoints {
			continue
		}
		return &SpinodalCurve{Tau: tau[:n], Delta: delta[:n], M1: m1[:n]}, nil
	}
}

const maxCriticalPoints = 64

// CriticalPoints enumerates the critical-point candidates of the current
// mixture with the engine's stability flags.
func (s *State) CriticalPoints() ([]CriticalPoint, error) {
	st, err := s.live()
	if err != nil {
		return nil, err
	}
	for capacity := 4; ; capacity *= 2 {
		t := nanSlice(capacity)
		p := nanSlice(capacity)
		rho := nanSlice(capacity)
		stable := make([]int64, capacity)
		for i := range stable {
			stable[i] = -1
		}
		if err := st.AllCriticalPoints(t, p, rho, stable); err != nil {
			return nil, remapBackend(err)
		}

		// The engine writes a prefix; entries past the last physically
		// meaningful point stay NaN or non-positive.
		count := 0
		for i := 0; i < capacity; i++ {
			if finite(t[i]) && finite(p[i]) && finite(rho[i]) && t[i] > 0 && p[i] > 0 {
				count = i + 1
			}
		}
		if count >= capacity && capacity < maxCriticalPoints {
			continue
		}
		out := make([]CriticalPoint, count)
		for i := range out {
			out[i] = CriticalPoint{
				Temperature: t[i],
				Pressure:    p[i],
				Rhomolar:    rho[i],
				Stable:      stable[i] != 0,
			}
		}
		return out, nil
	}
}

func nanSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
