package coolprop

// Mixture composition and per-component quantities.

// maxFractionComponents bounds the grow-and-retry loops for composition
// reads. No supported mixture comes close.
const maxFractionComponents = 1024

// SetMoleFractions sets the molar composition of a mixture. The engine
// requires composition to be fixed before the first Update; calling this
// afterward fails with KindUnsupported. Fractions should sum to one.
func (s *State) SetMoleFractions(fractions []float64) error {
	st, err := s.live()
	if err != nil {
		return err
	}
	if len(fractions) == 0 {
		return errInvalidInput("fractions must not be empty")
	}
	if s.updated {
		return errUnsupported("mixture fractions must be set before the first update")
	}
	return remapBackend(st.SetFractions(fractions))
}

// SetMassFractions sets the mass composition of a mixture, with the same
// ordering rule as SetMoleFractions.
func (s *State) SetMassFractions(fractions []float64) error {
	st, err := s.live()
	if err != nil {
		return err
	}
	if len(fractions) == 0 {
		return errInvalidInput("fractions must not be empty")
	}
	if s.updated {
		return errUnsupported("mixture fractions must be set before the first update")
	}
	return remapBackend(st.SetMassFractions(fractions))
}

// readFractions drives a backend composition getter with a growing buffer.
// The engine reports the needed count through an out-parameter when the
// buffer is large enough, and through an error message when it is not.
func (s *State) readFractions(get func(buf []float64) (int64, error)) ([]float64, error) {
	capacity := max(len(s.fluids), 1)
	for capacity <= maxFractionComponents {
		buf := make([]float64, capacity)
		n, err := get(buf)
		if err != nil {
			wrapped := remapBackend(err)
			if isBufferSizeError(wrapped) {
				capacity *= 2
				continue
			}
			return nil, wrapped
		}
		if n > int64(capacity) {
			capacity = int(max(n, int64(capacity)*2))
			continue
		}
		if n < 0 {
			n = 0
		}
		return buf[:n], nil
	}
	return nil, errInvalidInput("composition exceeds %d components", maxFractionComponents)
}

// MoleFractions returns the current molar composition.
func (s *State) MoleFractions() ([]float64, error) {
	st, err := s.live()
	if err != nil {
		return nil, err
	}
	return s.readFractions(st.GetMoleFractions)
}

// MassFractions returns the current mass composition.
func (s *State) MassFractions() ([]float64, error) {
	st, err := s.live()
	if err != nil {
		return nil, err
	}
	return s.readFractions(st.GetMassFractions)
}

// SaturationMoleFractions returns the molar composition on a saturation
// branch. Only PhaseLiquid, PhaseGas, and PhaseTwoPhase name a branch.
func (s *State) SaturationMoleFractions(ph Phase) ([]float64, error) {
	st, err := s.live()
	if err != nil {
		return nil, err
	}
	token, ok := ph.saturationToken()
	if !ok {
		return nil, errInvalidInput("phase %s cannot be used for saturation fractions", ph)
	}
	return s.readFractions(func(buf []float64) (int64, error) {
		return st.GetMoleFractionsSatState(token, buf)
	})
}

// Fugacity returns the fugacity of mixture component i, in Pa.
func (s *State) Fugacity(i int) (float64, error) {
	st, err := s.live()
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, errInvalidInput("component index must not be negative")
	}
	v, err := st.GetFugacity(int64(i))
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}

// FugacityCoefficient returns the dimensionless fugacity coefficient of
// mixture component i.
func (s *State) FugacityCoefficient(i int) (float64, error) {
	st, err := s.live()
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, errInvalidInput("component index must not be negative")
	}
	v, err := st.GetFugacityCoefficient(int64(i))
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}

// SetBinaryInteraction overrides a binary interaction parameter between
// mixture components i and j. parameter is the engine keyword (for example
// "betaT" or "kij").
func (s *State) SetBinaryInteraction(i, j int, parameter string, value float64) error {
	st, err := s.live()
	if err != nil {
		return err
	}
	if i < 0 || j < 0 {
		return errInvalidInput("component indices must not be negative")
	}
	if err := checkNoNUL("parameter", parameter); err != nil {
		return err
	}
	return remapBackend(st.SetBinaryInteractionDouble(int64(i), int64(j), parameter, value))
}

// SetCubicAlphaC sets the alpha-function constants for component i on a
// cubic-equation backend.
func (s *State) SetCubicAlphaC(i int, parameter string, c1, c2, c3 float64) error {
	st, err := s.live()
	if err != nil {
		return err
	}
	if i < 0 {
		return errInvalidInput("component index must not be negative")
	}
	if err := checkNoNUL("parameter", parameter); err != nil {
		return err
	}
	return remapBackend(st.SetCubicAlphaC(int64(i), parameter, c1, c2, c3))
}

// SetFluidParameter overrides a named scalar parameter of component i.
func (s *State) SetFluidParameter(i int, parameter string, value float64) error {
	st, err := s.live()
	if err != nil {
		return err
	}
	if i < 0 {
		return errInvalidInput("component index must not be negative")
	}
	if err := checkNoNUL("parameter", parameter); err != nil {
		return err
	}
	return remapBackend(st.SetFluidParameterDouble(int64(i), parameter, value))
}
