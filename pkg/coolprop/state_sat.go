package coolprop

// Saturation-branch outputs. Meaningful when the current state is inside or
// on the two-phase dome; elsewhere the engine reports KindNativeFailure.

// SaturatedLiquid reads a property on the saturated-liquid branch at the
// current conditions.
func (s *State) SaturatedLiquid(p Param) (float64, error) {
	st, err := s.live()
	if err != nil {
		return 0, err
	}
	id, err := paramCode(p)
	if err != nil {
		return 0, err
	}
	v, err := st.SaturatedLiquidKeyedOutput(id)
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}

// SaturatedVapor reads a property on the saturated-vapor branch at the
// current conditions.
func (s *State) SaturatedVapor(p Param) (float64, error) {
	st, err := s.live()
	if err != nil {
		return 0, err
	}
	id, err := paramCode(p)
	if err != nil {
		return 0, err
	}
	v, err := st.SaturatedVaporKeyedOutput(id)
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}

// SaturationOutput reads a property on an explicit saturation branch. Only
// PhaseLiquid, PhaseGas, and PhaseTwoPhase name a branch; any other phase is
// rejected before the native call.
func (s *State) SaturationOutput(ph Phase, p Param) (float64, error) {
	st, err := s.live()
	if err != nil {
		return 0, err
	}
	token, ok := ph.saturationToken()
	if !ok {
		return 0, errInvalidInput("phase %s cannot be used for saturation outputs", ph)
	}
	id, err := paramCode(p)
	if err != nil {
		return 0, err
	}
	v, err := st.SaturationOutput(token, id)
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}
