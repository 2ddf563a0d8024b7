package coolprop

// Derivative queries. All of them share Get's failure semantics: a
// derivative undefined at the current state is a KindNativeFailure and the
// State stays usable.

// resolveParams maps a fixed set of Params to native codes, failing fast on
// the first invalid one so no native call is made.
func (s *State) resolveParams(params ...Param) ([]int64, error) {
	ids := make([]int64, len(params))
	for i, p := range params {
		id, err := paramCode(p)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// FirstPartialDeriv evaluates d(of)/d(wrt) at constant `constant`.
func (s *State) FirstPartialDeriv(of, wrt, constant Param) (float64, error) {
	st, err := s.live()
	if err != nil {
		return 0, err
	}
	ids, err := s.resolveParams(of, wrt, constant)
	if err != nil {
		return 0, err
	}
	v, err := st.FirstPartialDeriv(ids[0], ids[1], ids[2])
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}

// SecondPartialDeriv evaluates the mixed second derivative
// d(d(of)/d(wrt1)|constant1)/d(wrt2) at constant `constant2`.
func (s *State) SecondPartialDeriv(of, wrt1, constant1, wrt2, constant2 Param) (float64, error) {
	st, err := s.live()
	if err != nil {
		return 0, err
	}
	ids, err := s.resolveParams(of, wrt1, constant1, wrt2, constant2)
	if err != nil {
		return 0, err
	}
	v, err := st.SecondPartialDeriv(ids[0], ids[1], ids[2], ids[3], ids[4])
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}

// FirstSaturationDeriv evaluates d(of)/d(wrt) along the saturation curve.
func (s *State) FirstSaturationDeriv(of, wrt Param) (float64, error) {
	st, err := s.live()
	if err != nil {
		return 0, err
	}
	ids, err := s.resolveParams(of, wrt)
	if err != nil {
		return 0, err
	}
	v, err := st.FirstSaturationDeriv(ids[0], ids[1])
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}

// FirstTwoPhaseDeriv evaluates a derivative inside the two-phase region.
func (s *State) FirstTwoPhaseDeriv(of, wrt, constant Param) (float64, error) {
	st, err := s.live()
	if err != nil {
		return 0, err
	}
	ids, err := s.resolveParams(of, wrt, constant)
	if err != nil {
		return 0, err
	}
	v, err := st.FirstTwoPhaseDeriv(ids[0], ids[1], ids[2])
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}

// FirstTwoPhaseDerivSplined evaluates a two-phase derivative using the
// engine's spline scheme, with the spline ending at quality xEnd.
func (s *State) FirstTwoPhaseDerivSplined(of, wrt, constant Param, xEnd float64) (float64, error) {
	st, err := s.live()
	if err != nil {
		return 0, err
	}
	ids, err := s.resolveParams(of, wrt, constant)
	if err != nil {
		return 0, err
	}
	v, err := st.FirstTwoPhaseDerivSplined(ids[0], ids[1], ids[2], xEnd)
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}

// SecondTwoPhaseDeriv evaluates a mixed second derivative inside the
// two-phase region.
func (s *State) SecondTwoPhaseDeriv(of, wrt1, constant1, wrt2, constant2 Param) (float64, error) {
	st, err := s.live()
	if err != nil {
		return 0, err
	}
	ids, err := s.resolveParams(of, wrt1, constant1, wrt2, constant2)
	if err != nil {
		return 0, err
	}
	v, err := st.SecondTwoPhaseDeriv(ids[0], ids[1], ids[2], ids[3], ids[4])
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}
