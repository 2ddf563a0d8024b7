package coolprop

// Batched updates: one native crossing evaluates a whole array of state
// points on the same handle. The handle's current state afterwards is that of
// the last input point.

// BatchCommon holds the five common outputs produced by UpdateBatch. All
// slices share the length of the input arrays.
type BatchCommon struct {
	Temperature []float64 // K
	Pressure    []float64 // Pa
	Rhomolar    []float64 // mol/m^3
	Hmolar      []float64 // J/mol
	Smolar      []float64 // J/(mol*K)
}

func (s *State) checkBatchInputs(value1, value2 []float64) error {
	if len(value1) != len(value2) {
		return errInvalidInput("value arrays must be the same length (got %d and %d)", len(value1), len(value2))
	}
	if len(value1) == 0 {
		return errInvalidInput("value arrays must not be empty")
	}
	return nil
}

// UpdateBatch updates across the input arrays and returns temperature,
// pressure, molar density, molar enthalpy, and molar entropy for every point.
func (s *State) UpdateBatch(pair InputPair, value1, value2 []float64) (*BatchCommon, error) {
	st, err := s.live()
	if err != nil {
		return nil, err
	}
	if err := s.checkBatchInputs(value1, value2); err != nil {
		return nil, err
	}
	id, err := pairCode(pair)
	if err != nil {
		return nil, err
	}
	n := len(value1)
	out := &BatchCommon{
		Temperature: make([]float64, n),
		Pressure:    make([]float64, n),
		Rhomolar:    make([]float64, n),
		Hmolar:      make([]float64, n),
		Smolar:      make([]float64, n),
	}
	if err := st.UpdateAndCommonOut(id, value1, value2, out.Temperature, out.Pressure, out.Rhomolar, out.Hmolar, out.Smolar); err != nil {
		return nil, remapBackend(err)
	}
	s.updated = true
	return out, nil
}

// UpdateBatchOutput updates across the input arrays and returns one chosen
// output per point.
func (s *State) UpdateBatchOutput(pair InputPair, value1, value2 []float64, out Param) ([]float64, error) {
	st, err := s.live()
	if err != nil {
		return nil, err
	}
	if err := s.checkBatchInputs(value1, value2); err != nil {
		return nil, err
	}
	id, err := pairCode(pair)
	if err != nil {
		return nil, err
	}
	outID, err := paramCode(out)
	if err != nil {
		return nil, err
	}
	result := make([]float64, len(value1))
	if err := st.UpdateAnd1Out(id, value1, value2, outID, result); err != nil {
		return nil, remapBackend(err)
	}
	s.updated = true
	return result, nil
}

// UpdateBatchOutputs updates across the input arrays and returns five chosen
// outputs per point, in the order given.
func (s *State) UpdateBatchOutputs(pair InputPair, value1, value2 []float64, outs [5]Param) ([5][]float64, error) {
	var result [5][]float64
	st, err := s.live()
	if err != nil {
		return result, err
	}
	if err := s.checkBatchInputs(value1, value2); err != nil {
		return result, err
	}
	id, err := pairCode(pair)
	if err != nil {
		return result, err
	}
	outIDs := make([]int64, len(outs))
	for i, p := range outs {
		outID, perr := paramCode(p)
		if perr != nil {
			return result, perr
		}
		outIDs[i] = outID
	}
	n := len(value1)
	for i := range result {
		result[i] = make([]float64, n)
	}
	if err := st.UpdateAnd5Out(id, value1, value2, outIDs, result[0], result[1], result[2], result[3], result[4]); err != nil {
		return [5][]float64{}, remapBackend(err)
	}
	s.updated = true
	return result, nil
}
