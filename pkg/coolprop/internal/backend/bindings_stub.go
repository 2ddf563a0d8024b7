//go:build !cgo || windows

package backend

// Stub implementations for non-cgo builds and Windows. The package compiles,
// every native-backed entry point returns ErrNotBuilt, and the crossing
// counter still advances so call-counting tests behave the same on both
// builds.

func PropsSI(string, string, float64, string, float64, string) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func Props1SI(string, string) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func HAPropsSI(string, string, float64, string, float64, string, float64) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func PhaseSI(string, float64, string, float64, string) (string, error) {
	countCall()
	return "", ErrNotBuilt
}

func SetConfigBool(string, bool) error {
	countCall()
	return ErrNotBuilt
}

func SetConfigDouble(string, float64) error {
	countCall()
	return ErrNotBuilt
}

func SetConfigString(string, string) error {
	countCall()
	return ErrNotBuilt
}

func GetConfigBool(string) (bool, error) {
	countCall()
	return false, ErrNotBuilt
}

func GetConfigDouble(string) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func GetConfigString(string) (string, error) {
	countCall()
	return "", ErrNotBuilt
}

func GlobalParamString(string) (string, error) {
	countCall()
	return "", ErrNotBuilt
}

func FluidParamString(string, string) (string, error) {
	countCall()
	return "", ErrNotBuilt
}

func SetReferenceState(string, string) error {
	countCall()
	return ErrNotBuilt
}

func ParamIndex(string) (int64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func InputPairIndex(string) (int64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func NewState(string, string) (*State, error) {
	countCall()
	return nil, ErrNotBuilt
}

func (st *State) Free() error {
	countCall()
	return ErrNotBuilt
}

func (st *State) Update(int64, float64, float64) error {
	countCall()
	return ErrNotBuilt
}

func (st *State) KeyedOutput(int64) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) SpecifyPhase(string) error {
	countCall()
	return ErrNotBuilt
}

func (st *State) UnspecifyPhase() error {
	countCall()
	return ErrNotBuilt
}

func (st *State) Phase() (int64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) BackendName() (string, error) {
	countCall()
	return "", ErrNotBuilt
}

func (st *State) FluidNames() (string, error) {
	countCall()
	return "", ErrNotBuilt
}

func (st *State) FluidParamString(string) (string, error) {
	countCall()
	return "", ErrNotBuilt
}

func (st *State) SaturatedLiquidKeyedOutput(int64) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) SaturatedVaporKeyedOutput(int64) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) SaturationOutput(string, int64) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) FirstSaturationDeriv(int64, int64) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) FirstPartialDeriv(int64, int64, int64) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) SecondPartialDeriv(int64, int64, int64, int64, int64) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) FirstTwoPhaseDeriv(int64, int64, int64) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) FirstTwoPhaseDerivSplined(int64, int64, int64, float64) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) SecondTwoPhaseDeriv(int64, int64, int64, int64, int64) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) SetFractions([]float64) error {
	countCall()
	return ErrNotBuilt
}

func (st *State) SetMassFractions([]float64) error {
	countCall()
	return ErrNotBuilt
}

func (st *State) GetMoleFractions([]float64) (int64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) GetMassFractions([]float64) (int64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) GetMoleFractionsSatState(string, []float64) (int64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) GetFugacity(int64) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) GetFugacityCoefficient(int64) (float64, error) {
	countCall()
	return 0, ErrNotBuilt
}

func (st *State) UpdateAndCommonOut(int64, []float64, []float64, []float64, []float64, []float64, []float64, []float64) error {
	countCall()
	return ErrNotBuilt
}

func (st *State) UpdateAnd1Out(int64, []float64, []float64, int64, []float64) error {
	countCall()
	return ErrNotBuilt
}

func (st *State) UpdateAnd5Out(int64, []float64, []float64, []int64, []float64, []float64, []float64, []float64, []float64) error {
	countCall()
	return ErrNotBuilt
}

func (st *State) SetBinaryInteractionDouble(int64, int64, string, float64) error {
	countCall()
	return ErrNotBuilt
}

func (st *State) SetCubicAlphaC(int64, string, float64, float64, float64) error {
	countCall()
	return ErrNotBuilt
}

func (st *State) SetFluidParameterDouble(int64, string, float64) error {
	countCall()
	return ErrNotBuilt
}

func (st *State) BuildPhaseEnvelope(string) error {
	countCall()
	return ErrNotBuilt
}

func (st *State) GetPhaseEnvelopeData(int64, int64, []float64, []float64, []float64, []float64, []float64, []float64) (int64, int64, error) {
	countCall()
	return 0, 0, ErrNotBuilt
}

func (st *State) BuildSpinodal() error {
	countCall()
	return ErrNotBuilt
}

func (st *State) GetSpinodalData([]float64, []float64, []float64) error {
	countCall()
	return ErrNotBuilt
}

func (st *State) AllCriticalPoints([]float64, []float64, []float64, []int64) error {
	countCall()
	return ErrNotBuilt
}
