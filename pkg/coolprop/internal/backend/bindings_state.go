//go:build cgo && !windows

package backend

/*
#include <stdlib.h>

long AbstractState_factory(const char *backend, const char *fluids, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_free(long handle, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_update(long handle, long input_pair, double value1, double value2, long *errcode, char *message_buffer, long buffer_length);
double AbstractState_keyed_output(long handle, long param, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_specify_phase(long handle, const char *phase, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_unspecify_phase(long handle, long *errcode, char *message_buffer, long buffer_length);
long AbstractState_phase(long handle, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_backend_name(long handle, char *backend, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_fluid_names(long handle, char *fluids, long *errcode, char *message_buffer, long buffer_length);
long AbstractState_fluid_param_string(long handle, const char *param, char *out, long n, long *errcode, char *message_buffer, long buffer_length);
double AbstractState_saturated_liquid_keyed_output(long handle, long param, long *errcode, char *message_buffer, long buffer_length);
double AbstractState_saturated_vapor_keyed_output(long handle, long param, long *errcode, char *message_buffer, long buffer_length);
double AbstractState_keyed_output_satState(long handle, const char *saturated_state, long param, long *errcode, char *message_buffer, long buffer_length);
double AbstractState_first_saturation_deriv(long handle, long of, long wrt, long *errcode, char *message_buffer, long buffer_length);
double AbstractState_first_partial_deriv(long handle, long of, long wrt, long constant, long *errcode, char *message_buffer, long buffer_length);
double AbstractState_second_partial_deriv(long handle, long of1, long wrt1, long constant1, long wrt2, long constant2, long *errcode, char *message_buffer, long buffer_length);
double AbstractState_first_two_phase_deriv(long handle, long of, long wrt, long constant, long *errcode, char *message_buffer, long buffer_length);
double AbstractState_first_two_phase_deriv_splined(long handle, long of, long wrt, long constant, double x_end, long *errcode, char *message_buffer, long buffer_length);
double AbstractState_second_two_phase_deriv(long handle, long of, long wrt1, long constant1, long wrt2, long constant2, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_set_fractions(long handle, const double *fractions, long n, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_set_mass_fractions(long handle, const double *fractions, long n, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_get_mole_fractions(long handle, double *fractions, long maxn, long *n, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_get_mass_fractions(long handle, double *fractions, long maxn, long *n, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_get_mole_fractions_satState(long handle, const char *saturated_state, double *fractions, long maxn, long *n, long *errcode, char *message_buffer, long buffer_length);
double AbstractState_get_fugacity(long handle, long i, long *errcode, char *message_buffer, long buffer_length);
double AbstractState_get_fugacity_coefficient(long handle, long i, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_update_and_common_out(long handle, long input_pair, const double *value1, const double *value2, long length, double *t, double *p, double *rhomolar, double *hmolar, double *smolar, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_update_and_1_out(long handle, long input_pair, const double *value1, const double *value2, long length, long output, double *out, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_update_and_5_out(long handle, long input_pair, const double *value1, const double *value2, long length, long *outputs, double *out1, double *out2, double *out3, double *out4, double *out5, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_set_binary_interaction_double(long handle, long i, long j, const char *parameter, double value, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_set_cubic_alpha_C(long handle, long i, const char *parameter, double c1, double c2, double c3, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_set_fluid_parameter_double(long handle, long i, const char *parameter, double value, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_build_phase_envelope(long handle, const char *level, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_get_phase_envelope_data_checkedMemory(long handle, long length, long maxComponents, double *t, double *p, double *rhomolar_vap, double *rhomolar_liq, double *x, double *y, long *actual_length, long *actual_components, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_build_spinodal(long handle, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_get_spinodal_data(long handle, long length, double *tau, double *delta, double *m1, long *errcode, char *message_buffer, long buffer_length);
void AbstractState_all_critical_points(long handle, long length, double *t, double *p, double *rhomolar, long *stable, long *errcode, char *message_buffer, long buffer_length);
*/
import "C"

import "unsafe"

// NewState constructs a native state for the given backend and fluid string.
// Fluids are joined with '&' before the call; see JoinFluids.
func NewState(backendName, fluids string) (*State, error) {
	countCall()

	cBackend := C.CString(backendName)
	defer C.free(unsafe.Pointer(cBackend))
	cFluids := C.CString(fluids)
	defer C.free(unsafe.Pointer(cFluids))

	es := newErrScratch()
	h := C.AbstractState_factory(cBackend, cFluids, es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return nil, err
	}
	liveStates.Add(1)
	return &State{handle: int64(h)}, nil
}

// Free releases the native state. The handle must not be used afterwards,
// whatever the returned error says.
func (st *State) Free() error {
	countCall()

	es := newErrScratch()
	C.AbstractState_free(C.long(st.handle), es.codePtr(), es.msgPtr(), es.msgLen())
	liveStates.Add(-1)
	return es.err()
}

// Update sets the thermodynamic state from an input pair and two values.
func (st *State) Update(pair int64, value1, value2 float64) error {
	countCall()

	es := newErrScratch()
	C.AbstractState_update(C.long(st.handle), C.long(pair), C.double(value1), C.double(value2), es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}

// KeyedOutput reads a single output parameter at the current state.
func (st *State) KeyedOutput(param int64) (float64, error) {
	countCall()

	es := newErrScratch()
	v := C.AbstractState_keyed_output(C.long(st.handle), C.long(param), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return float64(v), nil
}

// SpecifyPhase pins the phase used by subsequent updates.
func (st *State) SpecifyPhase(phase string) error {
	countCall()

	cPhase := C.CString(phase)
	defer C.free(unsafe.Pointer(cPhase))

	es := newErrScratch()
	C.AbstractState_specify_phase(C.long(st.handle), cPhase, es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}

// UnspecifyPhase restores automatic phase detection.
func (st *State) UnspecifyPhase() error {
	countCall()

	es := newErrScratch()
	C.AbstractState_unspecify_phase(C.long(st.handle), es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}

// Phase reports the engine's phase index for the current state.
func (st *State) Phase() (int64, error) {
	countCall()

	es := newErrScratch()
	v := C.AbstractState_phase(C.long(st.handle), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return int64(v), nil
}

// BackendName reports the name of the backend implementing this state.
func (st *State) BackendName() (string, error) {
	countCall()

	buf := make([]byte, strBufLen)
	es := newErrScratch()
	C.AbstractState_backend_name(C.long(st.handle), bufPtr(buf), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return "", err
	}
	return goString(buf), nil
}

// FluidNames reports the engine's delimited fluid list for this state.
func (st *State) FluidNames() (string, error) {
	countCall()

	buf := make([]byte, strBufLen)
	es := newErrScratch()
	C.AbstractState_fluid_names(C.long(st.handle), bufPtr(buf), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return "", err
	}
	return goString(buf), nil
}

// FluidParamString reads a per-fluid string parameter through the state.
func (st *State) FluidParamString(param string) (string, error) {
	cParam := C.CString(param)
	defer C.free(unsafe.Pointer(cParam))

	for n := 256; n <= maxStringBufLen; n *= 2 {
		countCall()
		buf := make([]byte, n)
		es := newErrScratch()
		C.AbstractState_fluid_param_string(C.long(st.handle), cParam, bufPtr(buf), C.long(len(buf)), es.codePtr(), es.msgPtr(), es.msgLen())
		if err := es.err(); err != nil {
			return "", err
		}
		if bufferSaturated(buf) {
			continue
		}
		return goString(buf), nil
	}
	return "", &GlobalError{Message: "fluid_param_string(" + param + "): response exceeds buffer cap"}
}

// SaturatedLiquidKeyedOutput reads an output on the saturated-liquid branch.
func (st *State) SaturatedLiquidKeyedOutput(param int64) (float64, error) {
	countCall()

	es := newErrScratch()
	v := C.AbstractState_saturated_liquid_keyed_output(C.long(st.handle), C.long(param), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return float64(v), nil
}

// SaturatedVaporKeyedOutput reads an output on the saturated-vapor branch.
func (st *State) SaturatedVaporKeyedOutput(param int64) (float64, error) {
	countCall()

	es := newErrScratch()
	v := C.AbstractState_saturated_vapor_keyed_output(C.long(st.handle), C.long(param), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return float64(v), nil
}

// SaturationOutput reads an output on a named saturation branch
// ("liquid", "gas", "twophase").
func (st *State) SaturationOutput(satState string, param int64) (float64, error) {
	countCall()

	cSat := C.CString(satState)
	defer C.free(unsafe.Pointer(cSat))

	es := newErrScratch()
	v := C.AbstractState_keyed_output_satState(C.long(st.handle), cSat, C.long(param), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return float64(v), nil
}

// FirstSaturationDeriv evaluates d(of)/d(wrt) along the saturation curve.
func (st *State) FirstSaturationDeriv(of, wrt int64) (float64, error) {
	countCall()

	es := newErrScratch()
	v := C.AbstractState_first_saturation_deriv(C.long(st.handle), C.long(of), C.long(wrt), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return float64(v), nil
}

// FirstPartialDeriv evaluates d(of)/d(wrt) at constant constant.
func (st *State) FirstPartialDeriv(of, wrt, constant int64) (float64, error) {
	countCall()

	es := newErrScratch()
	v := C.AbstractState_first_partial_deriv(C.long(st.handle), C.long(of), C.long(wrt), C.long(constant), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return float64(v), nil
}

// SecondPartialDeriv evaluates a second mixed partial derivative.
func (st *State) SecondPartialDeriv(of1, wrt1, constant1, wrt2, constant2 int64) (float64, error) {
	countCall()

	es := newErrScratch()
	v := C.AbstractState_second_partial_deriv(C.long(st.handle), C.long(of1), C.long(wrt1), C.long(constant1), C.long(wrt2), C.long(constant2), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return float64(v), nil
}

// FirstTwoPhaseDeriv evaluates a two-phase derivative.
func (st *State) FirstTwoPhaseDeriv(of, wrt, constant int64) (float64, error) {
	countCall()

	es := newErrScratch()
	v := C.AbstractState_first_two_phase_deriv(C.long(st.handle), C.long(of), C.long(wrt), C.long(constant), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return float64(v), nil
}

// FirstTwoPhaseDerivSplined evaluates a splined two-phase derivative with
// the spline ending at quality xEnd.
func (st *State) FirstTwoPhaseDerivSplined(of, wrt, constant int64, xEnd float64) (float64, error) {
	countCall()

	es := newErrScratch()
	v := C.AbstractState_first_two_phase_deriv_splined(C.long(st.handle), C.long(of), C.long(wrt), C.long(constant), C.double(xEnd), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return float64(v), nil
}

// SecondTwoPhaseDeriv evaluates a second two-phase derivative.
func (st *State) SecondTwoPhaseDeriv(of, wrt1, constant1, wrt2, constant2 int64) (float64, error) {
	countCall()

	es := newErrScratch()
	v := C.AbstractState_second_two_phase_deriv(C.long(st.handle), C.long(of), C.long(wrt1), C.long(constant1), C.long(wrt2), C.long(constant2), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return float64(v), nil
}

// SetFractions sets mole fractions for a mixture.
func (st *State) SetFractions(fractions []float64) error {
	countCall()

	es := newErrScratch()
	C.AbstractState_set_fractions(C.long(st.handle), doublePtr(fractions), C.long(len(fractions)), es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}

// SetMassFractions sets mass fractions for a mixture.
func (st *State) SetMassFractions(fractions []float64) error {
	countCall()

	es := newErrScratch()
	C.AbstractState_set_mass_fractions(C.long(st.handle), doublePtr(fractions), C.long(len(fractions)), es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}

// GetMoleFractions fills buf with the current mole fractions and reports how
// many components the engine holds. The count may exceed len(buf), in which
// case the caller retries with a larger buffer.
func (st *State) GetMoleFractions(buf []float64) (int64, error) {
	countCall()

	var n C.long
	es := newErrScratch()
	C.AbstractState_get_mole_fractions(C.long(st.handle), doublePtr(buf), C.long(len(buf)), &n, es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return int64(n), nil
}

// GetMassFractions fills buf with the current mass fractions; same contract
// as GetMoleFractions.
func (st *State) GetMassFractions(buf []float64) (int64, error) {
	countCall()

	var n C.long
	es := newErrScratch()
	C.AbstractState_get_mass_fractions(C.long(st.handle), doublePtr(buf), C.long(len(buf)), &n, es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return int64(n), nil
}

// GetMoleFractionsSatState fills buf with mole fractions on a saturation
// branch; same contract as GetMoleFractions.
func (st *State) GetMoleFractionsSatState(satState string, buf []float64) (int64, error) {
	countCall()

	cSat := C.CString(satState)
	defer C.free(unsafe.Pointer(cSat))

	var n C.long
	es := newErrScratch()
	C.AbstractState_get_mole_fractions_satState(C.long(st.handle), cSat, doublePtr(buf), C.long(len(buf)), &n, es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return int64(n), nil
}

// GetFugacity reads the fugacity of mixture component i in Pa.
func (st *State) GetFugacity(i int64) (float64, error) {
	countCall()

	es := newErrScratch()
	v := C.AbstractState_get_fugacity(C.long(st.handle), C.long(i), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return float64(v), nil
}

// GetFugacityCoefficient reads the fugacity coefficient of component i.
func (st *State) GetFugacityCoefficient(i int64) (float64, error) {
	countCall()

	es := newErrScratch()
	v := C.AbstractState_get_fugacity_coefficient(C.long(st.handle), C.long(i), es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return 0, err
	}
	return float64(v), nil
}

// UpdateAndCommonOut updates across the input arrays and writes the five
// common outputs. All slices share one length, validated by the caller.
func (st *State) UpdateAndCommonOut(pair int64, value1, value2, t, p, rhomolar, hmolar, smolar []float64) error {
	countCall()

	es := newErrScratch()
	C.AbstractState_update_and_common_out(C.long(st.handle), C.long(pair),
		doublePtr(value1), doublePtr(value2), C.long(len(value1)),
		doublePtr(t), doublePtr(p), doublePtr(rhomolar), doublePtr(hmolar), doublePtr(smolar),
		es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}

// UpdateAnd1Out updates across the input arrays and writes one chosen output.
func (st *State) UpdateAnd1Out(pair int64, value1, value2 []float64, output int64, out []float64) error {
	countCall()

	es := newErrScratch()
	C.AbstractState_update_and_1_out(C.long(st.handle), C.long(pair),
		doublePtr(value1), doublePtr(value2), C.long(len(value1)),
		C.long(output), doublePtr(out),
		es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}

// UpdateAnd5Out updates across the input arrays and writes five chosen
// outputs. The engine may rewrite outputs in place.
func (st *State) UpdateAnd5Out(pair int64, value1, value2 []float64, outputs []int64, out1, out2, out3, out4, out5 []float64) error {
	countCall()

	es := newErrScratch()
	C.AbstractState_update_and_5_out(C.long(st.handle), C.long(pair),
		doublePtr(value1), doublePtr(value2), C.long(len(value1)),
		longPtr(outputs),
		doublePtr(out1), doublePtr(out2), doublePtr(out3), doublePtr(out4), doublePtr(out5),
		es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}

// SetBinaryInteractionDouble sets a binary interaction parameter between
// mixture components i and j.
func (st *State) SetBinaryInteractionDouble(i, j int64, parameter string, value float64) error {
	countCall()

	cParam := C.CString(parameter)
	defer C.free(unsafe.Pointer(cParam))

	es := newErrScratch()
	C.AbstractState_set_binary_interaction_double(C.long(st.handle), C.long(i), C.long(j), cParam, C.double(value), es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}

// SetCubicAlphaC sets the alpha-function constants for component i on a
// cubic backend.
func (st *State) SetCubicAlphaC(i int64, parameter string, c1, c2, c3 float64) error {
	countCall()

	cParam := C.CString(parameter)
	defer C.free(unsafe.Pointer(cParam))

	es := newErrScratch()
	C.AbstractState_set_cubic_alpha_C(C.long(st.handle), C.long(i), cParam, C.double(c1), C.double(c2), C.double(c3), es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}

// SetFluidParameterDouble sets a named double parameter for component i.
func (st *State) SetFluidParameterDouble(i int64, parameter string, value float64) error {
	countCall()

	cParam := C.CString(parameter)
	defer C.free(unsafe.Pointer(cParam))

	es := newErrScratch()
	C.AbstractState_set_fluid_parameter_double(C.long(st.handle), C.long(i), cParam, C.double(value), es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}

// BuildPhaseEnvelope computes the phase envelope at the given refinement
// level. Pass "" for the engine default.
func (st *State) BuildPhaseEnvelope(level string) error {
	countCall()

	cLevel := C.CString(level)
	defer C.free(unsafe.Pointer(cLevel))

	es := newErrScratch()
	C.AbstractState_build_phase_envelope(C.long(st.handle), cLevel, es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}

// GetPhaseEnvelopeData copies envelope data into the given buffers and
// reports the actual point and component counts. A zero-length query is the
// documented way to size the buffers.
func (st *State) GetPhaseEnvelopeData(length, maxComponents int64, t, p, rhoVap, rhoLiq, x, y []float64) (actualLength, actualComponents int64, err error) {
	countCall()

	var alen, acomp C.long
	es := newErrScratch()
	C.AbstractState_get_phase_envelope_data_checkedMemory(C.long(st.handle), C.long(length), C.long(maxComponents),
		doublePtr(t), doublePtr(p), doublePtr(rhoVap), doublePtr(rhoLiq), doublePtr(x), doublePtr(y),
		&alen, &acomp,
		es.codePtr(), es.msgPtr(), es.msgLen())
	if err := es.err(); err != nil {
		return int64(alen), int64(acomp), err
	}
	return int64(alen), int64(acomp), nil
}

// BuildSpinodal computes the spinodal curve for the current composition.
func (st *State) BuildSpinodal() error {
	countCall()

	es := newErrScratch()
	C.AbstractState_build_spinodal(C.long(st.handle), es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}

// GetSpinodalData copies spinodal data into the buffers. All three share
// len(tau); the engine leaves unused tail entries untouched.
func (st *State) GetSpinodalData(tau, delta, m1 []float64) error {
	countCall()

	es := newErrScratch()
	C.AbstractState_get_spinodal_data(C.long(st.handle), C.long(len(tau)),
		doublePtr(tau), doublePtr(delta), doublePtr(m1),
		es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}

// AllCriticalPoints copies candidate critical points into the buffers. All
// four share len(t); unused tail entries are untouched.
func (st *State) AllCriticalPoints(t, p, rhomolar []float64, stable []int64) error {
	countCall()

	es := newErrScratch()
	C.AbstractState_all_critical_points(C.long(st.handle), C.long(len(t)),
		doublePtr(t), doublePtr(p), doublePtr(rhomolar), longPtr(stable),
		es.codePtr(), es.msgPtr(), es.msgLen())
	return es.err()
}
