//go:build cgo && !windows

package backend

/*
#cgo CFLAGS: -I${SRCDIR}
#cgo linux LDFLAGS: -lCoolProp -ldl -lm
#cgo !linux LDFLAGS: -lCoolProp
#cgo darwin CFLAGS: -I/usr/local/include
#cgo darwin LDFLAGS: -L/usr/local/lib
#cgo linux CFLAGS: -I/usr/local/include
#cgo linux LDFLAGS: -L/usr/local/lib

#include <stdbool.h>
#include <stdlib.h>

// Prototypes for the CoolProp shared-library C surface (CoolPropLib.h).
// Declared here so the package builds against whichever installed copy of the
// library the linker flags select; the header itself ships with the engine.
double PropsSI(const char *output, const char *name1, double prop1, const char *name2, double prop2, const char *fluid);
double Props1SI(const char *fluid, const char *output);
double HAPropsSI(const char *output, const char *name1, double prop1, const char *name2, double prop2, const char *name3, double prop3);
long PhaseSI(const char *name1, double prop1, const char *name2, double prop2, const char *fluid, char *phase, int n);

long get_global_param_string(const char *param, char *out, int n);
long get_fluid_param_string(const char *fluid, const char *param, char *out, int n);
long get_param_index(const char *param);
long get_input_pair_index(const char *pair);
int set_reference_stateS(const char *fluid, const char *reference_state);

void set_config_bool(const char *key, bool value);
void set_config_double(const char *key, double value);
void set_config_string(const char *key, const char *value);
int get_config_bool(const char *key, bool *value);
int get_config_double(const char *key, double *value);
int get_config_string(const char *key, char *value, int n);

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

import (
	"unsafe"
)

// errScratch is the per-call errcode/message pair every AbstractState entry
// point writes into. Allocate one on the stack per crossing; never share.
type errScratch struct {
	code C.long
	buf  []byte
}

func newErrScratch() errScratch {
	return errScratch{buf: make([]byte, errBufLen)}
}

func (s *errScratch) codePtr() *C.long { return &s.code }

func (s *errScratch) msgPtr() *C.char {
	return (*C.char)(unsafe.Pointer(&s.buf[0]))
}

func (s *errScratch) msgLen() C.long { return C.long(len(s.buf)) }

// err converts the scratch into a *CallError, or nil on success. The buffer
// is force-terminated first; the engine does not guarantee a NUL when the
// message fills the buffer.
func (s *errScratch) err() error {
	if s.code == 0 {
		return nil
	}
	s.buf[len(s.buf)-1] = 0
	return &CallError{Code: int64(s.code), Message: goString(s.buf)}
}

// bufPtr returns a C pointer to a Go-allocated byte buffer. The buffer must
// outlive the crossing, which the callers guarantee by keeping the slice on
// their stack.
func bufPtr(buf []byte) *C.char {
	return (*C.char)(unsafe.Pointer(&buf[0]))
}

func doublePtr(v []float64) *C.double {
	if len(v) == 0 {
		return nil
	}
	return (*C.double)(unsafe.Pointer(&v[0]))
}

func longPtr(v []int64) *C.long {
	if len(v) == 0 {
		return nil
	}
	return (*C.long)(unsafe.Pointer(&v[0]))
}

// lastErrorString reads the process-wide errstring parameter. Must be called
// in the same frame as the failing call; the next crossing overwrites it.
// Reading also clears the engine's stored message.
func lastErrorString() string {
	countCall()

	param := C.CString("errstring")
	defer C.free(unsafe.Pointer(param))

	buf := make([]byte, strBufLen)
	status := C.get_global_param_string(param, bufPtr(buf), C.int(len(buf)))
	if status != 1 {
		return ""
	}
	buf[len(buf)-1] = 0
	return goString(buf)
}

// globalError captures errstring for a failed PropsSI-family or config call.
// An empty errstring still produces an error; silence never means success.
func globalError(context string) error {
	msg := lastErrorString()
	if msg == "" {
		msg = context + ": CoolProp reported failure without an error message"
	} else {
		msg = context + ": " + msg
	}
	return &GlobalError{Message: msg}
}

