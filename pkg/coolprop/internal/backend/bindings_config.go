//go:build cgo && !windows

package backend

/*
#include <stdbool.h>
#include <stdlib.h>

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
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// maxStringBufLen bounds the grow-and-retry loops for string-returning
// queries. The fluids list is the largest known response at roughly 100KiB.
const maxStringBufLen = 1 << 20

// configCall wraps a void config setter. The engine reports setter failures
// only through errstring, so the stored message is drained first and checked
// again right after the call. An empty message afterwards means success.
func configCall(context string, fn func()) error {
	_ = lastErrorString()
	fn()
	if msg := lastErrorString(); msg != "" {
		return &GlobalError{Message: context + ": " + msg}
	}
	return nil
}

// SetConfigBool sets a boolean configuration key.
func SetConfigBool(key string, value bool) error {
	cKey := C.CString(key)
	defer C.free(unsafe.Pointer(cKey))

	return configCall("set_config_bool("+key+")", func() {
		countCall()
		C.set_config_bool(cKey, C.bool(value))
	})
}

// SetConfigDouble sets a floating-point configuration key.
func SetConfigDouble(key string, value float64) error {
	cKey := C.CString(key)
	defer C.free(unsafe.Pointer(cKey))

	return configCall("set_config_double("+key+")", func() {
		countCall()
		C.set_config_double(cKey, C.double(value))
	})
}

// SetConfigString sets a string configuration key.
func SetConfigString(key, value string) error {
	cKey := C.CString(key)
	defer C.free(unsafe.Pointer(cKey))
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))

	return configCall("set_config_string("+key+")", func() {
		countCall()
		C.set_config_string(cKey, cValue)
	})
}

// GetConfigBool reads a boolean configuration key.
func GetConfigBool(key string) (bool, error) {
	countCall()

	cKey := C.CString(key)
	defer C.free(unsafe.Pointer(cKey))

	var value C.bool
	if C.get_config_bool(cKey, &value) != 1 {
		return false, globalError("get_config_bool(" + key + ")")
	}
	return bool(value), nil
}

// GetConfigDouble reads a floating-point configuration key.
func GetConfigDouble(key string) (float64, error) {
	countCall()

	cKey := C.CString(key)
	defer C.free(unsafe.Pointer(cKey))

	var value C.double
	if C.get_config_double(cKey, &value) != 1 {
		return 0, globalError("get_config_double(" + key + ")")
	}
	return float64(value), nil
}

// GetConfigString reads a string configuration key.
func GetConfigString(key string) (string, error) {
	cKey := C.CString(key)
	defer C.free(unsafe.Pointer(cKey))

	for n := 256; n <= maxStringBufLen; n *= 2 {
		countCall()
		buf := make([]byte, n)
		if C.get_config_string(cKey, bufPtr(buf), C.int(len(buf))) != 1 {
			return "", globalError("get_config_string(" + key + ")")
		}
		if bufferSaturated(buf) {
			continue
		}
		return goString(buf), nil
	}
	return "", &GlobalError{Message: fmt.Sprintf("get_config_string(%s): response exceeds %d bytes", key, maxStringBufLen)}
}

// GlobalParamString reads a process-wide string parameter such as the fluids
// list, the version, or the git revision.
func GlobalParamString(param string) (string, error) {
	cParam := C.CString(param)
	defer C.free(unsafe.Pointer(cParam))

	for n := 256; n <= maxStringBufLen; n *= 2 {
		countCall()
		buf := make([]byte, n)
		if C.get_global_param_string(cParam, bufPtr(buf), C.int(len(buf))) != 1 {
			return "", globalError("get_global_param_string(" + param + ")")
		}
		if bufferSaturated(buf) {
			continue
		}
		return goString(buf), nil
	}
	return "", &GlobalError{Message: fmt.Sprintf("get_global_param_string(%s): response exceeds %d bytes", param, maxStringBufLen)}
}

// FluidParamString reads a per-fluid string parameter (aliases, CAS number,
// formula) without constructing a state.
func FluidParamString(fluid, param string) (string, error) {
	cFluid := C.CString(fluid)
	defer C.free(unsafe.Pointer(cFluid))
	cParam := C.CString(param)
	defer C.free(unsafe.Pointer(cParam))

	for n := 256; n <= maxStringBufLen; n *= 2 {
		countCall()
		buf := make([]byte, n)
		if C.get_fluid_param_string(cFluid, cParam, bufPtr(buf), C.int(len(buf))) != 1 {
			return "", globalError("get_fluid_param_string(" + fluid + ", " + param + ")")
		}
		if bufferSaturated(buf) {
			continue
		}
		return goString(buf), nil
	}
	return "", &GlobalError{Message: fmt.Sprintf("get_fluid_param_string(%s, %s): response exceeds %d bytes", fluid, param, maxStringBufLen)}
}

// SetReferenceState rebases the enthalpy/entropy reference for a fluid. The
// caller normalizes the state token before crossing.
func SetReferenceState(fluid, state string) error {
	countCall()

	cFluid := C.CString(fluid)
	defer C.free(unsafe.Pointer(cFluid))
	cState := C.CString(state)
	defer C.free(unsafe.Pointer(cState))

	if C.set_reference_stateS(cFluid, cState) != 1 {
		return globalError("set_reference_stateS(" + fluid + ", " + state + ")")
	}
	return nil
}

// ParamIndex resolves a parameter token to the engine's numeric id. Unknown
// tokens come back negative.
func ParamIndex(token string) (int64, error) {
	countCall()

	cToken := C.CString(token)
	defer C.free(unsafe.Pointer(cToken))

	idx := int64(C.get_param_index(cToken))
	if idx < 0 {
		return 0, &GlobalError{Message: "get_param_index(" + token + "): unknown parameter"}
	}
	return idx, nil
}

// InputPairIndex resolves an input-pair token to the engine's numeric id.
func InputPairIndex(token string) (int64, error) {
	countCall()

	cToken := C.CString(token)
	defer C.free(unsafe.Pointer(cToken))

	idx := int64(C.get_input_pair_index(cToken))
	if idx < 0 {
		return 0, &GlobalError{Message: "get_input_pair_index(" + token + "): unknown input pair"}
	}
	return idx, nil
}
