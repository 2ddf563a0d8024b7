//go:build cgo && !windows

package backend

/*
#include <stdlib.h>

double PropsSI(const char *output, const char *name1, double prop1, const char *name2, double prop2, const char *fluid);
double Props1SI(const char *fluid, const char *output);
double HAPropsSI(const char *output, const char *name1, double prop1, const char *name2, double prop2, const char *name3, double prop3);
long PhaseSI(const char *name1, double prop1, const char *name2, double prop2, const char *fluid, char *phase, int n);
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// PropsSI evaluates a thermodynamic output for a fluid given two state
// inputs. The engine signals failure by returning a non-finite value; the
// reason is read from errstring before any other crossing can overwrite it.
func PropsSI(output, name1 string, prop1 float64, name2 string, prop2 float64, fluid string) (float64, error) {
	countCall()

	cOutput := C.CString(output)
	defer C.free(unsafe.Pointer(cOutput))
	cName1 := C.CString(name1)
	defer C.free(unsafe.Pointer(cName1))
	cName2 := C.CString(name2)
	defer C.free(unsafe.Pointer(cName2))
	cFluid := C.CString(fluid)
	defer C.free(unsafe.Pointer(cFluid))

	v := float64(C.PropsSI(cOutput, cName1, C.double(prop1), cName2, C.double(prop2), cFluid))
	if !isFinite(v) {
		return 0, globalError("PropsSI(" + output + ", " + fluid + ")")
	}
	return v, nil
}

// Props1SI evaluates a trivial (state-independent) output for a fluid.
func Props1SI(fluid, output string) (float64, error) {
	countCall()

	cFluid := C.CString(fluid)
	defer C.free(unsafe.Pointer(cFluid))
	cOutput := C.CString(output)
	defer C.free(unsafe.Pointer(cOutput))

	v := float64(C.Props1SI(cFluid, cOutput))
	if !isFinite(v) {
		return 0, globalError("Props1SI(" + output + ", " + fluid + ")")
	}
	return v, nil
}

// HAPropsSI evaluates a humid-air output from three input properties.
func HAPropsSI(output, name1 string, prop1 float64, name2 string, prop2 float64, name3 string, prop3 float64) (float64, error) {
	countCall()

	cOutput := C.CString(output)
	defer C.free(unsafe.Pointer(cOutput))
	cName1 := C.CString(name1)
	defer C.free(unsafe.Pointer(cName1))
	cName2 := C.CString(name2)
	defer C.free(unsafe.Pointer(cName2))
	cName3 := C.CString(name3)
	defer C.free(unsafe.Pointer(cName3))

	v := float64(C.HAPropsSI(cOutput, cName1, C.double(prop1), cName2, C.double(prop2), cName3, C.double(prop3)))
	if !isFinite(v) {
		return 0, globalError("HAPropsSI(" + output + ")")
	}
	return v, nil
}

// maxPhaseBufLen bounds the grow-and-retry loop for PhaseSI. Phase labels
// are short; anything past this is a corrupted response.
const maxPhaseBufLen = 4096

// PhaseSI names the phase of a fluid at the given state. The buffer grows
// until the engine accepts it or the cap trips.
func PhaseSI(name1 string, prop1 float64, name2 string, prop2 float64, fluid string) (string, error) {
	cName1 := C.CString(name1)
	defer C.free(unsafe.Pointer(cName1))
	cName2 := C.CString(name2)
	defer C.free(unsafe.Pointer(cName2))
	cFluid := C.CString(fluid)
	defer C.free(unsafe.Pointer(cFluid))

	for n := 256; n <= maxPhaseBufLen; n *= 2 {
		countCall()
		buf := make([]byte, n)
		status := C.PhaseSI(cName1, C.double(prop1), cName2, C.double(prop2), cFluid, bufPtr(buf), C.int(len(buf)))
		if status != 1 {
			return "", globalError("PhaseSI(" + fluid + ")")
		}
		if bufferSaturated(buf) {
			continue
		}
		return goString(buf), nil
	}
	return "", &GlobalError{Message: fmt.Sprintf("PhaseSI(%s): response exceeds %d bytes", fluid, maxPhaseBufLen)}
}
