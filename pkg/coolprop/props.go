package coolprop

import (
	"strings"

	"github.com/coolprop/coolprop-go/pkg/coolprop/internal/backend"
)

// checkNoNUL rejects strings the C calling convention cannot represent.
// Caught here so a bad argument never corrupts the engine's error buffer.
func checkNoNUL(label, s string) error {
	if strings.ContainsRune(s, 0) {
		return errInvalidInput("%s contains an interior NUL byte", label)
	}
	return nil
}

// PropsSI evaluates one thermodynamic output for a fluid (or mixture string)
// from two named state inputs, in SI units. Example:
//
//	rho, err := coolprop.PropsSI("Dmass", "T", 300, "P", 101325, "Water")
//
// Failures the engine reports (unknown fluid, out-of-range state,
// non-convergence) surface as KindNativeFailure with the engine's message.
func PropsSI(output, name1 string, value1 float64, name2 string, value2 float64, fluid string) (float64, error) {
	for label, s := range map[string]string{
		"output": output, "name1": name1, "name2": name2, "fluid": fluid,
	} {
		if err := checkNoNUL(label, s); err != nil {
			return 0, err
		}
	}
	v, err := backend.PropsSI(output, name1, value1, name2, value2, fluid)
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}

// Props1SI evaluates a trivial, state-independent output for a fluid, such as
// "Tcrit", "pcrit", or "molar_mass".
func Props1SI(output, fluid string) (float64, error) {
	if err := checkNoNUL("output", output); err != nil {
		return 0, err
	}
	if err := checkNoNUL("fluid", fluid); err != nil {
		return 0, err
	}
	v, err := backend.Props1SI(fluid, output)
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}

// HAPropsSI evaluates a humid-air output from three named inputs, in SI
// units. The air/water mixture is implicit; there is no fluid argument.
func HAPropsSI(output, name1 string, value1 float64, name2 string, value2 float64, name3 string, value3 float64) (float64, error) {
	for label, s := range map[string]string{
		"output": output, "name1": name1, "name2": name2, "name3": name3,
	} {
		if err := checkNoNUL(label, s); err != nil {
			return 0, err
		}
	}
	v, err := backend.HAPropsSI(output, name1, value1, name2, value2, name3, value3)
	if err != nil {
		return 0, remapBackend(err)
	}
	return v, nil
}

// PhaseSI names the phase of a fluid at the given state, as a short label
// such as "liquid" or "twophase".
func PhaseSI(name1 string, value1 float64, name2 string, value2 float64, fluid string) (string, error) {
	for label, s := range map[string]string{
		"name1": name1, "name2": name2, "fluid": fluid,
	} {
		if err := checkNoNUL(label, s); err != nil {
			return "", err
		}
	}
	phase, err := backend.PhaseSI(name1, value1, name2, value2, fluid)
	if err != nil {
		return "", remapBackend(err)
	}
	return phase, nil
}
