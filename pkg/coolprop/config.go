package coolprop

import (
	"context"
	"strings"
	"sync"

	"github.com/coolprop/coolprop-go/pkg/coolprop/internal/backend"
)

// configMu serializes configuration-gateway calls against each other. The
// engine's configuration store and error buffer are process-wide and
// unsynchronized, so two concurrent setters could interleave their
// clear-then-check error reads. The mutex cannot protect in-flight property
// queries in other goroutines; the configure-before-concurrency discipline in
// the package documentation remains the caller's responsibility.
var configMu sync.Mutex

// SetConfigBool sets a process-wide boolean engine setting, such as
// "NORMALIZE_GAS_CONSTANTS". The change is visible to every State and every
// stateless query immediately.
func SetConfigBool(key string, value bool) error {
	if err := checkNoNUL("key", key); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if err := backend.SetConfigBool(key, value); err != nil {
		return remapConfig(err)
	}
	logger().Debug(context.Background(), "engine config updated", "key", key, "value", value)
	return nil
}

// SetConfigDouble sets a process-wide floating-point engine setting.
func SetConfigDouble(key string, value float64) error {
	if err := checkNoNUL("key", key); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if err := backend.SetConfigDouble(key, value); err != nil {
		return remapConfig(err)
	}
	logger().Debug(context.Background(), "engine config updated", "key", key, "value", value)
	return nil
}

// SetConfigString sets a process-wide string engine setting.
func SetConfigString(key, value string) error {
	if err := checkNoNUL("key", key); err != nil {
		return err
	}
	if err := checkNoNUL("value", value); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if err := backend.SetConfigString(key, value); err != nil {
		return remapConfig(err)
	}
	logger().Debug(context.Background(), "engine config updated", "key", key, "value", value)
	return nil
}

// ConfigBool reads a boolean engine setting.
func ConfigBool(key string) (bool, error) {
	if err := checkNoNUL("key", key); err != nil {
		return false, err
	}
	configMu.Lock()
	defer configMu.Unlock()
	v, err := backend.GetConfigBool(key)
	if err != nil {
		return false, remapConfig(err)
	}
	return v, nil
}

// ConfigDouble reads a floating-point engine setting.
func ConfigDouble(key string) (float64, error) {
	if err := checkNoNUL("key", key); err != nil {
		return 0, err
	}
	configMu.Lock()
	defer configMu.Unlock()
	v, err := backend.GetConfigDouble(key)
	if err != nil {
		return 0, remapConfig(err)
	}
	return v, nil
}

// ConfigString reads a string engine setting.
func ConfigString(key string) (string, error) {
	if err := checkNoNUL("key", key); err != nil {
		return "", err
	}
	configMu.Lock()
	defer configMu.Unlock()
	v, err := backend.GetConfigString(key)
	if err != nil {
		return "", remapConfig(err)
	}
	return v, nil
}

// SetRefpropPath points the engine at an external REFPROP installation. It is
// shorthand for SetConfigString("ALTERNATIVE_REFPROP_PATH", path).
func SetRefpropPath(path string) error {
	return SetConfigString("ALTERNATIVE_REFPROP_PATH", path)
}

// normalizeReferenceState maps common spellings of the reference-state
// conventions onto the tokens the engine expects. Unrecognized spellings pass
// through unchanged for the engine to judge.
func normalizeReferenceState(ref string) string {
	switch s := strings.TrimSpace(ref); {
	case strings.EqualFold(s, "default") || strings.EqualFold(s, "def"):
		return "DEF"
	case strings.EqualFold(s, "iir"):
		return "IIR"
	case strings.EqualFold(s, "ashrae"):
		return "ASHRAE"
	case strings.EqualFold(s, "nbp"):
		return "NBP"
	default:
		return s
	}
}

// SetReferenceState rebases the enthalpy/entropy reference convention for a
// fluid ("DEF", "IIR", "ASHRAE", "NBP"). Affects all subsequent queries for
// that fluid, including states constructed earlier.
func SetReferenceState(fluid, ref string) error {
	if err := checkNoNUL("fluid", fluid); err != nil {
		return err
	}
	if err := checkNoNUL("ref", ref); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if err := backend.SetReferenceState(fluid, normalizeReferenceState(ref)); err != nil {
		return remapConfig(err)
	}
	logger().Debug(context.Background(), "reference state set", "fluid", fluid, "ref", ref)
	return nil
}

// GlobalParamString reads a process-wide metadata string, such as "version",
// "gitrevision", "FluidsList", or "errstring". Note that reading "errstring"
// consumes the engine's stored message.
func GlobalParamString(param string) (string, error) {
	if err := checkNoNUL("param", param); err != nil {
		return "", err
	}
	configMu.Lock()
	defer configMu.Unlock()
	v, err := backend.GlobalParamString(param)
	if err != nil {
		return "", remapConfig(err)
	}
	return v, nil
}

// FluidParamString reads per-fluid string metadata ("aliases", "CAS",
// "formula", "JSON") without constructing a State.
func FluidParamString(fluid, param string) (string, error) {
	if err := checkNoNUL("fluid", fluid); err != nil {
		return "", err
	}
	if err := checkNoNUL("param", param); err != nil {
		return "", err
	}
	configMu.Lock()
	defer configMu.Unlock()
	v, err := backend.FluidParamString(fluid, param)
	if err != nil {
		return "", remapConfig(err)
	}
	return v, nil
}

// FluidsList returns the names of every fluid the engine knows.
func FluidsList() ([]string, error) {
	configMu.Lock()
	raw, err := backend.FluidsList()
	configMu.Unlock()
	if err != nil {
		return nil, remapConfig(err)
	}
	return backend.SplitNames(raw), nil
}
