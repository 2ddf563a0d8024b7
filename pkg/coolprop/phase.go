package coolprop

// Phase is the engine's phase classification of a thermodynamic state. The
// numeric values mirror the engine's phase codes and must not be reordered.
type Phase int

const (
	PhaseLiquid Phase = iota
	PhaseSupercritical
	PhaseSupercriticalGas
	PhaseSupercriticalLiquid
	PhaseCriticalPoint
	PhaseGas
	PhaseTwoPhase
	PhaseUnknown
	PhaseNotImposed

	numPhases int = iota
)

func phaseFromCode(code int64) (Phase, error) {
	if code < 0 || code >= int64(numPhases) {
		return 0, &Error{Kind: KindNativeFailure, Message: "engine reported unrecognized phase code", NativeCode: code}
	}
	return Phase(code), nil
}

// String returns a display label for the phase.
func (ph Phase) String() string {
	switch ph {
	case PhaseLiquid:
		return "liquid"
	case PhaseSupercritical:
		return "supercritical"
	case PhaseSupercriticalGas:
		return "supercritical gas"
	case PhaseSupercriticalLiquid:
		return "supercritical liquid"
	case PhaseCriticalPoint:
		return "critical point"
	case PhaseGas:
		return "gas"
	case PhaseTwoPhase:
		return "two-phase"
	case PhaseUnknown:
		return "unknown"
	case PhaseNotImposed:
		return "not imposed"
	default:
		return "Phase(invalid)"
	}
}

// specifier returns the token SpecifyPhase sends to the engine.
func (ph Phase) specifier() (string, bool) {
	switch ph {
	case PhaseLiquid:
		return "phase_liquid", true
	case PhaseSupercritical:
		return "phase_supercritical", true
	case PhaseSupercriticalGas:
		return "phase_supercritical_gas", true
	case PhaseSupercriticalLiquid:
		return "phase_supercritical_liquid", true
	case PhaseCriticalPoint:
		return "phase_critical_point", true
	case PhaseGas:
		return "phase_gas", true
	case PhaseTwoPhase:
		return "phase_twophase", true
	case PhaseUnknown:
		return "phase_unknown", true
	case PhaseNotImposed:
		return "phase_not_imposed", true
	default:
		return "", false
	}
}

// saturationToken returns the token used to select a saturation branch.
// Only liquid, gas, and two-phase states name a branch.
func (ph Phase) saturationToken() (string, bool) {
	switch ph {
	case PhaseLiquid:
		return "liquid", true
	case PhaseGas:
		return "gas", true
	case PhaseTwoPhase:
		return "twophase", true
	default:
		return "", false
	}
}
