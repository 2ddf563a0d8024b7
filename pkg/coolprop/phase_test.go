package coolprop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseCodes(t *testing.T) {
	// The numeric values are the engine's phase codes.
	for code, want := range map[int64]Phase{
		0: PhaseLiquid,
		5: PhaseGas,
		6: PhaseTwoPhase,
		8: PhaseNotImposed,
	} {
		got, err := phaseFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := phaseFromCode(42)
	assert.ErrorIs(t, err, ErrNativeFailure)
}

func TestPhaseTokens(t *testing.T) {
	for ph, want := range map[Phase]string{
		PhaseLiquid:   "phase_liquid",
		PhaseGas:      "phase_gas",
		PhaseTwoPhase: "phase_twophase",
	} {
		token, ok := ph.specifier()
		require.True(t, ok)
		assert.Equal(t, want, token)
	}
	_, ok := Phase(99).specifier()
	assert.False(t, ok)

	// Saturation branches exist only for liquid, gas, and two-phase.
	for _, ph := range []Phase{PhaseLiquid, PhaseGas, PhaseTwoPhase} {
		_, ok := ph.saturationToken()
		assert.True(t, ok, "%s", ph)
	}
	for _, ph := range []Phase{PhaseSupercritical, PhaseCriticalPoint, PhaseNotImposed} {
		_, ok := ph.saturationToken()
		assert.False(t, ok, "%s", ph)
	}
}

func TestPhaseDisplay(t *testing.T) {
	assert.Equal(t, "liquid", PhaseLiquid.String())
	assert.Equal(t, "two-phase", PhaseTwoPhase.String())
	assert.Equal(t, "not imposed", PhaseNotImposed.String())
}
