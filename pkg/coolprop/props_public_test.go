package coolprop_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolprop/coolprop-go/pkg/coolprop"
)

func skipWithoutEngine(t *testing.T, err error) {
	t.Helper()
	if errors.Is(err, coolprop.ErrNotBuilt) {
		t.Skip("native engine not linked into this build")
	}
}

func TestPropsSI(t *testing.T) {
	rho, err := coolprop.PropsSI("D", "T", 300, "P", 101325, "Water")
	skipWithoutEngine(t, err)
	require.NoError(t, err)
	assert.InDelta(t, 996.556, rho, 996.556*0.01)

	// Normal boiling point of water.
	tb, err := coolprop.PropsSI("T", "P", 101325, "Q", 0, "Water")
	require.NoError(t, err)
	assert.InDelta(t, 373.1242958, tb, 1e-3)

	// Mixtures and backend prefixes go through the same entry point.
	h, err := coolprop.PropsSI("Hmass", "P", 800000, "T", 280, "HEOS::R134a")
	require.NoError(t, err)
	assert.False(t, math.IsNaN(h) || math.IsInf(h, 0))
}

func TestPropsSIInvalidInputs(t *testing.T) {
	_, err := coolprop.PropsSI("D", "T", 300, "P", 101325, "NotAFluid")
	skipWithoutEngine(t, err)
	assert.ErrorIs(t, err, coolprop.ErrNativeFailure)

	_, err = coolprop.PropsSI("D", "T", 300, "P", 101325, "Wat\x00er")
	assert.ErrorIs(t, err, coolprop.ErrInvalidInput)
}

func TestProps1SI(t *testing.T) {
	tc, err := coolprop.Props1SI("Water", "Tcrit")
	skipWithoutEngine(t, err)
	require.NoError(t, err)
	assert.InDelta(t, 647.096, tc, 0.01)

	_, err = coolprop.Props1SI("Water", "NotAProperty")
	assert.ErrorIs(t, err, coolprop.ErrNativeFailure)
}

func TestHAPropsSI(t *testing.T) {
	// Humid air enthalpy at 1 atm, 25 C, 50% RH.
	h, err := coolprop.HAPropsSI("H", "T", 298.15, "P", 101325, "R", 0.5)
	skipWithoutEngine(t, err)
	require.NoError(t, err)
	assert.InDelta(t, 50423, h, 50423*0.01)
}

func TestHAPropsSIRoundTrip(t *testing.T) {
	// Humidity ratio from relative humidity and back again.
	w, err := coolprop.HAPropsSI("W", "T", 300, "P", 101325, "R", 0.5)
	skipWithoutEngine(t, err)
	require.NoError(t, err)

	r, err := coolprop.HAPropsSI("R", "T", 300, "P", 101325, "W", w)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r, 1e-9)
}

func TestPhaseSI(t *testing.T) {
	phase, err := coolprop.PhaseSI("T", 300, "P", 101325, "Water")
	skipWithoutEngine(t, err)
	require.NoError(t, err)
	assert.Equal(t, "liquid", phase)
}

func TestFluidsList(t *testing.T) {
	fluids, err := coolprop.FluidsList()
	skipWithoutEngine(t, err)
	require.NoError(t, err)
	assert.Contains(t, fluids, "Water")
	assert.Greater(t, len(fluids), 100)
}

func TestEngineVersion(t *testing.T) {
	v, err := coolprop.EngineVersion()
	skipWithoutEngine(t, err)
	require.NoError(t, err)
	assert.NotEmpty(t, v)
}
