package coolprop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolprop/coolprop-go/pkg/coolprop/internal/backend"
)

func TestParamTokenRoundTrip(t *testing.T) {
	for _, p := range Params() {
		got, err := ParamFromString(p.String())
		require.NoError(t, err, "token %q", p.String())
		// Aliased ideal-gas tokens resolve to the primary variant.
		assert.Equal(t, p.String(), got.String())
	}
}

func TestParamAliases(t *testing.T) {
	p, err := ParamFromString("Hmolar_idealgas")
	require.NoError(t, err)
	assert.Equal(t, ParamHmolarIdealgas, p)

	// Both spellings carry the same token.
	assert.Equal(t, ParamHmolarIdealgas.String(), ParamHmolar0.String())
}

func TestParamUnknownTokenMakesNoNativeCall(t *testing.T) {
	before := backend.Calls()
	_, err := ParamFromString("NotAParameter")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, before, backend.Calls(), "unknown token must be rejected before the boundary")
}

func TestInputPairTokenRoundTrip(t *testing.T) {
	for _, ip := range InputPairs() {
		got, err := InputPairFromString(ip.String())
		require.NoError(t, err, "token %q", ip.String())
		assert.Equal(t, ip, got)
	}
	assert.Equal(t, "PT_INPUTS", PairPT.String())
	assert.Equal(t, "DmolarT_INPUTS", PairDmolarT.String())
}

func TestInputPairUnknownTokenMakesNoNativeCall(t *testing.T) {
	before := backend.Calls()
	_, err := InputPairFromString("XY_INPUTS")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, before, backend.Calls())
}

func TestEnumBounds(t *testing.T) {
	assert.Equal(t, 90, len(Params()))
	assert.Equal(t, 33, len(InputPairs()))
	assert.Equal(t, "Param(invalid)", Param(-1).String())
	assert.Equal(t, "InputPair(invalid)", InputPair(numInputPairs).String())
}
