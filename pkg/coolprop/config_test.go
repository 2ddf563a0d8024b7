package coolprop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeReferenceState(t *testing.T) {
	cases := map[string]string{
		"default": "DEF",
		"DEFAULT": "DEF",
		"def":     "DEF",
		" def ":   "DEF",
		"iir":     "IIR",
		"Ashrae":  "ASHRAE",
		"nbp":     "NBP",
		"NBP":     "NBP",
		// Unrecognized spellings pass through for the engine to judge.
		"custom": "custom",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeReferenceState(in), "input %q", in)
	}
}

func TestConfigRejectsInteriorNUL(t *testing.T) {
	assert.ErrorIs(t, SetConfigBool("bad\x00key", true), ErrInvalidInput)
	assert.ErrorIs(t, SetConfigString("key", "bad\x00value"), ErrInvalidInput)
	_, err := GlobalParamString("bad\x00param")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
