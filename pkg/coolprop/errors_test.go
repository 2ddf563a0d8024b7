package coolprop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolprop/coolprop-go/pkg/coolprop/internal/backend"
)

func TestErrorKindMatching(t *testing.T) {
	cases := []struct {
		err      error
		sentinel *Error
	}{
		{&Error{Kind: KindInvalidHandle, Message: "closed"}, ErrInvalidHandle},
		{&Error{Kind: KindInvalidInput, Message: "bad token"}, ErrInvalidInput},
		{&Error{Kind: KindNativeFailure, Message: "no convergence", NativeCode: 1}, ErrNativeFailure},
		{&Error{Kind: KindUnsupported, Message: "too late"}, ErrUnsupported},
		{&Error{Kind: KindConfigError, Message: "rejected"}, ErrConfigError},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, tc.err, tc.sentinel, "kind %v", tc.sentinel.Kind)
	}

	// Kinds do not cross-match.
	assert.NotErrorIs(t, &Error{Kind: KindInvalidInput}, ErrNativeFailure)
	assert.NotErrorIs(t, errors.New("plain"), ErrInvalidInput)
}

func TestErrorFormatting(t *testing.T) {
	withCode := &Error{Kind: KindNativeFailure, Message: "out of range", NativeCode: 2}
	assert.Contains(t, withCode.Error(), "native failure")
	assert.Contains(t, withCode.Error(), "code 2")
	assert.Contains(t, withCode.Error(), "out of range")

	withoutCode := &Error{Kind: KindConfigError, Message: "bad key"}
	assert.NotContains(t, withoutCode.Error(), "code")
}

func TestRemapBackend(t *testing.T) {
	require.NoError(t, remapBackend(nil))

	// errcode/message channel carries the native code through.
	err := remapBackend(&backend.CallError{Code: 3, Message: "two-phase inputs not supported"})
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindNativeFailure, e.Kind)
	assert.Equal(t, int64(3), e.NativeCode)
	assert.Equal(t, "two-phase inputs not supported", e.Message)

	// Empty native message never becomes success.
	err = remapBackend(&backend.CallError{Code: 9})
	require.ErrorAs(t, err, &e)
	assert.NotEmpty(t, e.Message)

	// errstring channel has no numeric code.
	err = remapBackend(&backend.GlobalError{Message: "unable to load fluid"})
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindNativeFailure, e.Kind)
	assert.Zero(t, e.NativeCode)

	// ErrNotBuilt passes through untouched for errors.Is detection.
	assert.ErrorIs(t, remapBackend(backend.ErrNotBuilt), ErrNotBuilt)

	// The config gateway maps engine rejections to its own kind.
	err = remapConfig(&backend.GlobalError{Message: "unknown key"})
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindConfigError, e.Kind)
}

func TestIsBufferSizeError(t *testing.T) {
	assert.True(t, isBufferSizeError(&Error{Kind: KindNativeFailure, Message: "Length of array is too small"}))
	assert.True(t, isBufferSizeError(&Error{Kind: KindNativeFailure, Message: "output buffer too small"}))
	assert.False(t, isBufferSizeError(&Error{Kind: KindNativeFailure, Message: "input is out of range"}))
	assert.False(t, isBufferSizeError(errors.New("not a typed error")))
}
