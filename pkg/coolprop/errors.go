package coolprop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coolprop/coolprop-go/pkg/coolprop/internal/backend"
)

// ErrNotBuilt reports that the binary was compiled without the native engine
// (cgo disabled or an unsupported platform). Every native-backed operation
// fails with it; pure validation such as token parsing keeps working.
var ErrNotBuilt = backend.ErrNotBuilt

// Kind classifies a failure reported by this package.
type Kind int

const (
	// KindInvalidHandle marks an operation on a closed State.
	KindInvalidHandle Kind = iota + 1
	// KindInvalidInput marks input rejected before any native call:
	// unknown tokens, empty or NUL-bearing strings, mismatched lengths.
	KindInvalidInput
	// KindNativeFailure marks a failure reported by the engine itself:
	// out-of-range inputs, non-convergence, a property undefined for the
	// current phase.
	KindNativeFailure
	// KindUnsupported marks an operation the engine's sequencing rules
	// disallow, such as setting mixture fractions after the first update.
	KindUnsupported
	// KindConfigError marks a global setting the engine rejected.
	KindConfigError
)

func (k Kind) String() string {
	switch k {
	case KindInvalidHandle:
		return "invalid handle"
	case KindInvalidInput:
		return "invalid input"
	case KindNativeFailure:
		return "native failure"
	case KindUnsupported:
		return "unsupported"
	case KindConfigError:
		return "config error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the structured error produced by this package. NativeCode carries
// the engine's numeric error code when one was reported, and 0 otherwise.
type Error struct {
	Kind       Kind
	Message    string
	NativeCode int64
}

func (e *Error) Error() string {
	if e.NativeCode != 0 {
		return fmt.Sprintf("coolprop: %s (code %d): %s", e.Kind, e.NativeCode, e.Message)
	}
	return fmt.Sprintf("coolprop: %s: %s", e.Kind, e.Message)
}

// Is matches on Kind alone so that errors.Is(err, ErrInvalidInput) holds for
// any invalid-input error regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// Kind-only sentinels for errors.Is matching.
var (
	ErrInvalidHandle = &Error{Kind: KindInvalidHandle}
	ErrInvalidInput  = &Error{Kind: KindInvalidInput}
	ErrNativeFailure = &Error{Kind: KindNativeFailure}
	ErrUnsupported   = &Error{Kind: KindUnsupported}
	ErrConfigError   = &Error{Kind: KindConfigError}
)

func errInvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func errClosedState() *Error {
	return &Error{Kind: KindInvalidHandle, Message: "state has been closed"}
}

func errUnsupported(msg string) *Error {
	return &Error{Kind: KindUnsupported, Message: msg}
}

// remapBackend converts a backend-layer error into the public model.
// ErrNotBuilt passes through untouched so callers can detect a cgo-less
// binary with errors.Is. Everything the engine reported becomes
// KindNativeFailure; an empty native message still yields an error.
func remapBackend(err error) error {
	return remapBackendKind(err, KindNativeFailure)
}

// remapConfig is remapBackend for the configuration gateway, where engine
// rejections are KindConfigError.
func remapConfig(err error) error {
	return remapBackendKind(err, KindConfigError)
}

func remapBackendKind(err error, kind Kind) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, backend.ErrNotBuilt) {
		return err
	}
	var call *backend.CallError
	if errors.As(err, &call) {
		msg := call.Message
		if msg == "" {
			msg = "engine reported failure without a message"
		}
		return &Error{Kind: kind, Message: msg, NativeCode: call.Code}
	}
	var global *backend.GlobalError
	if errors.As(err, &global) {
		msg := global.Message
		if msg == "" {
			msg = "engine reported failure without a message"
		}
		return &Error{Kind: kind, Message: msg}
	}
	return &Error{Kind: kind, Message: err.Error()}
}

// isBufferSizeError reports whether a native failure complains about buffer
// or array sizing. The fraction and envelope getters use it to drive their
// grow-and-retry loops; the engine has no dedicated status for "buffer too
// small" on these entry points.
func isBufferSizeError(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "buffer") || strings.Contains(msg, "length")
}
