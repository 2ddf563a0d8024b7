package backend

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary.
var ErrNotBuilt = errors.New("coolprop/internal/backend: native bindings not built")

const (
	// errBufLen is the size of the message buffer handed to every
	// AbstractState-style entry point, matching ERR_BUF_LEN in the C API
	// examples.
	errBufLen = 1024

	// strBufLen is the starting capacity for string-returning calls that
	// use the grow-and-retry protocol.
	strBufLen = 1024
)

// State identifies one AbstractState object inside the native engine.
// Instances come only from NewState; after Free the value is dead and must
// not be used again. The zero value is not a valid state.
type State struct {
	handle int64
}

// CallError is a failure reported through the errcode/message-buffer
// out-parameters of an AbstractState-style entry point.
type CallError struct {
	Code    int64
	Message string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("coolprop error %d: %s", e.Code, e.Message)
}

// GlobalError is a failure reported only through the process-wide errstring
// channel (PropsSI family, config setters, string getters).
type GlobalError struct {
	Message string
}

func (e *GlobalError) Error() string {
	return "coolprop: " + e.Message
}

var (
	crossings  atomic.Uint64
	liveStates atomic.Int64
)

// countCall records one attempted native crossing. The stub build counts too,
// so tests can assert that input validation rejected a call before it reached
// this package.
func countCall() { crossings.Add(1) }

// Calls returns the number of native crossings attempted so far in this
// process. Test hook.
func Calls() uint64 { return crossings.Load() }

// LiveStates returns the number of factory handles that have not been freed.
// Test hook for leak detection.
func LiveStates() int64 { return liveStates.Load() }
