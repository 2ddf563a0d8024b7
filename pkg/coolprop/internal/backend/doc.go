// Package backend hosts the thin cgo layer that links the Go API to the
// native CoolProp library. The real implementation lives behind build tags so
// that the rest of the repository can compile without cgo.
//
// # Design Principles
//
// 1. Isolation: ALL cgo code lives in this package. No other package imports
// "C"; the internalcheck tests enforce this.
//
// 2. One crossing per function: every exported function invokes exactly one
// native entry point (growable-buffer retries aside) and checks its error
// channel before returning.
//
// 3. Error channels: AbstractState-style entry points report failure through
// an errcode out-parameter plus a caller-provided message buffer, surfaced
// here as *CallError. The PropsSI family and the config setters report only
// through the process-wide "errstring" parameter, surfaced as *GlobalError.
// The errstring buffer is overwritten by the next native call, so it is read
// in the same call frame as the failure, never later.
//
// 4. Memory: marshaled strings and scratch buffers are scoped to the call and
// released on every path. Output buffers are Go-allocated byte slices handed
// to C, so nothing native outlives the crossing.
//
// # Threading
//
// A State handle must not be used from two goroutines at once, and the
// engine's configuration globals are process-wide and unsynchronized. The
// public package documents the resulting discipline; this package adds no
// locking of its own.
package backend
