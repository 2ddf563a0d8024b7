// Package coolprop exposes a safe Go API over the CoolProp thermophysical
// property engine. The engine is a native library reached through a narrow
// C surface; this package owns the lifecycle of its opaque state handles,
// translates its out-of-band error signaling into typed errors, and validates
// symbolic property names before they ever cross the boundary.
//
// Stateless queries (PropsSI, HAPropsSI) answer one-shot property questions.
// State wraps a long-lived engine object for iterative work: update the
// thermodynamic point, read properties and derivatives, handle mixtures.
// The configuration gateway (SetConfigBool and friends) mutates engine-wide
// behavior seen by every caller in the process.
//
// # Threading
//
// A State must not be shared between goroutines without external
// synchronization; use one State per goroutine. Independent States may run
// concurrently. The engine's configuration store is process-wide and
// unsynchronized: configure once, before concurrent use begins, and do not
// reconfigure while queries are in flight. For full isolation run separate
// processes; see the multiprocess example.
//
// # Errors
//
// Every fallible operation returns a typed error carrying a Kind and the
// engine's message. Match with errors.Is against the kind sentinels
// (ErrInvalidInput, ErrNativeFailure, ...). Binaries built without cgo fail
// every native-backed call with ErrNotBuilt.
package coolprop
