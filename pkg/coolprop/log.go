package coolprop

import (
	"sync/atomic"

	"github.com/coolprop/coolprop-go/pkg/coolprop/logging"
)

var pkgLogger atomic.Pointer[logging.Logger]

// SetLogger installs the logger the library uses for its own diagnostics
// (state construction and close, configuration changes, all at debug level).
// The default discards everything. Passing nil restores the default.
func SetLogger(l logging.Logger) {
	if l == nil {
		pkgLogger.Store(nil)
		return
	}
	pkgLogger.Store(&l)
}

func logger() logging.Logger {
	if l := pkgLogger.Load(); l != nil {
		return *l
	}
	return logging.Nop()
}
