package coolprop

import (
	"errors"
	"sync"

	"github.com/coolprop/coolprop-go/pkg/coolprop/internal/backend"
)

// indexTable caches the engine's numeric codes for every Param and InputPair
// token. Tokens are stable across engine versions but the numeric codes are
// not, so they are resolved once per process on first use. A token the
// running engine does not recognize is cached as -1 and rejected at use time
// without another crossing.
type indexTable struct {
	params [numParams]int64
	pairs  [numInputPairs]int64
}

var loadIndices = sync.OnceValues(func() (*indexTable, error) {
	t := &indexTable{}
	for i := 0; i < numParams; i++ {
		id, err := backend.ParamIndex(paramTokens[i])
		if err != nil {
			if errors.Is(err, backend.ErrNotBuilt) {
				return nil, err
			}
			id = -1
		}
		t.params[i] = id
	}
	for i := 0; i < numInputPairs; i++ {
		id, err := backend.InputPairIndex(inputPairTokens[i])
		if err != nil {
			if errors.Is(err, backend.ErrNotBuilt) {
				return nil, err
			}
			id = -1
		}
		t.pairs[i] = id
	}
	return t, nil
})

// paramCode returns the native code for p, validating the enum value first so
// an invalid Param never reaches the engine.
func paramCode(p Param) (int64, error) {
	if !p.valid() {
		return 0, errInvalidInput("parameter value %d is out of range", int(p))
	}
	t, err := loadIndices()
	if err != nil {
		return 0, err
	}
	id := t.params[p]
	if id < 0 {
		return 0, errInvalidInput("parameter %q not recognized by this engine build", p.String())
	}
	return id, nil
}

func pairCode(ip InputPair) (int64, error) {
	if !ip.valid() {
		return 0, errInvalidInput("input pair value %d is out of range", int(ip))
	}
	t, err := loadIndices()
	if err != nil {
		return 0, err
	}
	id := t.pairs[ip]
	if id < 0 {
		return 0, errInvalidInput("input pair %q not recognized by this engine build", ip.String())
	}
	return id, nil
}
