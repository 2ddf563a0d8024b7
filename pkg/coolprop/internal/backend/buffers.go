package backend

import (
	"bytes"
	"math"
	"strings"
)

// JoinFluids renders a fluid list the way AbstractState_factory expects it,
// with components separated by '&'.
func JoinFluids(fluids []string) string {
	return strings.Join(fluids, "&")
}

// SplitNames splits an engine-reported name list. The engine joins fluid
// names with '&' in factory strings but reports them comma-separated from
// some introspection calls, so both separators are accepted.
func SplitNames(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '&' || r == ','
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// goString interprets buf as a NUL-terminated C string, tolerating a missing
// terminator.
func goString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}

// bufferSaturated reports whether a NUL-terminated buffer may have been
// truncated by the engine: the terminator sits in the last slot or is missing
// entirely.
func bufferSaturated(buf []byte) bool {
	i := bytes.IndexByte(buf, 0)
	if i < 0 {
		return true
	}
	return i+1 >= len(buf)
}

// ReshapeCompositions converts the engine's point-major flat composition
// array into per-component columns: result[component][point].
func ReshapeCompositions(flat []float64, points, components int) [][]float64 {
	if points == 0 || components == 0 {
		return nil
	}
	out := make([][]float64, components)
	for c := range out {
		out[c] = make([]float64, points)
	}
	for p := 0; p < points; p++ {
		for c := 0; c < components; c++ {
			out[c][p] = flat[p*components+c]
		}
	}
	return out
}

// FilledPrefix returns the length of the leading segment in which at least
// one of the three arrays holds a finite value. The spinodal and
// critical-point calls fill a prefix of their fixed-size output buffers and
// leave the rest as NaN.
func FilledPrefix(a, b, c []float64) int {
	n := min(len(a), min(len(b), len(c)))
	last := 0
	for i := 0; i < n; i++ {
		if isFinite(a[i]) || isFinite(b[i]) || isFinite(c[i]) {
			last = i + 1
		}
	}
	return last
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
