package backend

import (
	"math"
	"reflect"
	"testing"
)

func TestJoinAndSplitFluids(t *testing.T) {
	if got := JoinFluids([]string{"Methane", "Ethane"}); got != "Methane&Ethane" {
		t.Fatalf("JoinFluids = %q", got)
	}
	if got := JoinFluids([]string{"Water"}); got != "Water" {
		t.Fatalf("JoinFluids single = %q", got)
	}

	// The engine reports names either '&'- or ','-separated.
	for _, in := range []string{"Methane&Ethane", "Methane,Ethane", " Methane , Ethane "} {
		got := SplitNames(in)
		if !reflect.DeepEqual(got, []string{"Methane", "Ethane"}) {
			t.Fatalf("SplitNames(%q) = %v", in, got)
		}
	}
	if got := SplitNames(""); len(got) != 0 {
		t.Fatalf("SplitNames(empty) = %v", got)
	}
}

func TestGoStringTolerantOfMissingNUL(t *testing.T) {
	if got := goString([]byte{'a', 'b', 0, 'x'}); got != "ab" {
		t.Fatalf("goString = %q", got)
	}
	if got := goString([]byte{'a', 'b', 'c'}); got != "abc" {
		t.Fatalf("goString without NUL = %q", got)
	}
}

func TestBufferSaturated(t *testing.T) {
	if bufferSaturated([]byte{'a', 0, 0, 0}) {
		t.Fatal("terminator mid-buffer reported as saturated")
	}
	if !bufferSaturated([]byte{'a', 'b', 'c'}) {
		t.Fatal("missing terminator not reported as saturated")
	}
	if !bufferSaturated([]byte{'x', 'y', 0}) {
		t.Fatal("terminator in last slot not reported as saturated")
	}
}

func TestReshapeCompositions(t *testing.T) {
	// Two points, three components, point-major on the wire.
	flat := []float64{
		0.2, 0.3, 0.5,
		0.1, 0.6, 0.3,
	}
	got := ReshapeCompositions(flat, 2, 3)
	want := [][]float64{
		{0.2, 0.1},
		{0.3, 0.6},
		{0.5, 0.3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ReshapeCompositions = %v", got)
	}
	if got := ReshapeCompositions(nil, 0, 3); got != nil {
		t.Fatalf("empty reshape = %v", got)
	}
}

func TestFilledPrefix(t *testing.T) {
	nan := math.NaN()
	a := []float64{nan, 1.0, nan, nan}
	b := []float64{nan, nan, 2.0, nan}
	c := []float64{nan, nan, nan, 3.0}
	if got := FilledPrefix(a, b, c); got != 4 {
		t.Fatalf("FilledPrefix = %d", got)
	}
	empty := []float64{nan, nan}
	if got := FilledPrefix(empty, empty, empty); got != 0 {
		t.Fatalf("FilledPrefix all-NaN = %d", got)
	}
}
