//go:build pprof

package profile

import (
	"slices"
	"testing"
)

func TestModes(t *testing.T) {
	t.Parallel()

	got := Modes()
	if !slices.IsSorted(got) || !slices.Contains(got, "cpu") {
		t.Errorf("unexpected modes %q", got)
	}
}

func TestStart_UnknownMode(t *testing.T) {
	t.Parallel()

	p := Make(WithMode("bogus")).Start()
	if _, ok := p.(ignore); !ok {
		t.Errorf("expected no-op profiler, got %T", p)
	}
}
