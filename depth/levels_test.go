package depth

import (
	"errors"
	"testing"
)

func TestLevels(t *testing.T) {
	ds, err := Levels(8)
	if err != nil {
		t.Fatalf("Levels(8): %v", err)
	}
	if len(ds) != 256 {
		t.Fatalf("len=%d, want 256", len(ds))
	}
	if ds[0] != -1 {
		t.Fatalf("first=%v, want -1", ds[0])
	}
	if want := 1 - 2.0/256; ds[len(ds)-1] != want {
		t.Fatalf("last=%v, want %v", ds[len(ds)-1], want)
	}

	for _, bits := range []int{0, -1, MaxBits + 1} {
		if _, err := Levels(bits); !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("Levels(%d) err=%v", bits, err)
		}
	}
}

func TestLinspace(t *testing.T) {
	got := Linspace(-1, -50, 100)
	if len(got) != 100 || got[0] != -1 || got[99] != -50 {
		t.Fatalf("Linspace endpoints: len=%d first=%v last=%v", len(got), got[0], got[len(got)-1])
	}
	if Linspace(0, 1, 0) != nil {
		t.Fatalf("Linspace n=0 should be nil")
	}
	if one := Linspace(3, 9, 1); len(one) != 1 || one[0] != 3 {
		t.Fatalf("Linspace n=1 = %v", one)
	}
}

func TestStepsIncreaseTowardsNear(t *testing.T) {
	p := mustParams(t, 1, 50)
	zs, err := p.Steps(8)
	if err != nil {
		t.Fatalf("Steps: %v", err)
	}
	if !closeEnough(zs[0], -50, 1e-12) {
		t.Fatalf("first step=%v, want -50", zs[0])
	}
	for i := 1; i < len(zs); i++ {
		if zs[i] <= zs[i-1] {
			t.Fatalf("steps not increasing at %d: %v <= %v", i, zs[i], zs[i-1])
		}
		if zs[i] >= -1 {
			t.Fatalf("step %d=%v reached the near plane", i, zs[i])
		}
	}
}
