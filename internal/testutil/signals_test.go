package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	sig := DeterministicSine(1000, 48000, 0.5, 48000)

	if len(sig) != 48000 {
		t.Fatalf("len = %d, want 48000", len(sig))
	}

	if sig[0] != 0 {
		t.Fatalf("phase should start at zero, got %v", sig[0])
	}

	for i, v := range sig {
		if math.Abs(v) > 0.5 {
			t.Fatalf("sample %d = %v exceeds amplitude", i, v)
		}
	}
}

func TestDeterministicSquareLevels(t *testing.T) {
	sig := DeterministicSquare(100, 48000, 1.0, 4800)

	for i, v := range sig {
		if v != 1.0 && v != -1.0 {
			t.Fatalf("sample %d = %v, want exactly +-1", i, v)
		}
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 0.25, 128)
	b := DeterministicNoise(42, 0.25, 128)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between runs with same seed", i)
		}

		if math.Abs(a[i]) > 0.25 {
			t.Fatalf("sample %d = %v exceeds amplitude", i, a[i])
		}
	}
}
