package normalize

import (
	"math"
	"testing"
)

func TestFormatLUFS(t *testing.T) {
	cases := map[float64]string{
		-14:    "-14.0 LUFS",
		-23.04: "-23.0 LUFS",
		0:      "0.0 LUFS",
	}

	for in, want := range cases {
		if got := FormatLUFS(in); got != want {
			t.Errorf("FormatLUFS(%v) = %q, want %q", in, got, want)
		}
	}

	if got := FormatLUFS(math.Inf(-1)); got != "-Inf LUFS" {
		t.Errorf("FormatLUFS(-Inf) = %q, want \"-Inf LUFS\"", got)
	}
}

func TestFormatDB(t *testing.T) {
	cases := map[float64]string{
		1.5:  "+1.5 dB",
		-3.5: "-3.5 dB",
		0:    "+0.0 dB",
	}

	for in, want := range cases {
		if got := FormatDB(in); got != want {
			t.Errorf("FormatDB(%v) = %q, want %q", in, got, want)
		}
	}

	if got := FormatDB(math.Inf(-1)); got != "-Inf dB" {
		t.Errorf("FormatDB(-Inf) = %q, want \"-Inf dB\"", got)
	}
}
