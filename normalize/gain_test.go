package normalize

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateGainByType(t *testing.T) {
	a := Analysis{
		PeakDB:         -6,
		RMSDB:          -18,
		LUFSIntegrated: -20,
	}

	cases := []struct {
		name   string
		opts   Options
		wantDB float64
	}{
		{"peak", Options{Type: TypePeak, TargetLevel: -1}, 5},
		{"rms", Options{Type: TypeRMS, TargetLevel: -12}, 6},
		{"lufs", Options{Type: TypeLUFS, TargetLevel: -14}, 6},
		{"attenuation", Options{Type: TypeLUFS, TargetLevel: -23}, -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gain, err := CalculateGain(a, tc.opts)
			if err != nil {
				t.Fatalf("CalculateGain: %v", err)
			}

			want := math.Pow(10, tc.wantDB/20)
			if math.Abs(gain-want) > 1e-12 {
				t.Fatalf("gain = %v, want %v (%v dB)", gain, want, tc.wantDB)
			}
		})
	}
}

func TestCalculateGainCeiling(t *testing.T) {
	a := Analysis{PeakDB: -3, RMSDB: -20, LUFSIntegrated: -20}

	// Nominal gain +10 dB, but the ceiling allows only +2 dB of headroom.
	opts := Options{Type: TypeRMS, TargetLevel: -10, Ceiling: -1, HasCeiling: true}

	gain, err := CalculateGain(a, opts)
	if err != nil {
		t.Fatalf("CalculateGain: %v", err)
	}

	want := math.Pow(10, 2.0/20)
	if math.Abs(gain-want) > 1e-12 {
		t.Fatalf("gain = %v, want ceiling-capped %v", gain, want)
	}
}

func TestCalculateGainCeilingNotBinding(t *testing.T) {
	a := Analysis{PeakDB: -20, LUFSIntegrated: -30}

	opts := Options{Type: TypeLUFS, TargetLevel: -23, Ceiling: -1, HasCeiling: true}

	gain, err := CalculateGain(a, opts)
	if err != nil {
		t.Fatalf("CalculateGain: %v", err)
	}

	want := math.Pow(10, 7.0/20)
	if math.Abs(gain-want) > 1e-12 {
		t.Fatalf("gain = %v, want uncapped %v", gain, want)
	}
}

func TestCalculateGainSilentInput(t *testing.T) {
	silent := Analysis{
		PeakDB:         math.Inf(-1),
		RMSDB:          math.Inf(-1),
		LUFSIntegrated: math.Inf(-1),
	}

	for _, typ := range []Type{TypePeak, TypeRMS, TypeLUFS} {
		gain, err := CalculateGain(silent, Options{Type: typ, TargetLevel: -14})
		if err != nil {
			t.Fatalf("%v: %v", typ, err)
		}

		if math.IsInf(gain, 0) || math.IsNaN(gain) {
			t.Fatalf("%v: gain = %v, want finite", typ, gain)
		}

		want := math.Pow(10, MaxGainDB/20)
		if math.Abs(gain-want) > 1e-12 {
			t.Fatalf("%v: gain = %v, want clamp %v", typ, gain, want)
		}
	}
}

func TestCalculateGainUnknownType(t *testing.T) {
	_, err := CalculateGain(Analysis{}, Options{Type: Type(42)})
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("got %v, want ErrUnknownType", err)
	}
}

func TestParseType(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Type
	}{
		{"peak", TypePeak},
		{"RMS", TypeRMS},
		{" Lufs ", TypeLUFS},
	} {
		got, err := ParseType(tc.in)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", tc.in, err)
		}

		if got != tc.want {
			t.Fatalf("ParseType(%q) = %v, want %v", tc.in, got, tc.want)
		}

		if _, err := ParseType(got.String()); err != nil {
			t.Fatalf("String/Parse round trip failed for %v", got)
		}
	}

	if _, err := ParseType("loudness"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("got %v, want ErrUnknownType", err)
	}
}
