package levels

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-loudnorm/dsp/buffer"
	"github.com/cwbudde/algo-loudnorm/internal/testutil"
)

func TestSineLevels(t *testing.T) {
	const (
		fs  = 48000.0
		amp = 0.5
	)

	// 1000 Hz at 48 kHz hits the exact crest of the sine every 48 samples,
	// so the sample peak equals the amplitude.
	sig := testutil.DeterministicSine(1000, fs, amp, int(fs))
	buf := buffer.FromChannels([][]float64{sig}, fs)

	l := Analyze(buf)

	wantPeakDB := 20 * math.Log10(amp)
	if math.Abs(l.PeakDB-wantPeakDB) > 0.01 {
		t.Errorf("PeakDB = %v, want %v", l.PeakDB, wantPeakDB)
	}

	wantRMSDB := 20 * math.Log10(amp/math.Sqrt2)
	if math.Abs(l.RMSDB-wantRMSDB) > 0.1 {
		t.Errorf("RMSDB = %v, want %v", l.RMSDB, wantRMSDB)
	}

	// Crest factor of a sine is 3.01 dB.
	if math.Abs(l.DynamicRangeDB-3.01) > 0.1 {
		t.Errorf("DynamicRangeDB = %v, want approx 3.01", l.DynamicRangeDB)
	}

	if l.ClipCount != 0 {
		t.Errorf("ClipCount = %d, want 0", l.ClipCount)
	}
}

func TestFullScaleSquareDoesNotClip(t *testing.T) {
	// Exact full scale is not a clip: the threshold is strictly > 1.0.
	sig := testutil.DeterministicSquare(100, 48000, 1.0, 48000)
	buf := buffer.FromChannels([][]float64{sig}, 48000)

	l := Analyze(buf)

	if l.ClipCount != 0 {
		t.Fatalf("ClipCount = %d, want 0 for exactly full-scale input", l.ClipCount)
	}

	if l.Peak != 1.0 {
		t.Fatalf("Peak = %v, want 1.0", l.Peak)
	}
}

func TestClipCount(t *testing.T) {
	data := []float64{0.5, 1.0, -1.0, 1.01, -1.2, 0.99}
	buf := buffer.FromChannels([][]float64{data}, 48000)

	if l := Analyze(buf); l.ClipCount != 2 {
		t.Fatalf("ClipCount = %d, want 2", l.ClipCount)
	}
}

func TestStereoAggregation(t *testing.T) {
	left := []float64{0.5, 0, 0, 0}
	right := []float64{0, -0.8, 0, 0}
	buf := buffer.FromChannels([][]float64{left, right}, 48000)

	l := Analyze(buf)

	if l.Peak != 0.8 {
		t.Errorf("Peak = %v, want 0.8 (max across channels)", l.Peak)
	}

	// RMS over all 8 samples: sqrt((0.25 + 0.64) / 8).
	want := math.Sqrt(0.89 / 8)
	if math.Abs(l.RMS-want) > 1e-12 {
		t.Errorf("RMS = %v, want %v", l.RMS, want)
	}
}

func TestSilence(t *testing.T) {
	buf := buffer.NewAudio(2, 4800, 48000)

	l := Analyze(buf)

	if !math.IsInf(l.PeakDB, -1) || !math.IsInf(l.RMSDB, -1) {
		t.Errorf("silence should measure -Inf dB, got peak %v rms %v", l.PeakDB, l.RMSDB)
	}

	if l.ClipCount != 0 {
		t.Errorf("ClipCount = %d, want 0", l.ClipCount)
	}

	if l.DynamicRangeDB != 0 {
		t.Errorf("DynamicRangeDB = %v, want 0 for silence", l.DynamicRangeDB)
	}
}

func TestEmptyBuffer(t *testing.T) {
	l := Analyze(buffer.NewAudio(0, 0, 48000))

	if !math.IsInf(l.PeakDB, -1) {
		t.Fatalf("PeakDB = %v, want -Inf", l.PeakDB)
	}
}
