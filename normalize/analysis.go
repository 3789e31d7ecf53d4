package normalize

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-loudnorm/dsp/buffer"
	"github.com/cwbudde/algo-loudnorm/measure/levels"
	"github.com/cwbudde/algo-loudnorm/measure/loudness"
)

// Analysis is the complete measurement record of one buffer.
type Analysis struct {
	PeakDB float64 // sample peak, dBFS
	RMSDB  float64 // dBFS

	LUFSIntegrated float64 // gated, whole buffer
	LUFSShortTerm  float64 // trailing 3 s
	LUFSMomentary  float64 // trailing 400 ms

	// TruePeakDB is reported as the sample peak; inter-sample overshoot
	// is not reconstructed.
	TruePeakDB float64

	// LoudnessRangeLU approximates loudness range as
	// |momentary - integrated|.
	LoudnessRangeLU float64

	DynamicRangeDB float64 // PeakDB - RMSDB
	ClipCount      int     // samples with |x| > 1.0
}

// Analyze measures buf and returns its analysis record. The buffer is
// validated first and never mutated; all filter scratch state is allocated
// per call.
func Analyze(buf *buffer.Audio) (Analysis, error) {
	if err := buf.Validate(); err != nil {
		return Analysis{}, fmt.Errorf("normalize: %w", err)
	}

	lv := levels.Analyze(buf)
	m := loudness.Measure(buf)

	lra := 0.0
	if !math.IsInf(m.Momentary, -1) && !math.IsInf(m.Integrated, -1) {
		lra = math.Abs(m.Momentary - m.Integrated)
	}

	return Analysis{
		PeakDB:          lv.PeakDB,
		RMSDB:           lv.RMSDB,
		LUFSIntegrated:  m.Integrated,
		LUFSShortTerm:   m.ShortTerm,
		LUFSMomentary:   m.Momentary,
		TruePeakDB:      lv.PeakDB,
		LoudnessRangeLU: lra,
		DynamicRangeDB:  lv.DynamicRangeDB,
		ClipCount:       lv.ClipCount,
	}, nil
}
