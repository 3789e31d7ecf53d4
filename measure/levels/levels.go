package levels

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-loudnorm/dsp/buffer"
	"github.com/cwbudde/algo-loudnorm/dsp/core"
)

// clipThreshold is the magnitude above which a sample counts as clipped.
// The comparison is strictly greater, so exact full scale is not a clip.
const clipThreshold = 1.0

// Levels holds time-domain level statistics of a buffer.
type Levels struct {
	Peak   float64 // max |sample| across all channels (linear)
	PeakDB float64
	RMS    float64 // sqrt(mean(sample^2)) across all channels (linear)
	RMSDB  float64

	// DynamicRangeDB is the crest distance PeakDB - RMSDB.
	DynamicRangeDB float64

	// ClipCount is the number of samples with |x| > 1.0.
	ClipCount int
}

// Analyze computes level statistics over every channel of buf in one pass.
// An empty buffer yields zero linear values and -Inf dB fields.
func Analyze(buf *buffer.Audio) Levels {
	var (
		peak    float64
		energy  float64
		samples int
		clipped int
	)

	for ch := range buf.Channels() {
		data := buf.Channel(ch)
		if len(data) == 0 {
			continue
		}

		if p := vecmath.MaxAbs(data); p > peak {
			peak = p
		}

		energy += vecmath.DotProduct(data, data)
		samples += len(data)

		for _, x := range data {
			if math.Abs(x) > clipThreshold {
				clipped++
			}
		}
	}

	if samples == 0 {
		return Levels{
			PeakDB:         math.Inf(-1),
			RMSDB:          math.Inf(-1),
			DynamicRangeDB: 0,
		}
	}

	rms := math.Sqrt(energy / float64(samples))

	l := Levels{
		Peak:      peak,
		PeakDB:    core.AmpToDB(peak),
		RMS:       rms,
		RMSDB:     core.AmpToDB(rms),
		ClipCount: clipped,
	}

	if math.IsInf(l.PeakDB, -1) || math.IsInf(l.RMSDB, -1) {
		l.DynamicRangeDB = 0
	} else {
		l.DynamicRangeDB = l.PeakDB - l.RMSDB
	}

	return l
}
