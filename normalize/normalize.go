package normalize

import (
	"math"
	"time"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-loudnorm/dsp/buffer"
	"github.com/cwbudde/algo-loudnorm/dsp/core"
)

// Result reports a completed normalization pass.
type Result struct {
	Gain   float64 // linear, >= 0
	GainDB float64

	Analysis Analysis

	// Clipped reports that the measured peak plus the applied gain
	// exceeds 0 dBFS, independent of whether a ceiling clamp ran.
	Clipped bool

	// Degenerate reports silent input: the gain was clamped to MaxGainDB
	// instead of the infinite nominal gain.
	Degenerate bool

	ProcessingTime time.Duration
}

// Normalize analyzes buf, computes the gain toward opts.TargetLevel, and
// returns a new buffer of identical shape with the gain applied. With a
// ceiling set, output samples beyond the ceiling magnitude are hard-clamped
// with their sign preserved. Output samples are always finite.
func Normalize(buf *buffer.Audio, opts Options) (*buffer.Audio, Result, error) {
	start := time.Now()

	analysis, err := Analyze(buf)
	if err != nil {
		return nil, Result{}, err
	}

	db, degenerate, err := gainDB(analysis, opts)
	if err != nil {
		return nil, Result{}, err
	}

	gain := core.DBToAmp(db)

	out := buffer.NewAudio(buf.Channels(), buf.Len(), buf.SampleRate())
	for ch := range buf.Channels() {
		vecmath.ScaleBlock(out.Channel(ch), buf.Channel(ch), gain)
	}

	if opts.HasCeiling {
		limit := core.DBToAmp(opts.Ceiling)
		for ch := range out.Channels() {
			clampMagnitude(out.Channel(ch), limit)
		}
	}

	result := Result{
		Gain:           gain,
		GainDB:         db,
		Analysis:       analysis,
		Clipped:        !math.IsInf(analysis.PeakDB, -1) && analysis.PeakDB+db > 0,
		Degenerate:     degenerate,
		ProcessingTime: time.Since(start),
	}

	return out, result, nil
}

// NormalizeToR128 normalizes to the EBU R128 broadcast target of -23 LUFS
// with a -1 dBFS ceiling.
func NormalizeToR128(buf *buffer.Audio) (*buffer.Audio, Result, error) {
	return Normalize(buf, ApplyOptions(
		WithType(TypeLUFS),
		WithTargetLevel(-23),
		WithCeiling(-1),
		WithTruePeak(true),
	))
}

// NormalizeForStreaming normalizes to the named platform's loudness target
// (see PlatformTarget) with a -1 dBFS ceiling.
func NormalizeForStreaming(buf *buffer.Audio, platform string) (*buffer.Audio, Result, error) {
	return Normalize(buf, ApplyOptions(
		WithType(TypeLUFS),
		WithTargetLevel(PlatformTarget(platform)),
		WithCeiling(-1),
	))
}

// clampMagnitude hard-clamps samples beyond the limit magnitude, keeping the
// sign. This is amplitude clamping, not limiting.
func clampMagnitude(buf []float64, limit float64) {
	for i, x := range buf {
		buf[i] = core.Clamp(x, -limit, limit)
	}
}
