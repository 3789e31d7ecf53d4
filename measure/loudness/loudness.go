package loudness

import (
	"math"

	"github.com/cwbudde/algo-loudnorm/dsp/buffer"
	"github.com/cwbudde/algo-loudnorm/dsp/filter/kweight"
)

const (
	// Gating block and measurement window durations in seconds.
	blockDuration     = 0.4
	shortTermDuration = 3.0

	// Gating parameters.
	absThreshold = -70.0 // LUFS, absolute gate
	relOffset    = -10.0 // LU below the ungated mean, relative gate

	// blockOverlap is the fraction of a gating block shared with its
	// successor (75%, hop = blockSize/4).
	blockOverlap = 0.75

	// Loudness of a multi-channel mean square per BS.1770.
	lufsOffset = -0.691

	// Gating is defined for mono and stereo only; additional channels
	// are ignored.
	maxGatedChannels = 2
)

// Measurement bundles the three R128 loudness time scales.
type Measurement struct {
	Integrated float64 // LUFS, gated, whole buffer
	ShortTerm  float64 // LUFS, trailing 3 s
	Momentary  float64 // LUFS, trailing 400 ms
}

// Measure returns integrated, short-term, and momentary loudness of buf.
func Measure(buf *buffer.Audio) Measurement {
	return Measurement{
		Integrated: Integrated(buf),
		ShortTerm:  ShortTerm(buf),
		Momentary:  Momentary(buf),
	}
}

// Integrated measures the gated integrated loudness of buf in LUFS.
// Returns -Inf when no gating block survives (silence or a buffer shorter
// than one 400 ms block).
func Integrated(buf *buffer.Audio) float64 {
	return integrate(buf)
}

// ShortTerm measures the loudness of the trailing min(3 s, len) of buf as a
// single gated value.
func ShortTerm(buf *buffer.Audio) float64 {
	return integrate(buf.Tail(windowFrames(shortTermDuration, buf.SampleRate())))
}

// Momentary measures the loudness of the trailing min(400 ms, len) of buf as
// a single gated value.
func Momentary(buf *buffer.Audio) float64 {
	return integrate(buf.Tail(windowFrames(blockDuration, buf.SampleRate())))
}

func windowFrames(seconds, sampleRate float64) int {
	return int(math.Round(seconds * sampleRate))
}

func integrate(buf *buffer.Audio) float64 {
	fs := buf.SampleRate()
	frames := buf.Len()

	channels := min(buf.Channels(), maxGatedChannels)
	if channels == 0 || frames == 0 || fs <= 0 {
		return math.Inf(-1)
	}

	blockSize := int(math.Round(blockDuration * fs))

	hop := int(float64(blockSize) * (1 - blockOverlap))
	if blockSize <= 0 || hop <= 0 || frames < blockSize {
		return math.Inf(-1)
	}

	// K-weight every channel with fresh per-call filter state.
	filter := kweight.New(channels, fs)

	weighted := make([][]float64, channels)
	for ch := range weighted {
		weighted[ch] = make([]float64, frames)
		filter.ProcessBlockTo(ch, weighted[ch], buf.Channel(ch))
	}

	// Mean-square energy of each full 400 ms block across channels.
	blocks := make([]float64, 0, (frames-blockSize)/hop+1)
	norm := float64(blockSize * channels)

	for start := 0; start+blockSize <= frames; start += hop {
		sum := 0.0

		// Per-channel partial sums keep the block energy independent of
		// channel order.
		for ch := range weighted {
			chSum := 0.0
			for _, v := range weighted[ch][start : start+blockSize] {
				chSum += v * v
			}

			sum += chSum
		}

		blocks = append(blocks, sum/norm)
	}

	// Absolute gate: discard blocks at or below -70 LUFS.
	var (
		absGated    []float64
		absGatedSum float64
	)

	for _, ms := range blocks {
		if toLUFS(ms) > absThreshold {
			absGated = append(absGated, ms)
			absGatedSum += ms
		}
	}

	if len(absGated) == 0 {
		return math.Inf(-1)
	}

	// Relative gate: 10 LU below the power-domain mean of the surviving
	// blocks.
	ungated := toLUFS(absGatedSum / float64(len(absGated)))
	gammaRel := ungated + relOffset

	var (
		relGatedSum   float64
		relGatedCount int
	)

	for _, ms := range absGated {
		if toLUFS(ms) > gammaRel {
			relGatedSum += ms
			relGatedCount++
		}
	}

	if relGatedCount == 0 {
		return ungated
	}

	return toLUFS(relGatedSum / float64(relGatedCount))
}

func toLUFS(meanSquare float64) float64 {
	if meanSquare <= 0 {
		return math.Inf(-1)
	}

	return lufsOffset + 10*math.Log10(meanSquare)
}
