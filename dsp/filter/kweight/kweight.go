package kweight

import (
	"math"

	"github.com/cwbudde/algo-loudnorm/dsp/filter/biquad"
)

// BS.1770 pre-filter parameters. The shelf gain, corner frequencies, and
// quality factors are the exact values that make the bilinear-transform
// derivation below reproduce the coefficient tables published in the
// specification for 48 kHz.
const (
	shelfFreq   = 1681.9744509742939
	shelfGainDB = 3.999843853973347
	shelfQ      = 0.7071752369554196
	shelfSlope  = 0.4996667741545416

	highpassFreq = 38.13547087602444
	highpassQ    = 0.5003270373238773
)

// ShelfCoefficients designs the stage-1 high shelf for the given sample rate.
func ShelfCoefficients(sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * shelfFreq / sampleRate)
	vh := math.Pow(10, shelfGainDB/20)
	vb := math.Pow(vh, shelfSlope)

	a0 := 1 + k/shelfQ + k*k

	return biquad.Coefficients{
		B0: (vh + vb*k/shelfQ + k*k) / a0,
		B1: 2 * (k*k - vh) / a0,
		B2: (vh - vb*k/shelfQ + k*k) / a0,
		A1: 2 * (k*k - 1) / a0,
		A2: (1 - k/shelfQ + k*k) / a0,
	}
}

// HighpassCoefficients designs the stage-2 high-pass for the given sample
// rate. The numerator is left at [1, -2, 1] as in the BS.1770 tables, so the
// passband gain is not exactly unity.
func HighpassCoefficients(sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * highpassFreq / sampleRate)

	a0 := 1 + k/highpassQ + k*k

	return biquad.Coefficients{
		B0: 1,
		B1: -2,
		B2: 1,
		A1: 2 * (k*k - 1) / a0,
		A2: (1 - k/highpassQ + k*k) / a0,
	}
}

// Filter applies the K-weighting cascade with independent state per channel.
type Filter struct {
	shelf    []*biquad.Section
	highpass []*biquad.Section
}

// New returns a K-weighting filter for the given channel count and sample
// rate with zeroed state. Coefficients are fixed at construction.
//
// Panics if channels < 1 or sampleRate <= 0.
func New(channels int, sampleRate float64) *Filter {
	if channels < 1 {
		panic("kweight: channel count must be positive")
	}

	if sampleRate <= 0 {
		panic("kweight: sample rate must be positive")
	}

	shelfCoeffs := ShelfCoefficients(sampleRate)
	hpCoeffs := HighpassCoefficients(sampleRate)

	f := &Filter{
		shelf:    make([]*biquad.Section, channels),
		highpass: make([]*biquad.Section, channels),
	}

	for ch := range f.shelf {
		f.shelf[ch] = biquad.NewSection(shelfCoeffs)
		f.highpass[ch] = biquad.NewSection(hpCoeffs)
	}

	return f
}

// Channels returns the number of independent channel states.
func (f *Filter) Channels() int {
	return len(f.shelf)
}

// Process filters one sample of channel ch through both stages.
func (f *Filter) Process(ch int, x float64) float64 {
	return f.highpass[ch].ProcessSample(f.shelf[ch].ProcessSample(x))
}

// ProcessBlock filters a block of channel ch samples in place.
func (f *Filter) ProcessBlock(ch int, buf []float64) {
	f.shelf[ch].ProcessBlock(buf)
	f.highpass[ch].ProcessBlock(buf)
}

// ProcessBlockTo filters src of channel ch into dst without touching src.
// Both slices must have the same length.
func (f *Filter) ProcessBlockTo(ch int, dst, src []float64) {
	f.shelf[ch].ProcessBlockTo(dst, src)
	f.highpass[ch].ProcessBlock(dst)
}

// Reset zeroes the state of every channel. Call before filtering a fresh
// buffer.
func (f *Filter) Reset() {
	for ch := range f.shelf {
		f.shelf[ch].Reset()
		f.highpass[ch].Reset()
	}
}
