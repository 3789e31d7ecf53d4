// Package kweight implements the ITU-R BS.1770 K-weighting pre-filter.
//
// K-weighting approximates the ear's frequency response for loudness
// measurement with two cascaded biquad stages: a high shelf of roughly +4 dB
// above 1.7 kHz (modelling the acoustic effect of the head) followed by a
// second-order high-pass near 38 Hz. Coefficients are derived at an arbitrary
// sample rate via the bilinear transform; at 48 kHz they reproduce the
// constants published in the BS.1770 specification.
package kweight
