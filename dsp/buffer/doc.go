// Package buffer provides the multi-channel audio buffer consumed by the
// measurement and normalization packages.
//
// An [Audio] stores planar (non-interleaved) float64 samples with a nominal
// range of [-1, 1], together with the channel count and sample rate. The
// analysis code treats buffers as immutable inputs; processing functions
// allocate new buffers of identical shape instead of mutating in place.
package buffer
