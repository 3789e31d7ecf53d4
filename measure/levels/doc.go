// Package levels computes time-domain level statistics of an audio buffer:
// sample peak, RMS, clipped-sample count, and dynamic range. Measurements run
// over the raw (unweighted) signal across all channels.
package levels
