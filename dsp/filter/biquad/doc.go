// Package biquad provides the second-order IIR filter runtime used by the
// K-weighting pre-filter.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Coefficient design lives in
// dsp/filter/kweight.
package biquad
