// Package normalize measures audio loudness and applies gain toward a target
// level for mastering and platform delivery.
//
// [Analyze] produces a full measurement record (sample peak, RMS, gated LUFS
// at three time scales, clip count, dynamic range). [CalculateGain] maps a
// measurement and target options to a linear gain, honoring an optional
// ceiling. [Normalize] ties both together and returns a new gain-adjusted
// buffer alongside a [Result]; the input buffer is never mutated.
// [NormalizeToR128] and [NormalizeForStreaming] wrap Normalize with the EBU
// R128 broadcast target and per-platform streaming targets.
//
// All functions are stateless apart from per-call scratch filter state, so
// concurrent calls on distinct buffers are safe.
package normalize
