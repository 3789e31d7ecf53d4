// Package loudness measures EBU R128 / ITU-R BS.1770 gated loudness of whole
// audio buffers.
//
// Integrated loudness follows the R128 two-stage gating definition: the
// K-weighted signal is cut into 400 ms blocks with 75% overlap, blocks at or
// below -70 LUFS are discarded (absolute gate), and the remaining blocks are
// gated again at 10 LU below their power-domain mean (relative gate).
// ShortTerm and Momentary apply the same measurement to the trailing 3 s and
// 400 ms of the buffer, returning a single value rather than a time series.
//
// Every call allocates its own K-weighting scratch state, so concurrent
// measurements on distinct buffers need no locking.
package loudness
