package buffer

import "errors"

var (
	// ErrEmpty indicates a buffer with no channels or no frames.
	ErrEmpty = errors.New("buffer: empty buffer")

	// ErrChannelMismatch indicates channels of unequal length.
	ErrChannelMismatch = errors.New("buffer: channel lengths differ")

	// ErrSampleRate indicates a non-positive sample rate.
	ErrSampleRate = errors.New("buffer: sample rate must be positive")
)

// Audio is a planar multi-channel audio buffer.
type Audio struct {
	data       [][]float64
	sampleRate float64
}

// NewAudio returns a zero-filled buffer with the given channel count and
// length in frames.
func NewAudio(channels, frames int, sampleRate float64) *Audio {
	if channels < 0 {
		channels = 0
	}

	if frames < 0 {
		frames = 0
	}

	data := make([][]float64, channels)
	for ch := range data {
		data[ch] = make([]float64, frames)
	}

	return &Audio{data: data, sampleRate: sampleRate}
}

// FromChannels wraps existing per-channel slices without copying.
// Mutations to the slices are visible through the buffer and vice versa.
func FromChannels(data [][]float64, sampleRate float64) *Audio {
	return &Audio{data: data, sampleRate: sampleRate}
}

// Channels returns the number of channels.
func (a *Audio) Channels() int {
	return len(a.data)
}

// Len returns the length in frames. Channels are assumed equal-length;
// Validate reports buffers where they are not.
func (a *Audio) Len() int {
	if len(a.data) == 0 {
		return 0
	}

	return len(a.data[0])
}

// SampleRate returns the sample rate in Hz.
func (a *Audio) SampleRate() float64 {
	return a.sampleRate
}

// Channel returns the sample slice for channel ch.
func (a *Audio) Channel(ch int) []float64 {
	return a.data[ch]
}

// Duration returns the buffer length in seconds.
func (a *Audio) Duration() float64 {
	if a.sampleRate <= 0 {
		return 0
	}

	return float64(a.Len()) / a.sampleRate
}

// Validate reports whether the buffer is usable for analysis: at least one
// channel, at least one frame, equal channel lengths, positive sample rate.
func (a *Audio) Validate() error {
	if len(a.data) == 0 || len(a.data[0]) == 0 {
		return ErrEmpty
	}

	frames := len(a.data[0])
	for _, ch := range a.data[1:] {
		if len(ch) != frames {
			return ErrChannelMismatch
		}
	}

	if a.sampleRate <= 0 {
		return ErrSampleRate
	}

	return nil
}

// Clone returns a deep copy of the buffer.
func (a *Audio) Clone() *Audio {
	data := make([][]float64, len(a.data))
	for ch := range a.data {
		data[ch] = make([]float64, len(a.data[ch]))
		copy(data[ch], a.data[ch])
	}

	return &Audio{data: data, sampleRate: a.sampleRate}
}

// Tail returns a view of the trailing frames of the buffer, sharing storage
// with the original. If frames exceeds the buffer length the whole buffer is
// returned.
func (a *Audio) Tail(frames int) *Audio {
	length := a.Len()
	if frames >= length {
		return a
	}

	if frames < 0 {
		frames = 0
	}

	data := make([][]float64, len(a.data))
	for ch := range a.data {
		data[ch] = a.data[ch][length-frames:]
	}

	return &Audio{data: data, sampleRate: a.sampleRate}
}
