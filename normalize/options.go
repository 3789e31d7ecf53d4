package normalize

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType indicates a normalization type outside peak/rms/lufs.
var ErrUnknownType = errors.New("normalize: unknown normalization type")

// Type selects the measurement a normalization targets.
type Type int

const (
	// TypePeak targets the sample peak level in dBFS.
	TypePeak Type = iota

	// TypeRMS targets the RMS level in dBFS.
	TypeRMS

	// TypeLUFS targets the gated integrated loudness in LUFS.
	TypeLUFS
)

// String returns the lower-case name of the type.
func (t Type) String() string {
	switch t {
	case TypePeak:
		return "peak"
	case TypeRMS:
		return "rms"
	case TypeLUFS:
		return "lufs"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType converts a case-insensitive name into a Type.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "peak":
		return TypePeak, nil
	case "rms":
		return TypeRMS, nil
	case "lufs":
		return TypeLUFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// Options configures a normalization pass.
type Options struct {
	// Type selects which measured level the gain targets.
	Type Type

	// TargetLevel is the desired level in dBFS (peak/rms) or LUFS.
	TargetLevel float64

	// Ceiling caps the output peak in dBFS when HasCeiling is set. The
	// gain is reduced so the measured peak never exceeds it, and any
	// residual overshoot is hard-clamped.
	Ceiling    float64
	HasCeiling bool

	// TruePeak selects the true-peak reading for ceiling math. The
	// current analyzer reports the sample peak as true peak (no
	// oversampling), so this is presently equivalent to the default.
	TruePeak bool

	// WindowSize is accepted for option compatibility but not consumed:
	// the R128 gating window is fixed at 400 ms.
	WindowSize float64
}

// Option mutates an Options.
type Option func(*Options)

// DefaultOptions returns the streaming-oriented defaults: integrated
// loudness toward -14 LUFS, no ceiling.
func DefaultOptions() Options {
	return Options{
		Type:        TypeLUFS,
		TargetLevel: -14,
	}
}

// WithType sets the targeted measurement.
func WithType(t Type) Option {
	return func(o *Options) {
		o.Type = t
	}
}

// WithTargetLevel sets the target level in dBFS or LUFS.
func WithTargetLevel(level float64) Option {
	return func(o *Options) {
		o.TargetLevel = level
	}
}

// WithCeiling enables the output peak ceiling in dBFS.
func WithCeiling(ceiling float64) Option {
	return func(o *Options) {
		o.Ceiling = ceiling
		o.HasCeiling = true
	}
}

// WithTruePeak selects true-peak readings for ceiling math.
func WithTruePeak(enabled bool) Option {
	return func(o *Options) {
		o.TruePeak = enabled
	}
}

// WithWindowSize sets the declared analysis window size in seconds.
func WithWindowSize(seconds float64) Option {
	return func(o *Options) {
		o.WindowSize = seconds
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Options {
	o := DefaultOptions()

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
