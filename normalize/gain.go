package normalize

import (
	"math"

	"github.com/cwbudde/algo-loudnorm/dsp/core"
)

// MaxGainDB bounds the gain applied to degenerate (silent) input, where the
// measured level is -Inf and the nominal gain would be infinite.
const MaxGainDB = 24.0

// CalculateGain maps an analysis and options to a linear gain factor >= 0.
// Silent input yields the clamped maximum gain rather than +Inf; an unknown
// Type yields ErrUnknownType.
func CalculateGain(a Analysis, opts Options) (float64, error) {
	db, _, err := gainDB(a, opts)
	if err != nil {
		return 0, err
	}

	return core.DBToAmp(db), nil
}

// gainDB computes the gain in dB plus the degenerate-input flag.
func gainDB(a Analysis, opts Options) (db float64, degenerate bool, err error) {
	var current float64

	switch opts.Type {
	case TypePeak:
		current = a.PeakDB
	case TypeRMS:
		current = a.RMSDB
	case TypeLUFS:
		current = a.LUFSIntegrated
	default:
		return 0, false, ErrUnknownType
	}

	// A level of -Inf means silence; the nominal gain would be infinite.
	// Clamp to the documented maximum and flag it instead.
	if math.IsInf(current, -1) || math.IsNaN(current) {
		return MaxGainDB, true, nil
	}

	db = opts.TargetLevel - current

	// Never push the measured peak above the ceiling.
	if opts.HasCeiling && !math.IsInf(a.PeakDB, -1) {
		if maxDB := opts.Ceiling - a.PeakDB; db > maxDB {
			db = maxDB
		}
	}

	return db, false, nil
}
