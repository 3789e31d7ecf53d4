package normalize

import "strings"

// defaultPlatformTarget is used for unrecognized platform names; -14 LUFS is
// the most common streaming target.
const defaultPlatformTarget = -14.0

// platformTargets maps delivery platforms and standards to their loudness
// targets in LUFS.
var platformTargets = map[string]float64{
	"spotify":     -14,
	"youtube":     -14,
	"apple-music": -16,
	"apple":       -16,
	"tidal":       -14,
	"amazon":      -14,
	"deezer":      -15,
	"soundcloud":  -14,
	"broadcast":   -23,
	"podcast":     -16,
	"cinema":      -24,
}

// PlatformTarget returns the loudness target in LUFS for a platform or
// delivery standard. The lookup is case-insensitive; unknown names map to
// -14 LUFS.
func PlatformTarget(name string) float64 {
	if target, ok := platformTargets[strings.ToLower(strings.TrimSpace(name))]; ok {
		return target
	}

	return defaultPlatformTarget
}
