package normalize

import "fmt"

// FormatLUFS renders a loudness value with one decimal, e.g. "-14.0 LUFS".
// Negative infinity renders as "-Inf LUFS".
func FormatLUFS(value float64) string {
	return fmt.Sprintf("%.1f LUFS", value)
}

// FormatDB renders a signed level or gain with one decimal, e.g. "+1.5 dB".
// Negative infinity renders as "-Inf dB".
func FormatDB(value float64) string {
	return fmt.Sprintf("%+.1f dB", value)
}
