// Command loudnorm measures and normalizes the loudness of WAV files.
//
// Usage:
//
//	loudnorm [flags] input.wav
//
// Without -out it prints the analysis report only.
//
// Examples:
//
//	loudnorm track.wav
//	loudnorm -r128 -out master.wav track.wav
//	loudnorm -platform spotify -out stream.wav track.wav
//	loudnorm -type peak -target -0.3 -ceiling -0.3 -out peaked.wav track.wav
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-loudnorm/dsp/buffer"
	"github.com/cwbudde/algo-loudnorm/normalize"
)

func main() {
	typeName := flag.String("type", "lufs", "normalization type: peak, rms, or lufs")
	target := flag.Float64("target", math.NaN(), "target level in dBFS (peak/rms) or LUFS")
	ceiling := flag.Float64("ceiling", math.NaN(), "output peak ceiling in dBFS")
	platform := flag.String("platform", "", "streaming platform preset (spotify, youtube, ...)")
	r128 := flag.Bool("r128", false, "normalize to EBU R128 (-23 LUFS, -1 dBFS ceiling)")
	out := flag.String("out", "", "output WAV path; omit to analyze only")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: loudnorm [flags] input.wav\n\n")
		fmt.Fprintf(os.Stderr, "Measures peak, RMS, and EBU R128 loudness of a WAV file and\n")
		fmt.Fprintf(os.Stderr, "optionally writes a gain-normalized copy.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  loudnorm track.wav\n")
		fmt.Fprintf(os.Stderr, "  loudnorm -r128 -out master.wav track.wav\n")
		fmt.Fprintf(os.Stderr, "  loudnorm -platform spotify -out stream.wav track.wav\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	buf, bitDepth, err := readWAV(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	analysis, err := normalize.Analyze(buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printAnalysis(buf, analysis)

	if *out == "" {
		return
	}

	processed, result, err := run(buf, *typeName, *target, *ceiling, *platform, *r128)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := writeWAV(*out, processed, bitDepth); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printResult(*out, result)
}

func run(buf *buffer.Audio, typeName string, target, ceiling float64, platform string, r128 bool) (*buffer.Audio, normalize.Result, error) {
	switch {
	case r128:
		return normalize.NormalizeToR128(buf)
	case platform != "":
		return normalize.NormalizeForStreaming(buf, platform)
	}

	typ, err := normalize.ParseType(typeName)
	if err != nil {
		return nil, normalize.Result{}, err
	}

	opts := []normalize.Option{normalize.WithType(typ)}

	if !math.IsNaN(target) {
		opts = append(opts, normalize.WithTargetLevel(target))
	}

	if !math.IsNaN(ceiling) {
		opts = append(opts, normalize.WithCeiling(ceiling))
	}

	return normalize.Normalize(buf, normalize.ApplyOptions(opts...))
}

func printAnalysis(buf *buffer.Audio, a normalize.Analysis) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "channels\t%d\n", buf.Channels())
	fmt.Fprintf(w, "sample rate\t%.0f Hz\n", buf.SampleRate())
	fmt.Fprintf(w, "duration\t%.2f s\n", buf.Duration())
	fmt.Fprintf(w, "peak\t%s\n", normalize.FormatDB(a.PeakDB))
	fmt.Fprintf(w, "rms\t%s\n", normalize.FormatDB(a.RMSDB))
	fmt.Fprintf(w, "integrated\t%s\n", normalize.FormatLUFS(a.LUFSIntegrated))
	fmt.Fprintf(w, "short-term\t%s\n", normalize.FormatLUFS(a.LUFSShortTerm))
	fmt.Fprintf(w, "momentary\t%s\n", normalize.FormatLUFS(a.LUFSMomentary))
	fmt.Fprintf(w, "loudness range\t%.1f LU\n", a.LoudnessRangeLU)
	fmt.Fprintf(w, "dynamic range\t%.1f dB\n", a.DynamicRangeDB)
	fmt.Fprintf(w, "clipped samples\t%d\n", a.ClipCount)
	w.Flush()
}

func printResult(path string, r normalize.Result) {
	fmt.Printf("\napplied %s -> %s", normalize.FormatDB(r.GainDB), path)

	if r.Degenerate {
		fmt.Printf(" (silent input, gain clamped)")
	}

	if r.Clipped {
		fmt.Printf(" (warning: exceeds 0 dBFS)")
	}

	fmt.Printf(" in %s\n", r.ProcessingTime.Round(time.Millisecond))
}
