package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-loudnorm/dsp/buffer"
	"github.com/cwbudde/algo-loudnorm/dsp/core"
)

// readWAV decodes a WAV file into a planar float buffer in [-1, 1] and
// returns the source bit depth for the round trip.
func readWAV(path string) (*buffer.Audio, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%s: not a valid WAV file", path)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}

	if pcm.Format == nil || pcm.Format.NumChannels <= 0 {
		return nil, 0, errors.New("decode: missing format information")
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth <= 0 {
		bitDepth = 16
	}

	channels := pcm.Format.NumChannels
	frames := len(pcm.Data) / channels
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))

	out := buffer.NewAudio(channels, frames, float64(pcm.Format.SampleRate))
	for frame := range frames {
		for ch := range channels {
			out.Channel(ch)[frame] = float64(pcm.Data[frame*channels+ch]) * scale
		}
	}

	return out, bitDepth, nil
}

// writeWAV encodes a planar float buffer as PCM WAV at the given bit depth.
// Samples beyond full scale are clamped at the integer boundary.
func writeWAV(path string, buf *buffer.Audio, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	channels := buf.Channels()
	frames := buf.Len()
	scale := float64(int64(1)<<(bitDepth-1)) - 1

	data := make([]int, frames*channels)
	for frame := range frames {
		for ch := range channels {
			v := core.Clamp(buf.Channel(ch)[frame], -1, 1)
			data[frame*channels+ch] = int(v * scale)
		}
	}

	enc := wav.NewEncoder(f, int(buf.SampleRate()), bitDepth, channels, 1)

	if err := enc.Write(&audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  int(buf.SampleRate()),
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return enc.Close()
}
