// Package processor implements silence detection and removal: chunked RMS
// analysis, threshold classification, segment merging, and clip assembly.
package processor

import (
	"fmt"
	"unsafe"

	ffmpeg "github.com/csnewman/ffmpeg-go"

	"github.com/linuxmatters/deadair/internal/audio"
)

// analyzeChunks walks the audio stream in one sequential decode pass,
// bucketing samples into fixed windows of cfg.ChunkDuration and computing
// the RMS amplitude of each. Windows that yield no decodable samples are
// omitted from the result. The returned sequence is ascending by Start.
//
// Progress is reported per closed window, scaled linearly into the 10-40
// range of the overall run.
func analyzeChunks(r *audio.Reader, meta *audio.Metadata, cfg *Config, report reportFunc) ([]ChunkSample, error) {
	chunkCount := int(meta.Duration / cfg.ChunkDuration)
	if chunkCount == 0 {
		// Media shorter than one chunk: nothing to analyze
		return nil, nil
	}

	acc := newChunkAccumulator(cfg.ChunkDuration, float64(meta.SampleRate), func(index int) {
		progress := progressLoaded + (index*(progressAnalyzed-progressLoaded))/chunkCount
		if progress > progressAnalyzed {
			progress = progressAnalyzed
		}
		report(progress, statusAnalyzing)
	})

	for {
		frame, err := r.ReadFrame()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if frame == nil {
			break // EOF
		}

		values, channels := frameSamples(frame)
		if len(values) == 0 {
			// Undecodable samples still occupy time in the stream
			acc.skip(int(frame.NbSamples()))
			continue
		}
		acc.addFrame(values, channels)
	}

	samples := acc.finish()

	// The analysis grid holds exactly chunkCount windows; trailing samples
	// past the last full window are not analyzed.
	cutoff := float64(chunkCount) * cfg.ChunkDuration
	for len(samples) > 0 && samples[len(samples)-1].Start >= cutoff {
		samples = samples[:len(samples)-1]
	}

	return samples, nil
}

// frameSamples converts a decoded frame's samples to normalized float64
// values in [-1, 1], interleaved across all channels. Planar formats are
// re-interleaved from their per-channel planes so every channel contributes
// to the window RMS. Unsupported sample formats yield nothing, so their
// frames simply contribute no samples to the chunk sequence.
func frameSamples(frame *ffmpeg.AVFrame) ([]float64, int) {
	if frame == nil || frame.NbSamples() == 0 {
		return nil, 0
	}

	sampleFmt := frame.Format()
	nbSamples := int(frame.NbSamples())
	nbChannels := frame.ChLayout().NbChannels()

	dataPtr := frame.Data().Get(0)
	if dataPtr == nil {
		return nil, 0
	}

	convert := func(n int, at func(i int) float64) []float64 {
		values := make([]float64, n)
		for i := range values {
			values[i] = at(i)
		}
		return values
	}

	switch ffmpeg.AVSampleFormat(sampleFmt) {
	case ffmpeg.AVSampleFmtS16:
		samples := unsafe.Slice((*int16)(dataPtr), nbSamples*nbChannels)
		return convert(len(samples), func(i int) float64 { return float64(samples[i]) / 32768.0 }), nbChannels

	case ffmpeg.AVSampleFmtS16P:
		return interleavePlanes[int16](frame, nbSamples, nbChannels, 32768.0)

	case ffmpeg.AVSampleFmtFlt:
		samples := unsafe.Slice((*float32)(dataPtr), nbSamples*nbChannels)
		return convert(len(samples), func(i int) float64 { return float64(samples[i]) }), nbChannels

	case ffmpeg.AVSampleFmtFltp:
		return interleavePlanes[float32](frame, nbSamples, nbChannels, 1.0)

	case ffmpeg.AVSampleFmtS32:
		samples := unsafe.Slice((*int32)(dataPtr), nbSamples*nbChannels)
		return convert(len(samples), func(i int) float64 { return float64(samples[i]) / 2147483648.0 }), nbChannels

	case ffmpeg.AVSampleFmtS32P:
		return interleavePlanes[int32](frame, nbSamples, nbChannels, 2147483648.0)

	default:
		return nil, 0
	}
}

// interleavePlanes gathers one plane per channel from a planar frame and
// re-interleaves the samples, normalized by scale. The frame data array
// holds at most 8 plane pointers; channels beyond that are not read.
func interleavePlanes[T int16 | int32 | float32](frame *ffmpeg.AVFrame, nbSamples, nbChannels int, scale float64) ([]float64, int) {
	if nbChannels > 8 {
		nbChannels = 8
	}

	planes := make([][]T, 0, nbChannels)
	for c := 0; c < nbChannels; c++ {
		ptr := frame.Data().Get(uintptr(c))
		if ptr == nil {
			break
		}
		planes = append(planes, unsafe.Slice((*T)(ptr), nbSamples))
	}
	return interleave(planes, nbSamples, scale)
}

// interleave merges per-channel planes into one interleaved sample sequence,
// normalized by scale. All channels contribute, so a window's RMS reflects
// the whole frame rather than the first channel only.
func interleave[T int16 | int32 | float32](planes [][]T, nbSamples int, scale float64) ([]float64, int) {
	if len(planes) == 0 {
		return nil, 0
	}

	values := make([]float64, 0, nbSamples*len(planes))
	for i := 0; i < nbSamples; i++ {
		for _, plane := range planes {
			values = append(values, float64(plane[i])/scale)
		}
	}
	return values, len(planes)
}
