package processor

import "math"

// ChunkSample is one analyzed window: the window's start time in the input
// timeline and the RMS amplitude of its samples (0.0 to 1.0).
type ChunkSample struct {
	Start float64
	Level float64
}

// chunkAccumulator buckets a stream of decoded samples into fixed-duration
// windows and produces one ChunkSample per window that received samples.
// Windows that yield no samples are omitted rather than recorded as silent.
// Samples arrive in decode order, so the output is ascending by Start.
type chunkAccumulator struct {
	chunkDuration float64
	sampleRate    float64

	window     int // index of the window currently accumulating
	sumSquares float64
	count      int64
	tick       int64 // absolute sample position in the audio stream

	samples []ChunkSample

	// onWindow, if set, is called with the window index each time a window
	// is closed. Used for progress reporting.
	onWindow func(index int)
}

func newChunkAccumulator(chunkDuration float64, sampleRate float64, onWindow func(index int)) *chunkAccumulator {
	return &chunkAccumulator{
		chunkDuration: chunkDuration,
		sampleRate:    sampleRate,
		onWindow:      onWindow,
	}
}

// addFrame accumulates one decoded frame's samples. values holds normalized
// samples in [-1, 1], interleaved across channels channels; the frame spans
// len(values)/channels sample ticks.
func (a *chunkAccumulator) addFrame(values []float64, channels int) {
	if channels < 1 {
		return
	}
	ticks := len(values) / channels

	for j := 0; j < ticks; j++ {
		t := float64(a.tick+int64(j)) / a.sampleRate
		w := int(t / a.chunkDuration)
		if w > a.window {
			a.flush()
			a.window = w
		}
		for c := 0; c < channels; c++ {
			v := values[j*channels+c]
			a.sumSquares += v * v
			a.count++
		}
	}

	a.tick += int64(ticks)
}

// skip advances the stream position by ticks without contributing samples.
// Used for frames that decode but whose samples cannot be read; windows
// covered only by skipped ticks end up omitted from the output.
func (a *chunkAccumulator) skip(ticks int) {
	if ticks <= 0 {
		return
	}
	t := float64(a.tick+int64(ticks)-1) / a.sampleRate
	w := int(t / a.chunkDuration)
	if w > a.window {
		a.flush()
		a.window = w
	}
	a.tick += int64(ticks)
}

// flush closes the current window, emitting a ChunkSample if any samples
// landed in it.
func (a *chunkAccumulator) flush() {
	if a.count > 0 {
		a.samples = append(a.samples, ChunkSample{
			Start: float64(a.window) * a.chunkDuration,
			Level: math.Sqrt(a.sumSquares / float64(a.count)),
		})
	}
	if a.onWindow != nil {
		a.onWindow(a.window)
	}
	a.sumSquares = 0
	a.count = 0
}

// finish closes the trailing window and returns all collected samples.
func (a *chunkAccumulator) finish() []ChunkSample {
	if a.count > 0 {
		a.flush()
	}
	return a.samples
}
