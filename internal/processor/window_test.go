package processor

import (
	"math"
	"testing"
)

// makeTicks returns n mono samples of constant amplitude.
func makeTicks(n int, amplitude float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = amplitude
	}
	return values
}

func TestChunkAccumulatorConstantAmplitude(t *testing.T) {
	// 100 Hz sample rate, 0.1s chunks: 10 ticks per window
	acc := newChunkAccumulator(0.1, 100, nil)
	acc.addFrame(makeTicks(25, 0.5), 1)

	samples := acc.finish()
	if len(samples) != 3 {
		t.Fatalf("got %d windows, want 3: %+v", len(samples), samples)
	}

	wantStarts := []float64{0.0, 0.1, 0.2}
	for i, s := range samples {
		if math.Abs(s.Start-wantStarts[i]) > timeEpsilon {
			t.Errorf("window %d start = %g, want %g", i, s.Start, wantStarts[i])
		}
		// RMS of a constant signal is its amplitude
		if math.Abs(s.Level-0.5) > 1e-12 {
			t.Errorf("window %d level = %g, want 0.5", i, s.Level)
		}
	}
}

func TestChunkAccumulatorSpansFrames(t *testing.T) {
	// Window boundaries ignore frame boundaries: two 7-tick frames plus one
	// 6-tick frame cover exactly two 10-tick windows.
	acc := newChunkAccumulator(0.1, 100, nil)
	acc.addFrame(makeTicks(7, 0.25), 1)
	acc.addFrame(makeTicks(7, 0.25), 1)
	acc.addFrame(makeTicks(6, 0.25), 1)

	samples := acc.finish()
	if len(samples) != 2 {
		t.Fatalf("got %d windows, want 2: %+v", len(samples), samples)
	}
	for i, s := range samples {
		if math.Abs(s.Level-0.25) > 1e-12 {
			t.Errorf("window %d level = %g, want 0.25", i, s.Level)
		}
	}
}

func TestChunkAccumulatorInterleavedStereo(t *testing.T) {
	// 4 ticks of stereo with channels at 0.6 and 0.8:
	// RMS = sqrt((0.36+0.64)/2) = sqrt(0.5)
	values := []float64{0.6, 0.8, 0.6, 0.8, 0.6, 0.8, 0.6, 0.8}
	acc := newChunkAccumulator(0.1, 40, nil)
	acc.addFrame(values, 2)

	samples := acc.finish()
	if len(samples) != 1 {
		t.Fatalf("got %d windows, want 1", len(samples))
	}
	want := math.Sqrt(0.5)
	if math.Abs(samples[0].Level-want) > 1e-12 {
		t.Errorf("level = %g, want %g", samples[0].Level, want)
	}
}

func TestChunkAccumulatorSkipOmitsWindows(t *testing.T) {
	// Window 1 is covered only by skipped ticks: it must be omitted from
	// the output while later windows keep their correct start times.
	acc := newChunkAccumulator(0.1, 100, nil)
	acc.addFrame(makeTicks(10, 0.5), 1) // window 0
	acc.skip(10)                        // window 1: no decodable samples
	acc.addFrame(makeTicks(10, 0.5), 1) // window 2

	samples := acc.finish()
	if len(samples) != 2 {
		t.Fatalf("got %d windows, want 2: %+v", len(samples), samples)
	}
	if math.Abs(samples[0].Start-0.0) > timeEpsilon {
		t.Errorf("first window start = %g, want 0.0", samples[0].Start)
	}
	if math.Abs(samples[1].Start-0.2) > timeEpsilon {
		t.Errorf("second window start = %g, want 0.2", samples[1].Start)
	}
}

func TestChunkAccumulatorPartialLastWindow(t *testing.T) {
	// 15 ticks at 100 Hz with 0.1s chunks: a full window plus a half one.
	// The shorter trailing window still gets its own sample.
	acc := newChunkAccumulator(0.1, 100, nil)
	acc.addFrame(makeTicks(15, 0.3), 1)

	samples := acc.finish()
	if len(samples) != 2 {
		t.Fatalf("got %d windows, want 2: %+v", len(samples), samples)
	}
	if math.Abs(samples[1].Start-0.1) > timeEpsilon {
		t.Errorf("trailing window start = %g, want 0.1", samples[1].Start)
	}
	if math.Abs(samples[1].Level-0.3) > 1e-12 {
		t.Errorf("trailing window level = %g, want 0.3", samples[1].Level)
	}
}

func TestChunkAccumulatorReportsWindowIndices(t *testing.T) {
	var indices []int
	acc := newChunkAccumulator(0.1, 100, func(index int) {
		indices = append(indices, index)
	})
	acc.addFrame(makeTicks(30, 0.5), 1)
	acc.finish()

	// Windows 0 and 1 close when their successors begin; window 2 closes
	// on finish.
	if len(indices) != 3 {
		t.Fatalf("got %d window reports, want 3: %v", len(indices), indices)
	}
	for i, idx := range indices {
		if idx != i {
			t.Errorf("report %d has index %d, want %d", i, idx, i)
		}
	}
}

func TestChunkAccumulatorEmptyStream(t *testing.T) {
	acc := newChunkAccumulator(0.1, 100, nil)
	if samples := acc.finish(); len(samples) != 0 {
		t.Errorf("empty stream produced windows: %+v", samples)
	}
}
