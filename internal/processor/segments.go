package processor

// Segment is a padded, clamped time range of the input selected for
// inclusion in the output. Half-open: [Start, End).
type Segment struct {
	Start float64
	End   float64
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// classifyWindows returns the start times of the non-silent windows.
// An empty result is terminal: either every analyzed window was silent, or
// the media was shorter than one window and produced no windows at all.
func classifyWindows(samples []ChunkSample, threshold float64) ([]float64, error) {
	times := nonSilentTimes(samples, threshold)
	if len(times) == 0 {
		return nil, ErrNoNonsilentAudio
	}
	return times, nil
}

// nonSilentTimes returns the start time of every window whose RMS level
// exceeds threshold, in ascending time order. The comparison is strictly
// greater-than: a window exactly at the threshold is silent.
func nonSilentTimes(samples []ChunkSample, threshold float64) []float64 {
	var times []float64
	for _, s := range samples {
		if s.Level > threshold {
			times = append(times, s.Start)
		}
	}
	return times
}

// buildSegments merges runs of non-silent window start times into padded
// segments. A run breaks when the gap to the previous surviving window
// exceeds 1.5 chunks (strictly; an exact 1.5-chunk gap extends the run).
// Each closed run is padded by one chunk on both sides to recover the
// natural attack and decay the threshold test would otherwise clip, then
// clamped to [0, duration].
//
// times must be non-empty and sorted ascending; the result is then
// non-empty, non-overlapping, and ascending by Start.
func buildSegments(times []float64, chunkDuration, duration float64) []Segment {
	if len(times) == 0 {
		return nil
	}

	pad := func(start, end float64) Segment {
		return Segment{
			Start: max(0, start-chunkDuration),
			End:   min(duration, end+chunkDuration),
		}
	}

	var segments []Segment
	start := times[0]
	prev := start

	for _, t := range times[1:] {
		if t-prev > chunkDuration*1.5 {
			segments = append(segments, pad(start, prev))
			start = t
		}
		prev = t
	}

	// The final run is always closed
	return append(segments, pad(start, prev))
}
