package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/linuxmatters/deadair/internal/audio"
	"github.com/linuxmatters/deadair/internal/media"
)

// Progress phase boundaries (percent of the overall run).
const (
	progressLoaded    = 10
	progressAnalyzed  = 40
	progressDetected  = 50
	progressAssembled = 70
	progressSaved     = 100
)

// Status messages emitted at phase transitions.
const (
	statusLoading     = "Loading media..."
	statusAnalyzing   = "Analyzing audio..."
	statusDetecting   = "Detecting silent parts..."
	statusCreating    = "Creating clips..."
	statusCombining   = "Combining clips..."
	statusSavingAudio = "Saving audio..."
	statusSavingVideo = "Saving video..."
)

// ProgressFunc receives progress updates during a run: percent is 0-100 and
// non-decreasing, status is a human-readable phase name. Calls must not
// block; the worker does not wait for the sink.
type ProgressFunc func(percent int, status string)

// reportFunc is the internal, never-nil form of ProgressFunc.
type reportFunc func(percent int, status string)

// Result contains the outcome of a completed run.
type Result struct {
	OutputPath      string
	InputDuration   float64 // seconds of input media
	OutputDuration  float64 // seconds kept across all segments
	WindowsAnalyzed int
	WindowsKept     int
	Segments        []Segment
}

// RemovedDuration returns the seconds of input not represented in the output.
func (r *Result) RemovedDuration() float64 {
	removed := r.InputDuration - r.OutputDuration
	if removed < 0 {
		return 0
	}
	return removed
}

// Process removes silent intervals from the media file at inputPath and
// writes the result beside it as <stem>_no_silence<ext> (audio keeps its
// container; video is always written as .mp4). The run is synchronous and
// owns the media handle exclusively; it is released on every exit path.
//
// If progress is not nil, it is called with phase updates: 10 after load,
// 10-40 during analysis, 50 before segment building, 70 after assembly,
// 100 only after the save completes and resources are released.
func Process(inputPath string, cfg *Config, progress ProgressFunc) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	report := reportFunc(func(percent int, status string) {
		if progress != nil {
			progress(percent, status)
		}
	})

	report(0, statusLoading)

	kind := media.Classify(inputPath)
	if kind == media.KindUnsupported {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(inputPath))
	}

	reader, meta, err := audio.Open(inputPath)
	if err != nil {
		if errors.Is(err, audio.ErrNoAudioStream) {
			return nil, fmt.Errorf("%w: %s", ErrNoAudioTrack, inputPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	// The handle must be released exactly once on every path. Success path
	// closes early so the save can be reported only after release.
	closed := false
	closeReader := func() {
		if !closed {
			closed = true
			reader.Close()
		}
	}
	defer closeReader()

	report(progressLoaded, statusLoading)

	samples, err := analyzeChunks(reader, meta, cfg, report)
	if err != nil {
		return nil, err
	}

	report(progressDetected, statusDetecting)

	times, err := classifyWindows(samples, cfg.Threshold)
	if err != nil {
		return nil, err
	}

	report(progressDetected, statusCreating)

	segments := buildSegments(times, cfg.ChunkDuration, meta.Duration)

	outputPath, err := assemble(inputPath, kind, segments, cfg, report)
	if err != nil {
		return nil, err
	}

	// Release decode resources before declaring the run complete
	closeReader()
	report(progressSaved, statusSaving(kind))

	var kept float64
	for _, seg := range segments {
		kept += seg.Duration()
	}

	return &Result{
		OutputPath:      outputPath,
		InputDuration:   meta.Duration,
		OutputDuration:  kept,
		WindowsAnalyzed: len(samples),
		WindowsKept:     len(times),
		Segments:        segments,
	}, nil
}

// assemble extracts each segment to a scratch file, concatenates them in
// segment order, and writes the final output. Scratch files live in a
// temporary directory removed before return.
func assemble(inputPath string, kind media.Kind, segments []Segment, cfg *Config, report reportFunc) (string, error) {
	ctx := context.Background()
	cutter := media.NewCutter(cfg.FFmpegPath)

	tmpDir, err := os.MkdirTemp("", "deadair-")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}
	defer os.RemoveAll(tmpDir)

	// Scratch parts carry the output container so concat can stream-copy
	partExt := filepath.Ext(inputPath)
	if kind == media.KindVideo {
		partExt = ".mp4"
	}

	parts := make([]string, 0, len(segments))
	for i, seg := range segments {
		part := filepath.Join(tmpDir, fmt.Sprintf("part_%03d%s", i, partExt))
		if err := cutter.ExtractSegment(ctx, inputPath, part, seg.Start, seg.End, kind); err != nil {
			return "", fmt.Errorf("%w: segment %d [%.3f, %.3f): %v", ErrDecode, i, seg.Start, seg.End, err)
		}
		parts = append(parts, part)
	}

	report(progressAssembled, statusCombining)

	outputPath := media.OutputPath(inputPath, kind)
	report(progressAssembled, statusSaving(kind))

	if err := cutter.Concat(ctx, parts, outputPath); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return outputPath, nil
}

func statusSaving(kind media.Kind) string {
	if kind == media.KindVideo {
		return statusSavingVideo
	}
	return statusSavingAudio
}
