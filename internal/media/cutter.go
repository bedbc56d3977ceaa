package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Cutter extracts time ranges from a media file and concatenates them using
// the ffmpeg CLI. Cuts are re-encoded rather than stream-copied so segment
// boundaries land exactly on the requested timestamps instead of the nearest
// keyframe.
type Cutter struct {
	// ffmpegPath is the path to the ffmpeg binary. Defaults to "ffmpeg".
	ffmpegPath string
}

// NewCutter creates a Cutter. If ffmpegPath is empty, it defaults to
// "ffmpeg" (found via PATH).
func NewCutter(ffmpegPath string) *Cutter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &Cutter{ffmpegPath: ffmpegPath}
}

// ExtractSegment writes the range [start, end) of input to output.
// Video segments are encoded to libx264/aac so the resulting parts are
// uniform and safe to concatenate with stream copy; audio segments are
// encoded to whatever codec the output extension implies.
func (c *Cutter) ExtractSegment(ctx context.Context, input, output string, start, end float64, kind Kind) error {
	args := extractArgs(input, output, start, end, kind)
	return c.run(ctx, args)
}

// extractArgs builds the ffmpeg argument list for one segment cut.
// -ss/-to are placed after -i for accurate output seeking.
func extractArgs(input, output string, start, end float64, kind Kind) []string {
	args := []string{
		"-y",
		"-i", input,
		"-ss", fmt.Sprintf("%.6f", start),
		"-to", fmt.Sprintf("%.6f", end),
	}
	if kind == KindVideo {
		args = append(args,
			"-c:v", "libx264",
			"-preset", "fast",
			"-crf", "23",
			"-c:a", "aac",
			"-b:a", "128k",
		)
	}
	return append(args, output)
}

// Concat joins the given parts end-to-end into output using the concat
// demuxer. Parts are expected to be uniformly encoded (ExtractSegment
// guarantees this), so streams are copied without another encode.
func (c *Cutter) Concat(ctx context.Context, parts []string, output string) error {
	if len(parts) == 0 {
		return fmt.Errorf("no parts to concatenate")
	}

	listFile, err := writeConcatList(parts)
	if err != nil {
		return fmt.Errorf("create concat list: %w", err)
	}
	defer func() { _ = os.Remove(listFile) }()

	args := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listFile,
		"-c", "copy",
		output,
	}
	return c.run(ctx, args)
}

// writeConcatList creates a temporary file listing the parts in the format
// required by ffmpeg's concat demuxer.
func writeConcatList(parts []string) (string, error) {
	f, err := os.CreateTemp("", "deadair-concat-*.txt")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = f.Close() }()

	for _, part := range parts {
		absPath, err := filepath.Abs(part)
		if err != nil {
			return "", fmt.Errorf("get absolute path for %s: %w", part, err)
		}
		// Escape single quotes in path
		escapedPath := strings.ReplaceAll(absPath, "'", "'\\''")
		if _, err := fmt.Fprintf(f, "file '%s'\n", escapedPath); err != nil {
			return "", fmt.Errorf("write to concat list: %w", err)
		}
	}

	return f.Name(), nil
}

// run executes ffmpeg with the given arguments and returns an error carrying
// stderr output if the command fails.
func (c *Cutter) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, c.ffmpegPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("ffmpeg cancelled: %w", ctx.Err())
		}
		return &FFmpegError{
			Args:   args,
			Stderr: stderr.String(),
			Err:    err,
		}
	}

	return nil
}

// FFmpegError represents a failed ffmpeg invocation, including the stderr
// output needed to diagnose codec and container problems.
type FFmpegError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *FFmpegError) Error() string {
	return fmt.Sprintf("ffmpeg error: %v\nargs: %v\nstderr: %s", e.Err, e.Args, e.Stderr)
}

func (e *FFmpegError) Unwrap() error {
	return e.Err
}
