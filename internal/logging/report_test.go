package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/linuxmatters/deadair/internal/processor"
)

func TestGenerateReport(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "episode_no_silence.flac")

	start := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	data := ReportData{
		InputPath:  filepath.Join(dir, "episode.flac"),
		OutputPath: outputPath,
		StartTime:  start,
		EndTime:    start.Add(42 * time.Second),
		SampleRate: 48000,
		Channels:   2,
		Config:     &processor.Config{Threshold: 0.0041, ChunkDuration: 0.1},
		Result: &processor.Result{
			OutputPath:      outputPath,
			InputDuration:   120.0,
			OutputDuration:  90.5,
			WindowsAnalyzed: 1200,
			WindowsKept:     905,
			Segments: []processor.Segment{
				{Start: 0, End: 30.2},
				{Start: 45.0, End: 105.3},
			},
		},
	}

	if err := GenerateReport(data); err != nil {
		t.Fatalf("GenerateReport() error = %v", err)
	}

	logPath := filepath.Join(dir, "episode_no_silence.log")
	raw, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("report not written next to the output: %v", err)
	}
	report := string(raw)

	for _, want := range []string{
		"Deadair Silence Removal Report",
		"episode.flac",
		"episode_no_silence.flac",
		"48000 Hz, stereo",
		"Threshold:      0.0041 RMS",
		"Window length:  0.1 s",
		"Windows analysed: 1200",
		"Windows kept:     905",
		"Kept Segments",
		"0:30.2",
		"1:45.3",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestGenerateReportMinimalData(t *testing.T) {
	dir := t.TempDir()
	data := ReportData{
		InputPath:  "in.wav",
		OutputPath: filepath.Join(dir, "in_no_silence.wav"),
		StartTime:  time.Now(),
		EndTime:    time.Now(),
	}

	// Nil config and result must not panic; header and summary still written
	if err := GenerateReport(data); err != nil {
		t.Fatalf("GenerateReport() error = %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "in_no_silence.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "Run Summary") {
		t.Error("report missing run summary section")
	}
}
