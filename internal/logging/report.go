// Package logging handles generation of run reports for processed media files

package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/linuxmatters/deadair/internal/processor"
)

// PhaseTiming records how long one processing phase took.
type PhaseTiming struct {
	Name    string
	Elapsed time.Duration
}

// ReportData contains all the information needed to generate a run report
type ReportData struct {
	InputPath  string
	OutputPath string
	StartTime  time.Time
	EndTime    time.Time
	SampleRate int
	Channels   int
	Config     *processor.Config
	Result     *processor.Result
	Phases     []PhaseTiming
}

// GenerateReport creates a run report and saves it alongside the output file.
// The report filename will be <output>.log
func GenerateReport(data ReportData) error {
	logPath := strings.TrimSuffix(data.OutputPath, filepath.Ext(data.OutputPath)) + ".log"

	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer f.Close()

	writeReportHeader(f, data)
	writeParameters(f, data)
	writeAnalysisSummary(f, data.Result)
	writeSegmentTable(f, data.Result)
	writeRunSummary(f, data)

	return nil
}

// writeSection writes a section header with title and dashed underline.
// The underline length matches the title length.
func writeSection(f *os.File, title string) {
	fmt.Fprintln(f, title)
	fmt.Fprintln(f, strings.Repeat("-", len(title)))
}

// writeReportHeader outputs the report header with file info and timestamp.
func writeReportHeader(f *os.File, data ReportData) {
	fmt.Fprintln(f, "Deadair Silence Removal Report")
	fmt.Fprintln(f, "==============================")
	fmt.Fprintf(f, "Input:     %s\n", filepath.Base(data.InputPath))
	fmt.Fprintf(f, "Output:    %s\n", filepath.Base(data.OutputPath))
	fmt.Fprintf(f, "Processed: %s\n", data.EndTime.Format("2006-01-02 15:04:05 MST"))
	if data.SampleRate > 0 {
		fmt.Fprintf(f, "Source:    %d Hz, %s\n", data.SampleRate, channelName(data.Channels))
	}
	fmt.Fprintln(f, "")
}

// writeParameters outputs the run configuration.
// Gap tolerance and padding are derived from the window length.
func writeParameters(f *os.File, data ReportData) {
	if data.Config == nil {
		return
	}
	writeSection(f, "Parameters")
	fmt.Fprintf(f, "Threshold:      %.4g RMS\n", data.Config.Threshold)
	fmt.Fprintf(f, "Window length:  %.4g s\n", data.Config.ChunkDuration)
	fmt.Fprintf(f, "Gap tolerance:  %.4g s\n", data.Config.ChunkDuration*1.5)
	fmt.Fprintf(f, "Padding:        %.4g s\n", data.Config.ChunkDuration)
	fmt.Fprintln(f, "")
}

// writeAnalysisSummary outputs window counts and kept/removed durations.
func writeAnalysisSummary(f *os.File, result *processor.Result) {
	if result == nil {
		return
	}
	writeSection(f, "Analysis")

	fmt.Fprintf(f, "Windows analysed: %d\n", result.WindowsAnalyzed)
	fmt.Fprintf(f, "Windows kept:     %d\n", result.WindowsKept)

	removed := result.RemovedDuration()
	fmt.Fprintf(f, "Input duration:   %s\n", formatSeconds(result.InputDuration))
	fmt.Fprintf(f, "Output duration:  %s\n", formatSeconds(result.OutputDuration))
	if result.InputDuration > 0 {
		fmt.Fprintf(f, "Removed:          %s (%.1f%%)\n",
			formatSeconds(removed), removed/result.InputDuration*100)
	} else {
		fmt.Fprintf(f, "Removed:          %s\n", formatSeconds(removed))
	}
	fmt.Fprintln(f, "")
}

// writeSegmentTable outputs one row per kept segment.
func writeSegmentTable(f *os.File, result *processor.Result) {
	if result == nil || len(result.Segments) == 0 {
		return
	}
	writeSection(f, "Kept Segments")

	table := NewTable("Start", "End", "Length")
	for i, seg := range result.Segments {
		table.AddRow(fmt.Sprintf("%3d", i+1),
			formatSeconds(seg.Start),
			formatSeconds(seg.End),
			formatSeconds(seg.Duration()))
	}
	fmt.Fprint(f, table.String())
	fmt.Fprintln(f, "")
}

// writeRunSummary outputs the wall-clock timing for the run.
func writeRunSummary(f *os.File, data ReportData) {
	writeSection(f, "Run Summary")

	nameWidth := 0
	for _, phase := range data.Phases {
		if len(phase.Name) > nameWidth {
			nameWidth = len(phase.Name)
		}
	}
	for _, phase := range data.Phases {
		fmt.Fprintf(f, "%-*s %s\n", nameWidth+1, phase.Name, formatDuration(phase.Elapsed))
	}

	totalTime := data.EndTime.Sub(data.StartTime)
	fmt.Fprintf(f, "Total: %s", formatDuration(totalTime))

	if data.Result != nil && data.Result.InputDuration > 0 && totalTime > 0 {
		mediaDuration := time.Duration(data.Result.InputDuration * float64(time.Second))
		rtf := float64(mediaDuration) / float64(totalTime)
		fmt.Fprintf(f, " (%.0fx real-time)", rtf)
	}
	fmt.Fprintln(f, "")
}

// formatSeconds formats a position or length in seconds as m:ss.t
func formatSeconds(secs float64) string {
	if secs < 0 {
		secs = 0
	}
	minutes := int(secs) / 60
	rem := secs - float64(minutes*60)
	return fmt.Sprintf("%d:%04.1f", minutes, rem)
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}

// channelName returns a human-readable channel name
func channelName(channels int) string {
	switch channels {
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%d channels", channels)
	}
}
