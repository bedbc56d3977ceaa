package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/linuxmatters/deadair/internal/audio"
	"github.com/linuxmatters/deadair/internal/cli"
	"github.com/linuxmatters/deadair/internal/config"
	"github.com/linuxmatters/deadair/internal/logging"
	"github.com/linuxmatters/deadair/internal/processor"
	"github.com/linuxmatters/deadair/internal/ui"
)

var (
	version = "0.1.0"
)

// CLI defines the command-line interface
type CLI struct {
	Version       bool     `short:"v" help:"Show version information"`
	Config        string   `short:"c" type:"path" help:"Path to TOML config file (optional)"`
	Logs          bool     `help:"Save a run report next to each output file"`
	Threshold     *float64 `placeholder:"RMS" help:"RMS level above which a window counts as audio"`
	ChunkDuration *float64 `placeholder:"SECONDS" help:"Analysis window length in seconds"`
	FFmpeg        string   `placeholder:"PATH" help:"Path to the ffmpeg binary"`
	Files         []string `arg:"" name:"files" help:"Audio or video files to process" type:"existingfile" optional:""`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("deadair"),
		kong.Description("Silence remover for audio and video files"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Validate input
	if len(cliArgs.Files) == 0 {
		cli.PrintError("No input files specified")
		ctx.PrintUsage(false)
		os.Exit(1)
	}

	// Load optional config file, then apply flag overrides
	settings, err := config.Load(cliArgs.Config)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	cfg := settings.Processor()
	if cliArgs.Threshold != nil {
		cfg.Threshold = *cliArgs.Threshold
	}
	if cliArgs.ChunkDuration != nil {
		cfg.ChunkDuration = *cliArgs.ChunkDuration
	}
	if cliArgs.FFmpeg != "" {
		cfg.FFmpegPath = cliArgs.FFmpeg
	}
	if err := cfg.Validate(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	writeLogs := cliArgs.Logs || settings.Logs

	log := newDebugLogger()
	defer log.Sync()

	// Create the Bubbletea UI model
	model := ui.NewModel(cliArgs.Files)

	// Start the TUI
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Start processing in background
	go func() {
		for i, inputPath := range cliArgs.Files {
			fileStartTime := time.Now()

			log.Debugw("starting file", "index", i, "input", inputPath)
			p.Send(ui.FileStartMsg{
				FileIndex: i,
				FileName:  inputPath,
			})

			task := processor.Start(inputPath, cfg)

			// Phase timings for the run report, measured between
			// status transitions
			var phases []logging.PhaseTiming
			phaseStart := fileStartTime
			lastStatus := ""

			for ev := range task.Events() {
				switch ev := ev.(type) {
				case processor.ProgressEvent:
					p.Send(ui.ProgressMsg{Percent: ev.Percent})
				case processor.StatusEvent:
					log.Debugw("status", "input", inputPath, "status", ev.Message)
					now := time.Now()
					if lastStatus != "" {
						phases = append(phases, logging.PhaseTiming{Name: lastStatus, Elapsed: now.Sub(phaseStart)})
					}
					lastStatus = ev.Message
					phaseStart = now
					p.Send(ui.ProgressMsg{Status: ev.Message})
				}
			}
			if lastStatus != "" {
				phases = append(phases, logging.PhaseTiming{Name: lastStatus, Elapsed: time.Since(phaseStart)})
			}

			result, err := task.Wait()
			if err != nil {
				log.Errorw("processing failed", "input", inputPath, "error", err)
				p.Send(ui.FileCompleteMsg{
					FileIndex: i,
					Error:     err,
				})
				continue
			}

			// Generate run report if --logs flag is set
			if writeLogs {
				if err := writeReport(inputPath, cfg, result, fileStartTime, phases); err != nil {
					log.Errorw("failed to generate log file", "input", inputPath, "error", err)
				}
			}

			log.Debugw("file complete", "input", inputPath, "output", result.OutputPath)
			p.Send(ui.FileCompleteMsg{
				FileIndex:      i,
				OutputPath:     result.OutputPath,
				InputDuration:  result.InputDuration,
				OutputDuration: result.OutputDuration,
			})
		}

		p.Send(ui.AllCompleteMsg{})
	}()

	// Run the program
	if _, err := p.Run(); err != nil {
		cli.PrintError(fmt.Sprintf("UI error: %v", err))
		os.Exit(1)
	}
}

// writeReport gathers source metadata and saves the run report next to the
// output file.
func writeReport(inputPath string, cfg *processor.Config, result *processor.Result, start time.Time, phases []logging.PhaseTiming) error {
	data := logging.ReportData{
		InputPath:  inputPath,
		OutputPath: result.OutputPath,
		StartTime:  start,
		EndTime:    time.Now(),
		Config:     cfg,
		Result:     result,
		Phases:     phases,
	}

	if reader, meta, err := audio.Open(inputPath); err == nil {
		data.SampleRate = meta.SampleRate
		data.Channels = meta.Channels
		reader.Close()
	}

	return logging.GenerateReport(data)
}

// newDebugLogger writes structured debug output to a file so it never
// interferes with the TUI. Logging failures fall back to a no-op logger.
func newDebugLogger() *zap.SugaredLogger {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"deadair-debug.log"}
	zcfg.ErrorOutputPaths = []string{"deadair-debug.log"}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
