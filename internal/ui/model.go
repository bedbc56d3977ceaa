// Package ui provides the Bubbletea terminal user interface for deadair
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FileStatus represents the processing state of a single file
type FileStatus int

const (
	StatusQueued FileStatus = iota
	StatusProcessing
	StatusComplete
	StatusError
)

// FileProgress tracks progress for a single media file
type FileProgress struct {
	InputPath  string
	OutputPath string
	Status     FileStatus

	// Progress tracking
	Percent     int    // 0 to 100
	StatusText  string // current phase, e.g. "Creating clips..."
	StartTime   time.Time
	ElapsedTime time.Duration

	// Completion results
	InputDuration  float64 // seconds
	OutputDuration float64 // seconds

	// Error tracking
	Error error
}

// Model is the Bubbletea model for the processing UI
type Model struct {
	// File queue
	Files          []FileProgress
	CurrentIndex   int
	TotalFiles     int
	CompletedFiles int
	FailedFiles    int

	// Global state
	StartTime time.Time
	Done      bool

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a new UI model with the given input files
func NewModel(inputFiles []string) Model {
	files := make([]FileProgress, len(inputFiles))
	for i, path := range inputFiles {
		files[i] = FileProgress{
			InputPath: path,
			Status:    StatusQueued,
		}
	}

	return Model{
		Files:        files,
		CurrentIndex: -1, // No file processing yet
		TotalFiles:   len(inputFiles),
		StartTime:    time.Now(),
	}
}

// Init initializes the model. All worker messages arrive through
// Program.Send, so there is nothing to schedule here.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case ProgressMsg:
		if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Files) {
			m.Files[m.CurrentIndex] = updateFileProgress(m.Files[m.CurrentIndex], msg)
		}
		return m, nil

	case FileStartMsg:
		// Start processing next file
		m.CurrentIndex = msg.FileIndex
		m.Files[m.CurrentIndex].Status = StatusProcessing
		m.Files[m.CurrentIndex].StartTime = time.Now()
		return m, nil

	case FileCompleteMsg:
		if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Files) {
			m.Files[m.CurrentIndex].OutputPath = msg.OutputPath
			m.Files[m.CurrentIndex].InputDuration = msg.InputDuration
			m.Files[m.CurrentIndex].OutputDuration = msg.OutputDuration
			m.Files[m.CurrentIndex].Error = msg.Error
			m.Files[m.CurrentIndex].ElapsedTime = time.Since(m.Files[m.CurrentIndex].StartTime)

			if msg.Error != nil {
				m.Files[m.CurrentIndex].Status = StatusError
				m.FailedFiles++
			} else {
				m.Files[m.CurrentIndex].Status = StatusComplete
				m.CompletedFiles++
			}
		}
		return m, nil

	case AllCompleteMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.Width == 0 {
		return "Initializing...\n"
	}

	if m.Done {
		return renderCompletionSummary(m)
	}

	return renderProcessingView(m)
}

// updateFileProgress updates a FileProgress based on a ProgressMsg.
// Progress never moves backwards within one file.
func updateFileProgress(fp FileProgress, msg ProgressMsg) FileProgress {
	if msg.Percent > fp.Percent {
		fp.Percent = msg.Percent
	}
	if msg.Status != "" {
		fp.StatusText = msg.Status
	}
	fp.ElapsedTime = time.Since(fp.StartTime)
	fp.Status = StatusProcessing
	return fp
}
