package ui

// ProgressMsg represents a progress update from the processor
type ProgressMsg struct {
	Percent int    // 0 to 100
	Status  string // e.g. "Analyzing audio..."
}

// FileStartMsg indicates a new file has started processing
type FileStartMsg struct {
	FileIndex int
	FileName  string
}

// FileCompleteMsg indicates a file has finished processing
type FileCompleteMsg struct {
	FileIndex      int
	OutputPath     string
	InputDuration  float64 // seconds
	OutputDuration float64 // seconds
	Error          error
}

// AllCompleteMsg indicates all files have been processed
type AllCompleteMsg struct{}
