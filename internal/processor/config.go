package processor

import "fmt"

// DefaultChunkDuration is the analysis window length in seconds.
const DefaultChunkDuration = 0.1

// Config holds the immutable parameters for one processing run.
// Gap tolerance (1.5 chunks) and segment padding (1 chunk) are derived from
// ChunkDuration and are deliberately not configurable.
type Config struct {
	// Threshold is the RMS amplitude above which a window counts as
	// non-silent. Any positive value is accepted; the CLI maps its own
	// default onto this.
	Threshold float64

	// ChunkDuration is the length of each analysis window in seconds.
	ChunkDuration float64

	// FFmpegPath overrides the ffmpeg binary used for extraction and
	// assembly. Empty means "ffmpeg" from PATH.
	FFmpegPath string
}

// DefaultConfig returns a configuration with default values.
// Threshold has no core default and must be set by the caller.
func DefaultConfig() *Config {
	return &Config{
		ChunkDuration: DefaultChunkDuration,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %g", c.Threshold)
	}
	if c.ChunkDuration <= 0 {
		return fmt.Errorf("chunk duration must be positive, got %g", c.ChunkDuration)
	}
	return nil
}
