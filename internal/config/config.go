// Package config loads the optional TOML configuration file for deadair.
// Command-line flags take precedence over values from the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/linuxmatters/deadair/internal/processor"
)

// DefaultThreshold is the RMS level above which a window counts as
// non-silent when neither the config file nor the CLI overrides it.
const DefaultThreshold = 0.0041

// Settings mirrors the TOML config file.
type Settings struct {
	Threshold     float64 `mapstructure:"threshold"`
	ChunkDuration float64 `mapstructure:"chunk_duration"`
	FFmpegPath    string  `mapstructure:"ffmpeg_path"`
	Logs          bool    `mapstructure:"logs"`
}

// Load reads settings from the given TOML file. With an empty path it
// searches the user config directory and the working directory; a missing
// file is not an error and yields the defaults. An explicit path that
// cannot be read is an error.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetDefault("threshold", DefaultThreshold)
	v.SetDefault("chunk_duration", processor.DefaultChunkDuration)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("deadair")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "deadair"))
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &s, nil
}

// Processor converts the settings into a processing configuration.
func (s *Settings) Processor() *processor.Config {
	return &processor.Config{
		Threshold:     s.Threshold,
		ChunkDuration: s.ChunkDuration,
		FFmpegPath:    s.FFmpegPath,
	}
}
