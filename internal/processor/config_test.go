package processor

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ChunkDuration != DefaultChunkDuration {
		t.Errorf("ChunkDuration = %g, want %g", cfg.ChunkDuration, DefaultChunkDuration)
	}
	if cfg.Threshold != 0 {
		t.Errorf("Threshold = %g, want no default (0)", cfg.Threshold)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Threshold: 0.0041, ChunkDuration: 0.1}, false},
		{"tiny threshold still valid", Config{Threshold: 0.0001, ChunkDuration: 0.1}, false},
		{"zero threshold", Config{Threshold: 0, ChunkDuration: 0.1}, true},
		{"negative threshold", Config{Threshold: -0.1, ChunkDuration: 0.1}, true},
		{"zero chunk duration", Config{Threshold: 0.0041, ChunkDuration: 0}, true},
		{"negative chunk duration", Config{Threshold: 0.0041, ChunkDuration: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
