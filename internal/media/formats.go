// Package media classifies input files and drives the ffmpeg CLI for
// segment extraction and concatenation.
package media

import (
	"path/filepath"
	"strings"
)

// Kind describes how an input file is handled.
type Kind int

const (
	KindUnsupported Kind = iota
	KindAudio
	KindVideo
)

// audioExts are containers processed in audio-only mode. Output keeps the
// input extension.
var audioExts = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".ogg":  true,
	".flac": true,
	".aac":  true,
}

// videoExts are containers processed in audio+video mode. Output is always
// normalized to .mp4.
var videoExts = map[string]bool{
	".mp4": true,
	".avi": true,
	".mkv": true,
	".mov": true,
}

// Classify determines the processing mode from the file extension alone.
// No probing is performed; an unrecognized extension is rejected before any
// decode work starts.
func Classify(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case audioExts[ext]:
		return KindAudio
	case videoExts[ext]:
		return KindVideo
	default:
		return KindUnsupported
	}
}

// OutputPath derives the output filename from the input filename.
// Example: /path/to/episode.flac → /path/to/episode_no_silence.flac
// Video input is always written as .mp4 regardless of the source container,
// since assembly re-encodes to libx264/aac.
func OutputPath(inputPath string, kind Kind) string {
	dir := filepath.Dir(inputPath)
	filename := filepath.Base(inputPath)
	ext := filepath.Ext(filename)
	nameWithoutExt := strings.TrimSuffix(filename, ext)

	if kind == KindVideo {
		ext = ".mp4"
	}

	return filepath.Join(dir, nameWithoutExt+"_no_silence"+ext)
}
