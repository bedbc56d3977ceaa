package processor

import "errors"

// Run failures are tagged with one of these sentinels so callers can
// distinguish the terminal conditions without parsing messages.
var (
	// ErrUnsupportedFormat is returned when the input extension is neither a
	// recognized audio nor audio+video type.
	ErrUnsupportedFormat = errors.New("unsupported media format")

	// ErrNoAudioTrack is returned when the media decodes but has no audio
	// stream to analyze.
	ErrNoAudioTrack = errors.New("no audio track found in the file")

	// ErrNoNonsilentAudio is returned when every analyzed window is silent,
	// or the media is shorter than one chunk.
	ErrNoNonsilentAudio = errors.New("no non-silent parts found in the media")

	// ErrDecode is returned when a time-range extraction fails during
	// analysis or assembly.
	ErrDecode = errors.New("decode failed")

	// ErrEncode is returned when saving or encoding the output fails.
	ErrEncode = errors.New("encode failed")
)
