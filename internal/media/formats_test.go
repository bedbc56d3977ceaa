package media

import (
	"path/filepath"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"episode.mp3", KindAudio},
		{"episode.wav", KindAudio},
		{"episode.ogg", KindAudio},
		{"episode.flac", KindAudio},
		{"episode.aac", KindAudio},
		{"clip.mp4", KindVideo},
		{"clip.avi", KindVideo},
		{"clip.mkv", KindVideo},
		{"clip.mov", KindVideo},
		{"EPISODE.WAV", KindAudio}, // extension match is case-insensitive
		{"Clip.MoV", KindVideo},
		{"notes.txt", KindUnsupported},
		{"archive.tar.gz", KindUnsupported},
		{"noextension", KindUnsupported},
		{"/some/dir/episode.flac", KindAudio},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Classify(tt.path); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		want  string
	}{
		{
			name:  "audio keeps its container",
			input: "foo.wav",
			kind:  KindAudio,
			want:  "foo_no_silence.wav",
		},
		{
			name:  "video is normalized to mp4",
			input: "foo.mov",
			kind:  KindVideo,
			want:  "foo_no_silence.mp4",
		},
		{
			name:  "mp4 stays mp4",
			input: "foo.mp4",
			kind:  KindVideo,
			want:  "foo_no_silence.mp4",
		},
		{
			name:  "output lands beside the input",
			input: filepath.Join("some", "dir", "episode.flac"),
			kind:  KindAudio,
			want:  filepath.Join("some", "dir", "episode_no_silence.flac"),
		},
		{
			name:  "audio extension case is preserved",
			input: "loud.MP3",
			kind:  KindAudio,
			want:  "loud_no_silence.MP3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.input, tt.kind); got != tt.want {
				t.Errorf("OutputPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
