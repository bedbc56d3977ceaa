// Package audio provides decode-side media file I/O using ffmpeg-go
package audio

import (
	"errors"
	"fmt"

	ffmpeg "github.com/csnewman/ffmpeg-go"
)

// ErrNoAudioStream is returned when the container opens but carries no
// audio stream to analyze.
var ErrNoAudioStream = errors.New("no audio stream found")

// Reader wraps the ffmpeg-go demuxer and decoder for sequential reads of
// the first audio stream in a media file. Video packets, if present, are
// skipped; the file is exclusively owned by the caller until Close.
type Reader struct {
	fmtCtx    *ffmpeg.AVFormatContext
	decCtx    *ffmpeg.AVCodecContext
	streamIdx int
	frame     *ffmpeg.AVFrame
	packet    *ffmpeg.AVPacket
}

// Metadata contains media file metadata
type Metadata struct {
	Duration   float64 // seconds
	SampleRate int
	Channels   int
	HasVideo   bool
}

// Open opens a media file (audio-only or audio+video) for decoded reads of
// its audio stream. Returns ErrNoAudioStream if the container has no audio.
func Open(filename string) (*Reader, *Metadata, error) {
	// Format context will be allocated by AVFormatOpenInput
	var fmtCtx *ffmpeg.AVFormatContext

	filenameC := ffmpeg.ToCStr(filename)
	defer filenameC.Free()

	if _, err := ffmpeg.AVFormatOpenInput(&fmtCtx, filenameC, nil, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}

	if _, err := ffmpeg.AVFormatFindStreamInfo(fmtCtx, nil); err != nil {
		ffmpeg.AVFormatCloseInput(&fmtCtx)
		return nil, nil, fmt.Errorf("failed to find stream info: %w", err)
	}

	// Find the first audio stream and note whether any video stream exists
	streamIdx := -1
	hasVideo := false
	var audioStream *ffmpeg.AVStream
	streams := fmtCtx.Streams()
	for i := 0; i < int(fmtCtx.NbStreams()); i++ {
		stream := streams.Get(uintptr(i))
		switch stream.Codecpar().CodecType() {
		case ffmpeg.AVMediaTypeAudio:
			if streamIdx == -1 {
				streamIdx = i
				audioStream = stream
			}
		case ffmpeg.AVMediaTypeVideo:
			hasVideo = true
		}
	}

	if streamIdx == -1 {
		ffmpeg.AVFormatCloseInput(&fmtCtx)
		return nil, nil, fmt.Errorf("%w: %s", ErrNoAudioStream, filename)
	}

	// Find decoder
	codecPar := audioStream.Codecpar()
	decoder := ffmpeg.AVCodecFindDecoder(codecPar.CodecId())
	if decoder == nil {
		ffmpeg.AVFormatCloseInput(&fmtCtx)
		return nil, nil, fmt.Errorf("decoder not found for codec ID %d in file: %s", codecPar.CodecId(), filename)
	}

	// Allocate decoder context
	decCtx := ffmpeg.AVCodecAllocContext3(decoder)
	if decCtx == nil {
		ffmpeg.AVFormatCloseInput(&fmtCtx)
		return nil, nil, fmt.Errorf("failed to allocate decoder context for file: %s", filename)
	}

	// Copy codec parameters to decoder context
	if _, err := ffmpeg.AVCodecParametersToContext(decCtx, codecPar); err != nil {
		ffmpeg.AVCodecFreeContext(&decCtx)
		ffmpeg.AVFormatCloseInput(&fmtCtx)
		return nil, nil, fmt.Errorf("failed to copy codec parameters: %w", err)
	}

	// Open decoder
	if _, err := ffmpeg.AVCodecOpen2(decCtx, decoder, nil); err != nil {
		ffmpeg.AVCodecFreeContext(&decCtx)
		ffmpeg.AVFormatCloseInput(&fmtCtx)
		return nil, nil, fmt.Errorf("failed to open decoder: %w", err)
	}

	duration := float64(fmtCtx.Duration()) / float64(ffmpeg.AVTimeBase)

	metadata := &Metadata{
		Duration:   duration,
		SampleRate: decCtx.SampleRate(),
		Channels:   decCtx.ChLayout().NbChannels(),
		HasVideo:   hasVideo,
	}

	reader := &Reader{
		fmtCtx:    fmtCtx,
		decCtx:    decCtx,
		streamIdx: streamIdx,
		frame:     ffmpeg.AVFrameAlloc(),
		packet:    ffmpeg.AVPacketAlloc(),
	}

	return reader, metadata, nil
}

// ReadFrame reads the next decoded audio frame
// Returns nil when end of file is reached
func (r *Reader) ReadFrame() (*ffmpeg.AVFrame, error) {
	for {
		// Try to receive a frame from the decoder
		if _, err := ffmpeg.AVCodecReceiveFrame(r.decCtx, r.frame); err == nil {
			return r.frame, nil
		} else if !errors.Is(err, ffmpeg.EAgain) {
			if errors.Is(err, ffmpeg.AVErrorEOF) {
				return nil, nil // EOF
			}
			return nil, fmt.Errorf("failed to receive frame: %w", err)
		}

		// Need more packets, read from file
		if _, err := ffmpeg.AVReadFrame(r.fmtCtx, r.packet); err != nil {
			if errors.Is(err, ffmpeg.AVErrorEOF) {
				// Flush decoder
				if _, err := ffmpeg.AVCodecSendPacket(r.decCtx, nil); err != nil {
					return nil, fmt.Errorf("failed to flush decoder: %w", err)
				}
				continue
			}
			return nil, fmt.Errorf("failed to read frame: %w", err)
		}

		// Skip non-audio packets
		if r.packet.StreamIndex() != r.streamIdx {
			ffmpeg.AVPacketUnref(r.packet)
			continue
		}

		// Send packet to decoder
		if _, err := ffmpeg.AVCodecSendPacket(r.decCtx, r.packet); err != nil {
			ffmpeg.AVPacketUnref(r.packet)
			return nil, fmt.Errorf("failed to send packet: %w", err)
		}

		ffmpeg.AVPacketUnref(r.packet)
	}
}

// Close releases all resources
func (r *Reader) Close() {
	if r.frame != nil {
		ffmpeg.AVFrameFree(&r.frame)
	}
	if r.packet != nil {
		ffmpeg.AVPacketFree(&r.packet)
	}
	if r.decCtx != nil {
		ffmpeg.AVCodecFreeContext(&r.decCtx)
	}
	if r.fmtCtx != nil {
		ffmpeg.AVFormatCloseInput(&r.fmtCtx)
	}
}
