// Package capture records bounded audio segments from a live stream URL
// using ffmpeg.
package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"time"
)

// Grace period on top of the segment duration before ffmpeg is killed.
const deadlineSlack = 10 * time.Second

type CaptureError struct {
	StreamURL string
	Err       error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture audio segment: %v", e.Err)
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}

type Capturer struct {
	binary string
	logger *slog.Logger
}

func New(binary string, logger *slog.Logger) *Capturer {
	if binary == "" {
		binary = "ffmpeg"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Capturer{
		binary: binary,
		logger: logger.With("component", "capture"),
	}
}

// Capture records exactly durationSeconds of audio from streamURL into
// destPath as 16 kHz mono WAV, the input format Whisper expects. The ffmpeg
// process runs under a deadline of durationSeconds + 10s and is killed when
// it expires; partial output is discarded.
func (c *Capturer) Capture(ctx context.Context, streamURL, destPath string, durationSeconds int) (string, error) {
	deadline := time.Duration(durationSeconds)*time.Second + deadlineSlack
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.binary,
		"-y",
		"-loglevel", "error",
		"-i", streamURL,
		"-t", strconv.Itoa(durationSeconds),
		"-ac", "1",
		"-ar", "16000",
		"-acodec", "pcm_s16le",
		destPath,
	)

	if err := cmd.Run(); err != nil {
		os.Remove(destPath)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &CaptureError{StreamURL: streamURL, Err: fmt.Errorf("ffmpeg exceeded %s deadline", deadline)}
		}
		return "", &CaptureError{StreamURL: streamURL, Err: err}
	}

	info, err := os.Stat(destPath)
	if err != nil {
		return "", &CaptureError{StreamURL: streamURL, Err: fmt.Errorf("ffmpeg produced no output: %w", err)}
	}
	if info.Size() == 0 {
		os.Remove(destPath)
		return "", &CaptureError{StreamURL: streamURL, Err: errors.New("ffmpeg produced an empty file")}
	}

	c.logger.Debug("captured audio segment", "path", destPath, "bytes", info.Size())
	return destPath, nil
}
