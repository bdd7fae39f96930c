// Package resolver turns a channel identifier into a playable live-stream URL
// by shelling out to yt-dlp.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

const channelIDPrefix = "UC"

type ResolutionError struct {
	Channel string
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve live stream for %s: %v", e.Channel, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

type Resolver struct {
	binary string
	logger *slog.Logger
}

func New(binary string, logger *slog.Logger) *Resolver {
	if binary == "" {
		binary = "yt-dlp"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		binary: binary,
		logger: logger.With("component", "resolver"),
	}
}

// LivePageURL maps the accepted identifier shapes onto a live-page URL.
// "@handle" and "UC…" are explicit; anything else is treated as a bare
// handle. Malformed identifiers therefore still produce a syntactically
// valid URL and fail later, at extraction time.
func LivePageURL(channelID string) string {
	switch {
	case strings.HasPrefix(channelID, "@"):
		return fmt.Sprintf("https://www.youtube.com/%s/live", channelID)
	case strings.HasPrefix(channelID, channelIDPrefix):
		return fmt.Sprintf("https://www.youtube.com/channel/%s/live", channelID)
	default:
		return fmt.Sprintf("https://www.youtube.com/@%s/live", channelID)
	}
}

// Resolve asks yt-dlp for the direct media URL of the channel's live
// broadcast, requesting the cheapest format that still carries audio.
// It never retries; retry policy belongs to the caller.
func (r *Resolver) Resolve(ctx context.Context, channelID string) (string, error) {
	pageURL := LivePageURL(channelID)

	cmd := exec.CommandContext(ctx, r.binary,
		"-g",
		"-f", "worstaudio/worst",
		"--no-warnings",
		pageURL,
	)

	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			r.logger.Error("yt-dlp failed", "channel_id", channelID, "stderr", strings.TrimSpace(string(ee.Stderr)))
		}
		return "", &ResolutionError{Channel: channelID, Err: err}
	}

	streamURL := strings.TrimSpace(string(out))
	if streamURL == "" {
		return "", &ResolutionError{Channel: channelID, Err: fmt.Errorf("yt-dlp returned no URL for %s", pageURL)}
	}

	// Multiple formats print one URL per line; the first is the audio one.
	if idx := strings.IndexByte(streamURL, '\n'); idx >= 0 {
		streamURL = strings.TrimSpace(streamURL[:idx])
	}

	r.logger.Debug("resolved live stream", "channel_id", channelID)
	return streamURL, nil
}
