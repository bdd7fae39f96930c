package capture

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

// lastArg expands to the destination path, which Capturer passes last.
const lastArg = `for last; do :; done`

func TestCapture_Success(t *testing.T) {
	script := writeScript(t, lastArg+`; echo "fake wav bytes" > "$last"`)
	c := New(script, discardLogger())

	dest := filepath.Join(t.TempDir(), "segment.wav")
	got, err := c.Capture(context.Background(), "https://example.com/stream", dest, 30)
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if got != dest {
		t.Errorf("expected %q, got %q", dest, got)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestCapture_NonZeroExit(t *testing.T) {
	script := writeScript(t, `exit 1`)
	c := New(script, discardLogger())

	dest := filepath.Join(t.TempDir(), "segment.wav")
	_, err := c.Capture(context.Background(), "https://example.com/stream", dest, 30)

	var capErr *CaptureError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CaptureError, got %v", err)
	}
}

func TestCapture_NoOutputFile(t *testing.T) {
	script := writeScript(t, `exit 0`)
	c := New(script, discardLogger())

	dest := filepath.Join(t.TempDir(), "segment.wav")
	_, err := c.Capture(context.Background(), "https://example.com/stream", dest, 30)

	var capErr *CaptureError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CaptureError for missing output, got %v", err)
	}
}

func TestCapture_EmptyOutputFileIsDiscarded(t *testing.T) {
	script := writeScript(t, lastArg+`; : > "$last"`)
	c := New(script, discardLogger())

	dest := filepath.Join(t.TempDir(), "segment.wav")
	_, err := c.Capture(context.Background(), "https://example.com/stream", dest, 30)

	var capErr *CaptureError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected CaptureError for empty output, got %v", err)
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("empty partial output should be deleted")
	}
}

func TestCapture_KilledOnDeadline(t *testing.T) {
	script := writeScript(t, `sleep 30`)
	c := New(script, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	dest := filepath.Join(t.TempDir(), "segment.wav")
	start := time.Now()
	_, err := c.Capture(ctx, "https://example.com/stream", dest, 30)

	if err == nil {
		t.Fatal("expected error when the transcoder is killed")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("capture did not terminate promptly, took %s", elapsed)
	}
}
