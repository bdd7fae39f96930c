// Package transcribe adapts the hosted Whisper API as the speech-to-text
// capability.
package transcribe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/praja-pulse/campaign-backend/internal/shared"
	openai "github.com/sashabaranov/go-openai"
)

type WhisperClient struct {
	creds  *shared.Credentials
	logger *slog.Logger
}

func NewWhisperClient(creds *shared.Credentials, logger *slog.Logger) *WhisperClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &WhisperClient{
		creds:  creds,
		logger: logger.With("component", "transcribe"),
	}
}

// Transcribe uploads the segment and returns the recognized text. The source
// language is auto-detected; Telugu is not accepted as an explicit language
// hint by the API, so none is sent.
func (w *WhisperClient) Transcribe(ctx context.Context, audioPath string) (string, error) {
	key, ok := w.creds.Get()
	if !ok {
		return "", shared.ErrNoCredential
	}

	client := openai.NewClient(key)
	resp, err := client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	w.logger.Debug("transcribed segment", "path", audioPath, "chars", len(text))
	return text, nil
}
