package transcribe

import "context"

// Transcriber converts a captured audio file into recognized text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
