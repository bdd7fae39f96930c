// Package translate produces English and Hindi renditions of recognized
// Telugu text. Translation is best-effort: every failure path degrades to
// returning the source text unchanged.
package translate

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/praja-pulse/campaign-backend/internal/shared"
	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `You translate Telugu political speech into English and Hindi.
Respond with only a JSON object of the form {"english": "...", "hindi": "..."}.
Do not add commentary.`

type Result struct {
	Original string `json:"original"`
	English  string `json:"english"`
	Hindi    string `json:"hindi"`
}

type Translator interface {
	Translate(ctx context.Context, text string) Result
}

type GPTTranslator struct {
	creds  *shared.Credentials
	model  string
	logger *slog.Logger
}

func NewGPTTranslator(creds *shared.Credentials, logger *slog.Logger) *GPTTranslator {
	if logger == nil {
		logger = slog.Default()
	}
	return &GPTTranslator{
		creds:  creds,
		model:  openai.GPT4oMini,
		logger: logger.With("component", "translate"),
	}
}

// Translate never fails. Without a credential it runs in degraded mode and
// returns the source text for all three fields; the same happens when the
// completion call errors or its output cannot be parsed.
func (t *GPTTranslator) Translate(ctx context.Context, text string) Result {
	passthrough := Result{Original: text, English: text, Hindi: text}

	key, ok := t.creds.Get()
	if !ok {
		return passthrough
	}

	client := openai.NewClient(key)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       t.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		t.logger.Warn("translation call failed, passing text through", "error", err)
		return passthrough
	}
	if len(resp.Choices) == 0 {
		t.logger.Warn("translation returned no choices, passing text through")
		return passthrough
	}

	return parseRenditions(text, resp.Choices[0].Message.Content, t.logger)
}

// parseRenditions decodes the model output, tolerating code fences and
// missing fields. Each missing field falls back to the source independently.
func parseRenditions(source, raw string, logger *slog.Logger) Result {
	result := Result{Original: source, English: source, Hindi: source}

	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	var parsed struct {
		English string `json:"english"`
		Hindi   string `json:"hindi"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(cleaned)), &parsed); err != nil {
		logger.Warn("malformed translation payload, passing text through", "error", err)
		return result
	}

	if strings.TrimSpace(parsed.English) != "" {
		result.English = strings.TrimSpace(parsed.English)
	}
	if strings.TrimSpace(parsed.Hindi) != "" {
		result.Hindi = strings.TrimSpace(parsed.Hindi)
	}
	return result
}
