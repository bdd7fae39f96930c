package gateway

import "github.com/praja-pulse/campaign-backend/internal/livestream"

type MessageType string

const (
	MessageTypeStartTranscription MessageType = "start_transcription"
	MessageTypeStopTranscription  MessageType = "stop_transcription"
	MessageTypeTranscript         MessageType = "transcript"
	MessageTypeTranscriptionError MessageType = "transcription_error"
)

// ClientMessage is what subscribers send over the socket.
type ClientMessage struct {
	Type                MessageType `json:"type"`
	ChannelID           string      `json:"channel_id"`
	APIKey              string      `json:"api_key,omitempty"`
	PoliticalFilterOnly bool        `json:"political_filter_only,omitempty"`
}

// ServerMessage is the broadcast envelope.
type ServerMessage struct {
	Type MessageType `json:"type"`
	Data any         `json:"data"`
}

type ErrorPayload struct {
	ChannelID string `json:"channel_id"`
	Error     string `json:"error"`
}

func transcriptMessage(evt livestream.TranscriptEvent) *ServerMessage {
	return &ServerMessage{Type: MessageTypeTranscript, Data: evt}
}

func errorMessage(channelID, message string) *ServerMessage {
	return &ServerMessage{Type: MessageTypeTranscriptionError, Data: ErrorPayload{
		ChannelID: channelID,
		Error:     message,
	}}
}

// StreamController is the inbound half of the control surface, implemented
// by the livestream orchestrator.
type StreamController interface {
	Start(channelID, apiKey string, politicalOnly bool)
	Stop(channelID string)
}
