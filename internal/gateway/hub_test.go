package gateway

import (
	"io"
	"log/slog"
	"testing"

	"github.com/praja-pulse/campaign-backend/internal/livestream"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(id string, buffer int) *wsClient {
	return &wsClient{
		id:     id,
		logger: discardLogger(),
		send:   make(chan *ServerMessage, buffer),
		done:   make(chan struct{}),
	}
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub(discardLogger())

	c := newTestClient("c1", 8)
	hub.register(c)
	if hub.SubscriberCount() != 1 {
		t.Errorf("expected 1 subscriber, got %d", hub.SubscriberCount())
	}

	hub.unregister(c)
	if hub.SubscriberCount() != 0 {
		t.Errorf("expected 0 subscribers, got %d", hub.SubscriberCount())
	}
}

func TestHub_BroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub(discardLogger())

	a := newTestClient("a", 8)
	b := newTestClient("b", 8)
	hub.register(a)
	hub.register(b)

	evt := livestream.TranscriptEvent{ID: "ch-1", Text: "hello"}
	hub.PublishTranscript(evt)

	for _, c := range []*wsClient{a, b} {
		select {
		case msg := <-c.send:
			if msg.Type != MessageTypeTranscript {
				t.Errorf("expected transcript message, got %s", msg.Type)
			}
		default:
			t.Errorf("client %s did not receive the broadcast", c.id)
		}
	}
}

func TestHub_PublishError(t *testing.T) {
	hub := NewHub(discardLogger())

	c := newTestClient("c", 8)
	hub.register(c)

	hub.PublishError("@ch", "could not resolve live stream")

	select {
	case msg := <-c.send:
		if msg.Type != MessageTypeTranscriptionError {
			t.Fatalf("expected transcription_error, got %s", msg.Type)
		}
		payload, ok := msg.Data.(ErrorPayload)
		if !ok {
			t.Fatalf("unexpected payload type %T", msg.Data)
		}
		if payload.ChannelID != "@ch" {
			t.Errorf("expected channel id, got %q", payload.ChannelID)
		}
	default:
		t.Fatal("client did not receive the error event")
	}
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub(discardLogger())

	c := newTestClient("slow", 1)
	hub.register(c)

	// second publish must not block even though the buffer is full
	hub.PublishError("@ch", "one")
	hub.PublishError("@ch", "two")

	if len(c.send) != 1 {
		t.Errorf("expected exactly one buffered message, got %d", len(c.send))
	}
}

func TestHub_CloseClearsSubscribers(t *testing.T) {
	hub := NewHub(discardLogger())

	c := newTestClient("c", 8)
	hub.register(c)

	if err := hub.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if hub.SubscriberCount() != 0 {
		t.Error("subscribers should be cleared after Close")
	}

	select {
	case <-c.done:
	default:
		t.Error("client should be closed when the hub shuts down")
	}
}
