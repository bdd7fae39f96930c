package livestream

import "testing"

func TestRegistry_TryRegister(t *testing.T) {
	r := NewRegistry()

	sess, ok := r.TryRegister("@sakshitv", false)
	if !ok {
		t.Fatal("first registration should succeed")
	}
	if sess == nil {
		t.Fatal("expected a session")
	}
	if !sess.Running() {
		t.Error("new session should be running")
	}
	if r.ActiveCount() != 1 {
		t.Errorf("expected 1 active session, got %d", r.ActiveCount())
	}
}

func TestRegistry_TryRegister_Duplicate(t *testing.T) {
	r := NewRegistry()

	first, _ := r.TryRegister("@sakshitv", true)
	first.SetStreamURL("https://example.com/a")

	dup, ok := r.TryRegister("@sakshitv", false)
	if ok {
		t.Error("duplicate registration should fail")
	}
	if dup != nil {
		t.Error("duplicate registration should not return a session")
	}

	// existing session state must be untouched
	if first.StreamURL() != "https://example.com/a" {
		t.Error("existing session was altered by duplicate registration")
	}
	if !first.PoliticalOnly() {
		t.Error("existing session flags were altered")
	}
	if r.ActiveCount() != 1 {
		t.Errorf("expected exactly one entry, got %d", r.ActiveCount())
	}
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry()
	r.TryRegister("UCabc", false)
	r.Unregister("UCabc")

	if r.ActiveCount() != 0 {
		t.Error("unregister should remove the entry")
	}
	if r.IsRunning("UCabc") {
		t.Error("unregistered channel should not be running")
	}

	// unregistering again is a no-op
	r.Unregister("UCabc")
}

func TestRegistry_Stop(t *testing.T) {
	r := NewRegistry()
	sess, _ := r.TryRegister("UCabc", false)

	if !r.Stop("UCabc") {
		t.Error("stop of a present channel should report true")
	}
	if sess.Running() {
		t.Error("stop should clear the running flag")
	}

	select {
	case <-sess.Done():
	default:
		t.Error("stop should close the session's done channel")
	}

	if r.Stop("absent") {
		t.Error("stop of an absent channel should report false")
	}
}

func TestRegistry_StopAll(t *testing.T) {
	r := NewRegistry()
	a, _ := r.TryRegister("@one", false)
	b, _ := r.TryRegister("@two", false)

	r.StopAll()

	if a.Running() || b.Running() {
		t.Error("all sessions should be stopped")
	}
}

func TestSession_StopIsIdempotent(t *testing.T) {
	sess := newSession("@ch", false)
	sess.Stop()
	sess.Stop()

	if sess.Running() {
		t.Error("session should stay stopped")
	}
}

func TestSession_ChunkCounter(t *testing.T) {
	sess := newSession("@ch", false)
	if sess.Chunk() != 0 {
		t.Errorf("chunk should start at 0, got %d", sess.Chunk())
	}
	sess.NextChunk()
	sess.NextChunk()
	if sess.Chunk() != 2 {
		t.Errorf("expected chunk 2, got %d", sess.Chunk())
	}
}
