package livestream

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/praja-pulse/campaign-backend/internal/classify"
	"github.com/praja-pulse/campaign-backend/internal/shared"
	"github.com/praja-pulse/campaign-backend/internal/translate"
)

const (
	defaultChunkSeconds = 30
	defaultPause        = 2 * time.Second
)

type StreamResolver interface {
	Resolve(ctx context.Context, channelID string) (string, error)
}

type AudioCapturer interface {
	Capture(ctx context.Context, streamURL, destPath string, durationSeconds int) (string, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type Config struct {
	Resolver    StreamResolver
	Capturer    AudioCapturer
	Transcriber Transcriber
	Translator  translate.Translator
	Publisher   Publisher
	Registry    *Registry
	Creds       *shared.Credentials
	Log         *slog.Logger

	// CaptureDir holds the transient audio segments. ChunkSeconds and Pause
	// default to 30s and 2s.
	CaptureDir   string
	ChunkSeconds int
	Pause        time.Duration
}

// Orchestrator drives one capture→transcribe→translate→classify→publish
// loop per channel. Sessions run as independent goroutines and share nothing
// but the registry.
type Orchestrator struct {
	resolver    StreamResolver
	capturer    AudioCapturer
	transcriber Transcriber
	translator  translate.Translator
	publisher   Publisher
	registry    *Registry
	creds       *shared.Credentials
	log         *slog.Logger

	captureDir   string
	chunkSeconds int
	pause        time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOrchestrator(cfg Config) *Orchestrator {
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}
	if cfg.Registry == nil {
		cfg.Registry = NewRegistry()
	}
	if cfg.ChunkSeconds <= 0 {
		cfg.ChunkSeconds = defaultChunkSeconds
	}
	if cfg.Pause <= 0 {
		cfg.Pause = defaultPause
	}
	if cfg.CaptureDir == "" {
		cfg.CaptureDir = os.TempDir()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Orchestrator{
		resolver:     cfg.Resolver,
		capturer:     cfg.Capturer,
		transcriber:  cfg.Transcriber,
		translator:   cfg.Translator,
		publisher:    cfg.Publisher,
		registry:     cfg.Registry,
		creds:        cfg.Creds,
		log:          cfg.Log.With("component", "orchestrator"),
		captureDir:   cfg.CaptureDir,
		chunkSeconds: cfg.ChunkSeconds,
		pause:        cfg.Pause,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (o *Orchestrator) Registry() *Registry {
	return o.registry
}

// Start begins transcribing a channel's live stream. A key supplied on the
// request initializes the process credential when none is active yet.
// Without any credential the start is refused with an error event and no
// session is registered. A start for a channel that already has a session
// is a no-op.
func (o *Orchestrator) Start(channelID, apiKey string, politicalOnly bool) {
	if apiKey != "" && !o.creds.IsSet() {
		o.creds.Set(apiKey)
	}

	if !o.creds.IsSet() {
		o.log.Warn("start refused, no credential configured", "channel_id", channelID)
		o.publisher.PublishError(channelID, "no transcription credential configured")
		return
	}

	sess, ok := o.registry.TryRegister(channelID, politicalOnly)
	if !ok {
		o.log.Info("session already running, ignoring start", "channel_id", channelID)
		return
	}

	o.log.Info("starting transcription session",
		"channel_id", channelID,
		"political_filter", politicalOnly)

	o.wg.Add(1)
	go o.run(sess)
}

// Stop requests cooperative shutdown of the channel's session. No-op when
// no session exists.
func (o *Orchestrator) Stop(channelID string) {
	if o.registry.Stop(channelID) {
		o.log.Info("stop requested", "channel_id", channelID)
	}
}

// Close stops every session and waits for their loops to drain.
func (o *Orchestrator) Close() error {
	o.registry.StopAll()
	o.cancel()
	o.wg.Wait()
	return nil
}

// run owns one session from first resolution to registry cleanup. The
// deferred unregister fires exactly once on every exit path, including a
// panic somewhere in the loop body.
func (o *Orchestrator) run(sess *Session) {
	log := o.log.With("channel_id", sess.ChannelID())

	defer o.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Error("session loop panicked", "panic", r)
		}
		o.registry.Unregister(sess.ChannelID())
		log.Info("session ended", "chunks", sess.Chunk())
	}()

	streamURL, err := o.resolver.Resolve(o.ctx, sess.ChannelID())
	if err != nil {
		log.Error("initial stream resolution failed", "error", err)
		o.publisher.PublishError(sess.ChannelID(), fmt.Sprintf("could not resolve live stream: %v", err))
		return
	}
	sess.SetStreamURL(streamURL)

	for sess.Running() {
		o.step(sess, log)
	}
}

// step processes a single chunk. Capture and transcription failures are
// absorbed here: log, try to re-resolve a possibly rotated stream URL, and
// carry on after the usual pause. There is no retry cap; a dead stream
// loops at the pause cadence until it is explicitly stopped.
func (o *Orchestrator) step(sess *Session, log *slog.Logger) {
	audioPath := o.segmentPath(sess)

	if _, err := o.capturer.Capture(o.ctx, sess.StreamURL(), audioPath, o.chunkSeconds); err != nil {
		log.Warn("audio capture failed", "error", err, "chunk", sess.Chunk())
		o.refreshStreamURL(sess, log)
		o.sleep(sess)
		return
	}

	text, err := o.transcriber.Transcribe(o.ctx, audioPath)
	os.Remove(audioPath)
	if err != nil {
		log.Warn("transcription failed", "error", err, "chunk", sess.Chunk())
		o.refreshStreamURL(sess, log)
		o.sleep(sess)
		return
	}

	if text != "" {
		rendition := o.translator.Translate(o.ctx, text)
		cls := classify.Classify(text)

		if !sess.PoliticalOnly() || cls.MentionsYSRCP || cls.MentionsTDP {
			o.publisher.PublishTranscript(newTranscriptEvent(sess.ChannelID(), rendition, cls))
		} else {
			log.Debug("chunk dropped by political filter", "chunk", sess.Chunk())
		}
	}

	sess.NextChunk()
	o.sleep(sess)
}

func (o *Orchestrator) refreshStreamURL(sess *Session, log *slog.Logger) {
	url, err := o.resolver.Resolve(o.ctx, sess.ChannelID())
	if err != nil {
		log.Warn("stream re-resolution failed", "error", err)
		return
	}
	sess.SetStreamURL(url)
}

func (o *Orchestrator) sleep(sess *Session) {
	select {
	case <-time.After(o.pause):
	case <-sess.Done():
	case <-o.ctx.Done():
	}
}

// segmentPath namespaces the transient file by channel and chunk so that
// concurrent sessions never collide on disk.
func (o *Orchestrator) segmentPath(sess *Session) string {
	channel := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, sess.ChannelID())

	return filepath.Join(o.captureDir, fmt.Sprintf("capture_%s_%d.wav", channel, sess.Chunk()))
}
