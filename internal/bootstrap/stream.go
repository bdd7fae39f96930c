package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/praja-pulse/campaign-backend/internal/capture"
	"github.com/praja-pulse/campaign-backend/internal/gateway"
	"github.com/praja-pulse/campaign-backend/internal/livestream"
	"github.com/praja-pulse/campaign-backend/internal/resolver"
	"github.com/praja-pulse/campaign-backend/internal/shared"
	"github.com/praja-pulse/campaign-backend/internal/transcribe"
	"github.com/praja-pulse/campaign-backend/internal/translate"
	"go.uber.org/fx"
)

func ProvideCredentials(cfg *Config) *shared.Credentials {
	return shared.NewCredentials(cfg.OpenAIAPIKey)
}

func ProvideResolver(cfg *Config, logger *slog.Logger) *resolver.Resolver {
	return resolver.New(cfg.YtdlpPath, logger)
}

func ProvideCapturer(cfg *Config, logger *slog.Logger) *capture.Capturer {
	return capture.New(cfg.FfmpegPath, logger)
}

func ProvideTranscriber(creds *shared.Credentials, logger *slog.Logger) *transcribe.WhisperClient {
	return transcribe.NewWhisperClient(creds, logger)
}

func ProvideTranslator(creds *shared.Credentials, logger *slog.Logger) *translate.GPTTranslator {
	return translate.NewGPTTranslator(creds, logger)
}

func ProvideHub(logger *slog.Logger) *gateway.Hub {
	return gateway.NewHub(logger)
}

func ProvideOrchestrator(
	cfg *Config,
	res *resolver.Resolver,
	capt *capture.Capturer,
	stt *transcribe.WhisperClient,
	tr *translate.GPTTranslator,
	hub *gateway.Hub,
	creds *shared.Credentials,
	logger *slog.Logger,
) *livestream.Orchestrator {
	return livestream.NewOrchestrator(livestream.Config{
		Resolver:     res,
		Capturer:     capt,
		Transcriber:  stt,
		Translator:   tr,
		Publisher:    hub,
		Creds:        creds,
		Log:          logger,
		CaptureDir:   cfg.CaptureDir,
		ChunkSeconds: cfg.ChunkSeconds,
		Pause:        2 * time.Second,
	})
}

func ProvideRegistry(orch *livestream.Orchestrator) *livestream.Registry {
	return orch.Registry()
}

func ProvideWSServer(hub *gateway.Hub, orch *livestream.Orchestrator, logger *slog.Logger) *gateway.WSServer {
	return gateway.NewWSServer(hub, orch, logger)
}

func RegisterStreamRoutes(lc fx.Lifecycle, e *echo.Echo, ws *gateway.WSServer, hub *gateway.Hub, orch *livestream.Orchestrator) {
	ws.RegisterRoutes(e)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			orch.Close()
			return hub.Close()
		},
	})
}

var StreamModule = fx.Options(
	fx.Provide(
		ProvideCredentials,
		ProvideResolver,
		ProvideCapturer,
		ProvideTranscriber,
		ProvideTranslator,
		ProvideHub,
		ProvideOrchestrator,
		ProvideRegistry,
		ProvideWSServer,
	),
	fx.Invoke(RegisterStreamRoutes),
)
