package bootstrap

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/praja-pulse/campaign-backend/internal/constituency"
	"github.com/praja-pulse/campaign-backend/internal/news"
	"github.com/praja-pulse/campaign-backend/internal/search"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/fx"
)

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ProvideLogger(cfg *Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

func ProvideNewsHandler(redisClient *redis.Client, logger *slog.Logger) *news.Handler {
	return news.NewHandler(redisClient, logger)
}

func ProvideSearchHandler(cfg *Config, logger *slog.Logger) *search.Handler {
	return search.NewHandler(cfg.SearchEndpoint, cfg.SearchBearerToken, logger)
}

func ProvideConstituencyHandler(store *constituency.Store, logger *slog.Logger) *constituency.Handler {
	return constituency.NewHandler(store, logger.With("handler", "constituency"))
}

type HandlerParams struct {
	fx.In

	NewsHandler         *news.Handler
	SearchHandler       *search.Handler
	ConstituencyHandler *constituency.Handler
}

func RegisterRoutes(e *echo.Echo, params HandlerParams) {
	api := e.Group("/api/v1")

	params.NewsHandler.RegisterRoutes(api)
	params.SearchHandler.RegisterRoutes(api)
	params.ConstituencyHandler.RegisterRoutes(api)

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler())
}

var HandlersModule = fx.Options(
	fx.Provide(
		ProvideLogger,
		ProvideNewsHandler,
		ProvideSearchHandler,
		ProvideConstituencyHandler,
	),
	fx.Invoke(RegisterRoutes),
)
