package bootstrap

import (
	"github.com/labstack/echo/v4"
	"github.com/praja-pulse/campaign-backend/internal/gateway"
	"github.com/praja-pulse/campaign-backend/internal/health"
	"github.com/praja-pulse/campaign-backend/internal/livestream"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const version = "1.0.0"

func ProvideHealthHandler(
	db *gorm.DB,
	redisClient *redis.Client,
	registry *livestream.Registry,
	hub *gateway.Hub,
) *health.Handler {
	return health.NewHandler(db, redisClient, registry, hub, version)
}

func RegisterHealthRoutes(e *echo.Echo, h *health.Handler) {
	h.RegisterRoutes(e)
}

var HealthModule = fx.Options(
	fx.Provide(ProvideHealthHandler),
	fx.Invoke(RegisterHealthRoutes),
)
