package bootstrap

import (
	"context"

	"github.com/praja-pulse/campaign-backend/internal/constituency"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func ProvideConstituencyStore(db *gorm.DB) *constituency.Store {
	return constituency.NewStore(db)
}

func RunMigrations(store *constituency.Store) error {
	if err := store.Migrate(); err != nil {
		return err
	}
	return store.Seed(context.Background(), constituency.SeedData)
}

var StoresModule = fx.Options(
	fx.Provide(ProvideConstituencyStore),
	fx.Invoke(RunMigrations),
)
