package constituency

import (
	"context"
	"testing"

	"github.com/praja-pulse/campaign-backend/internal/shared"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	store := NewStore(db)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return store
}

func TestStore_SeedAndList(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	if err := store.Seed(ctx, SeedData); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	out, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(out) != len(SeedData) {
		t.Errorf("expected %d constituencies, got %d", len(SeedData), len(out))
	}
}

func TestStore_SeedIsIdempotent(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	if err := store.Seed(ctx, SeedData); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := store.Seed(ctx, SeedData); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != int64(len(SeedData)) {
		t.Errorf("re-seeding should not duplicate rows, got %d", count)
	}
}

func TestStore_GetByID(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	seed := []Constituency{{
		Name:     "Kuppam",
		District: "Chittoor",
		Region:   "Rayalaseema",
		Keywords: shared.StringSlice{"kuppam", "కుప్పం"},
	}}
	if err := store.Seed(ctx, seed); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	list, err := store.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list failed: %v (%d rows)", err, len(list))
	}

	got, err := store.GetByID(ctx, list[0].ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Kuppam" {
		t.Errorf("expected Kuppam, got %q", got.Name)
	}
	if len(got.Keywords) != 2 {
		t.Errorf("keywords should round-trip through the database, got %v", got.Keywords)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	store := setupTestDB(t)

	_, err := store.GetByID(context.Background(), 9999)
	if err != shared.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
