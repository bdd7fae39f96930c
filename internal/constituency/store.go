package constituency

import (
	"context"
	"errors"

	"github.com/praja-pulse/campaign-backend/internal/shared"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Constituency{})
}

// Seed upserts the static constituency table. It is idempotent and safe to
// run on every boot.
func (s *Store) Seed(ctx context.Context, entries []Constituency) error {
	for _, entry := range entries {
		err := s.db.WithContext(ctx).
			Where(Constituency{Name: entry.Name}).
			Assign(Constituency{
				District: entry.District,
				Region:   entry.Region,
				Keywords: entry.Keywords,
			}).
			FirstOrCreate(&entry).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]Constituency, error) {
	var out []Constituency
	err := s.db.WithContext(ctx).Order("name").Find(&out).Error
	return out, err
}

func (s *Store) GetByID(ctx context.Context, id uint) (*Constituency, error) {
	var c Constituency
	err := s.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Constituency{}).Count(&n).Error
	return n, err
}
