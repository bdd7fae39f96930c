package constituency

import (
	"time"

	"github.com/praja-pulse/campaign-backend/internal/shared"
)

// Constituency is one assembly seat being tracked, with the keyword list
// used to tag content to it.
type Constituency struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	Name      string             `gorm:"uniqueIndex;not null" json:"name"`
	District  string             `gorm:"index" json:"district"`
	Region    string             `gorm:"index" json:"region"`
	Keywords  shared.StringSlice `gorm:"type:text" json:"keywords"`
	CreatedAt time.Time          `json:"-"`
	UpdatedAt time.Time          `json:"-"`
}
