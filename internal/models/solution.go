package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Solution is the mirror row for the "solutions" collection.
// Natural key: slug.
type Solution struct {
	ID          uuid.UUID                    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug        string                       `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Title       string                       `gorm:"size:255;not null" json:"title"`
	Description string                       `gorm:"type:text" json:"description"`
	Features    datatypes.JSONSlice[string]  `gorm:"type:jsonb;default:'[]'" json:"features"`
	IconURL     string                       `gorm:"type:text" json:"icon_url"`
	OrderIndex  int                          `gorm:"default:0;index" json:"order_index"`
	Active      bool                         `gorm:"default:true;index" json:"active"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}
