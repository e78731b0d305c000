package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Post is the mirror row for the "posts" collection. Natural key: slug.
type Post struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug        string                      `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Title       string                      `gorm:"size:255;not null" json:"title"`
	Excerpt     string                      `gorm:"type:text" json:"excerpt"`
	Body        string                      `gorm:"type:text" json:"body"`
	CoverURL    string                      `gorm:"type:text" json:"cover_url"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb;default:'[]'" json:"tags"`
	Published   bool                        `gorm:"default:false;index" json:"published"`
	PublishedAt *time.Time                  `json:"published_at,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}
