package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TeamMember is the mirror row for the "team" collection.
// Natural key: order_index (members have no slug or email of their own).
type TeamMember struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Role       string         `gorm:"size:255" json:"role"`
	Bio        string         `gorm:"type:text" json:"bio"`
	PhotoURL   string         `gorm:"type:text" json:"photo_url"`
	Socials    datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"socials"`
	OrderIndex int            `gorm:"not null;uniqueIndex" json:"order_index"`
	Active     bool           `gorm:"default:true;index" json:"active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
