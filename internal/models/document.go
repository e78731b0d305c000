package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Document is an editor-authored CMS record. Data holds the raw
// collection-specific fields; ForeignID points at the mirror row once the
// first sync has run.
type Document struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Collection string         `gorm:"size:50;not null;index" json:"collection"`
	ForeignID  *uuid.UUID     `gorm:"type:uuid;index" json:"foreign_id,omitempty"`
	Data       datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"data"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
