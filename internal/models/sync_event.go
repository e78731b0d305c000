package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SyncEvent records one upsert-hook run (success or error) for the
// observability sink. Recording is best-effort and never blocks a save.
type SyncEvent struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Collection string         `gorm:"size:50;not null;index" json:"collection"`
	DocumentID uuid.UUID      `gorm:"type:uuid;not null;index" json:"document_id"`
	Status     string         `gorm:"size:10;not null;index" json:"status"`
	Message    string         `gorm:"type:text" json:"message"`
	Metadata   datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	CreatedAt  time.Time      `json:"created_at"`
}
