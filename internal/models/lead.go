package models

import (
	"time"

	"github.com/google/uuid"
)

// Lead is created directly by the public contact form, never by the CMS.
type Lead struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Company   string    `gorm:"size:255" json:"company"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscriber is a newsletter signup. Email uniqueness is enforced at the
// store level.
type Subscriber struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	SubscribedAt time.Time `gorm:"not null" json:"subscribed_at"`
}
