package models

import (
	"time"

	"github.com/google/uuid"
)

// CMSUser is an editor/admin account in the CMS user store. AuthUserID
// links it to the identity provider; at most one CMS user per provider id.
// Rows are removed outright on demotion: a lingering soft-deleted row
// would keep holding the email and identity-id unique indexes and block
// re-promotion.
type CMSUser struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AuthUserID *string   `gorm:"size:255;uniqueIndex" json:"-"`
	Email      string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name       string    `gorm:"size:255" json:"name"`
	Role       string    `gorm:"size:20;default:'editor'" json:"role"`
	Password   string    `gorm:"not null" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
