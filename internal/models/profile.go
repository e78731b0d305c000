package models

import "time"

// Profile mirrors the identity-provider profile row that the external sync
// function reads from and writes back to. Column shape follows the trigger
// payload verbatim.
type Profile struct {
	AuthUserID    string    `gorm:"size:255;primaryKey;column:auth_user_id" json:"user_id"`
	Email         string    `gorm:"size:255;not null" json:"email"`
	FullName      string    `gorm:"size:255" json:"full_name"`
	Role          string    `gorm:"size:20;default:'user'" json:"role"`
	PayloadUserID *string   `gorm:"size:255" json:"payload_user_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
