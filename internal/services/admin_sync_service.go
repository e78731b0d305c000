package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/dto"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/models"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/payload"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Sync result statuses returned to the webhook caller.
const (
	ResultCreated  = "created"
	ResultUpdated  = "updated"
	ResultRemoved  = "removed"
	ResultNotFound = "not_found"
)

// ResetMailer dispatches a password-reset email. Dispatch is best-effort:
// failures are logged by the caller and never fail the sync.
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, email string) error
}

// PayloadResetMailer triggers the reset email through the external CMS's
// forgot-password endpoint.
type PayloadResetMailer struct {
	client *payload.Client
}

func NewPayloadResetMailer(client *payload.Client) *PayloadResetMailer {
	return &PayloadResetMailer{client: client}
}

func (m *PayloadResetMailer) SendPasswordReset(ctx context.Context, email string) error {
	return m.client.ForgotPassword(ctx, email)
}

// AdminSyncService applies identity-provider role changes to the CMS user
// store.
type AdminSyncService struct {
	db     *gorm.DB
	mailer ResetMailer
}

// NewAdminSyncService builds the service. mailer may be nil; the reset
// email is then skipped entirely.
func NewAdminSyncService(db *gorm.DB, mailer ResetMailer) *AdminSyncService {
	return &AdminSyncService{db: db, mailer: mailer}
}

// Promote grants admin role. Lookup order: identity id, then email (the
// user may predate the identity link), then create.
func (s *AdminSyncService) Promote(ctx context.Context, profile *dto.SyncProfile) (string, error) {
	var user models.CMSUser

	err := s.db.WithContext(ctx).Where("auth_user_id = ?", profile.UserID).First(&user).Error
	if err == nil {
		updates := map[string]interface{}{
			"email": profile.Email,
			"role":  "admin",
		}
		if profile.Name != "" {
			updates["name"] = profile.Name
		}
		if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
			return "", fmt.Errorf("failed to update admin user: %w", err)
		}
		return ResultUpdated, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to look up admin user: %w", err)
	}

	err = s.db.WithContext(ctx).Where("email = ?", profile.Email).First(&user).Error
	if err == nil {
		updates := map[string]interface{}{
			"auth_user_id": profile.UserID,
			"role":         "admin",
		}
		if profile.Name != "" {
			updates["name"] = profile.Name
		}
		if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
			return "", fmt.Errorf("failed to link admin user: %w", err)
		}
		return ResultUpdated, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to look up admin user by email: %w", err)
	}

	password, err := generatePassword()
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash generated password: %w", err)
	}

	authID := profile.UserID
	user = models.CMSUser{
		ID:         uuid.New(),
		AuthUserID: &authID,
		Email:      profile.Email,
		Name:       profile.Name,
		Role:       "admin",
		Password:   string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return "", fmt.Errorf("failed to create admin user: %w", err)
	}

	if s.mailer != nil {
		if err := s.mailer.SendPasswordReset(ctx, user.Email); err != nil {
			slog.Error("password reset dispatch failed", "email", user.Email, "error", err)
		}
	}

	return ResultCreated, nil
}

// Demote removes the CMS user linked to the identity id. An unknown id is
// a soft not_found, not an error; no delete is issued. Store failures
// propagate so the webhook caller sees them.
func (s *AdminSyncService) Demote(ctx context.Context, profile *dto.SyncProfile) (string, error) {
	var user models.CMSUser
	err := s.db.WithContext(ctx).Where("auth_user_id = ?", profile.UserID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ResultNotFound, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up admin user: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&user).Error; err != nil {
		return "", fmt.Errorf("failed to remove admin user: %w", err)
	}
	return ResultRemoved, nil
}

func generatePassword() (string, error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}
