package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/dto"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/models"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/payload"
	"gorm.io/gorm"
)

// PayloadSyncService mirrors admin promotion/demotion from profile-table
// trigger events into the external Payload CMS, then writes the resulting
// external user id back onto the profile row.
type PayloadSyncService struct {
	db     *gorm.DB
	client *payload.Client
}

func NewPayloadSyncService(db *gorm.DB, client *payload.Client) *PayloadSyncService {
	return &PayloadSyncService{db: db, client: client}
}

// computeTransition decides whether the trigger event crosses the admin
// boundary in either direction.
func computeTransition(event string, profile, previous *dto.ProfileRow) (promoted, demoted bool) {
	isAdmin := profile.Role == "admin"
	wasAdmin := previous != nil && previous.Role == "admin"

	switch event {
	case "INSERT":
		promoted = isAdmin
	case "UPDATE":
		promoted = isAdmin && !wasAdmin
		demoted = wasAdmin && !isAdmin
	case "DELETE":
		// The row is gone; only a demotion can result.
		demoted = isAdmin
	}
	return promoted, demoted
}

// HandleEvent processes one trigger delivery. Events that don't cross the
// admin boundary are skipped. Any HTTP or store failure propagates to the
// caller unretried; the trigger source re-delivers.
func (s *PayloadSyncService) HandleEvent(ctx context.Context, event string, profile, previous *dto.ProfileRow) (*dto.PayloadSyncResult, error) {
	promoted, demoted := computeTransition(event, profile, previous)
	if !promoted && !demoted {
		return &dto.PayloadSyncResult{Skipped: true}, nil
	}

	if promoted {
		return s.promote(ctx, profile)
	}
	return s.demote(ctx, profile)
}

func (s *PayloadSyncService) promote(ctx context.Context, profile *dto.ProfileRow) (*dto.PayloadSyncResult, error) {
	existing, err := s.client.FindUserByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}

	var user *payload.User
	result := ResultUpdated
	if existing != nil {
		user, err = s.client.UpdateUser(ctx, existing.ID, map[string]string{
			"name": profile.FullName,
			"role": "admin",
		})
		if err != nil {
			return nil, err
		}
	} else {
		password, err := generatePassword()
		if err != nil {
			return nil, err
		}
		user, err = s.client.CreateUser(ctx, &payload.User{
			Email: profile.Email,
			Name:  profile.FullName,
			Role:  "admin",
		}, password)
		if err != nil {
			return nil, err
		}
		result = ResultCreated

		if err := s.client.ForgotPassword(ctx, profile.Email); err != nil {
			slog.Error("payload password reset dispatch failed", "email", profile.Email, "error", err)
		}
	}

	if err := s.writeBack(ctx, profile.UserID, &user.ID); err != nil {
		return nil, err
	}
	return &dto.PayloadSyncResult{Result: result, PayloadUserID: &user.ID}, nil
}

func (s *PayloadSyncService) demote(ctx context.Context, profile *dto.ProfileRow) (*dto.PayloadSyncResult, error) {
	existing, err := s.client.FindUserByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		// DeleteUser tolerates 404: deletes stay idempotent under
		// at-least-once delivery.
		if err := s.client.DeleteUser(ctx, existing.ID); err != nil {
			return nil, err
		}
	}

	if err := s.writeBack(ctx, profile.UserID, nil); err != nil {
		return nil, err
	}
	return &dto.PayloadSyncResult{Result: ResultRemoved, PayloadUserID: nil}, nil
}

func (s *PayloadSyncService) writeBack(ctx context.Context, authUserID string, payloadUserID *string) error {
	err := s.db.WithContext(ctx).Model(&models.Profile{}).
		Where("auth_user_id = ?", authUserID).
		Update("payload_user_id", payloadUserID).Error
	if err != nil {
		return fmt.Errorf("failed to write payload user id to profile: %w", err)
	}
	return nil
}
