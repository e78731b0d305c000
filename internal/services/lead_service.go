package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/dto"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateEmail marks a newsletter signup whose email is already
// subscribed. Other store failures pass through unwrapped into it.
var ErrDuplicateEmail = errors.New("email already subscribed")

// LeadService handles the public contact form and newsletter signup.
// Writes are single-row inserts; store errors surface with the store's
// message.
type LeadService struct {
	db *gorm.DB
}

func NewLeadService(db *gorm.DB) *LeadService {
	return &LeadService{db: db}
}

func (s *LeadService) CreateLead(ctx context.Context, req *dto.CreateLeadRequest) (*models.Lead, error) {
	lead := models.Lead{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(req.Name),
		Email:   normalizeEmail(req.Email),
		Company: strings.TrimSpace(req.Company),
		Message: strings.TrimSpace(req.Message),
	}
	if err := s.db.WithContext(ctx).Create(&lead).Error; err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return &lead, nil
}

// Subscribe inserts a newsletter signup. The store's unique index on email
// rejects duplicates, which come back as ErrDuplicateEmail; any other
// store failure surfaces as-is.
func (s *LeadService) Subscribe(ctx context.Context, email string) (*models.Subscriber, error) {
	sub := models.Subscriber{
		ID:           uuid.New(),
		Email:        normalizeEmail(email),
		SubscribedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&sub).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}
	return &sub, nil
}

func (s *LeadService) ListLeads(ctx context.Context, limit int) ([]models.Lead, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var leads []models.Lead
	err := q.Find(&leads).Error
	return leads, err
}

func (s *LeadService) ListSubscribers(ctx context.Context, limit int) ([]models.Subscriber, error) {
	q := s.db.WithContext(ctx).Order("subscribed_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var subs []models.Subscriber
	err := q.Find(&subs).Error
	return subs, err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
