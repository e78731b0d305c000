package services

import (
	"context"
	"errors"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/models"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// ContentService is the read side of the mirror tables: fixed filters,
// fixed ordering, optional limit. Direct pass-throughs to the store — no
// retries, no caching.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

func (s *ContentService) ActiveSolutions(ctx context.Context) ([]models.Solution, error) {
	var solutions []models.Solution
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("order_index ASC, created_at ASC").
		Find(&solutions).Error
	return solutions, err
}

func (s *ContentService) SolutionBySlug(ctx context.Context, slug string) (*models.Solution, error) {
	var solution models.Solution
	err := s.db.WithContext(ctx).
		Where("active = ? AND slug = ?", true, slug).
		First(&solution).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &solution, nil
}

func (s *ContentService) PublishedPosts(ctx context.Context, limit int) ([]models.Post, error) {
	q := s.db.WithContext(ctx).
		Where("published = ?", true).
		Order("published_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var posts []models.Post
	err := q.Find(&posts).Error
	return posts, err
}

func (s *ContentService) PostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).
		Where("published = ? AND slug = ?", true, slug).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *ContentService) ActiveTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("order_index ASC").
		Find(&members).Error
	return members, err
}
