package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/models"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/sync"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentService owns the CMS document store and runs the sync pipeline
// after every save. It is also the DocumentWriter the pipeline uses for
// the foreign-id backfill (a depth-0 write that skips the hooks).
type DocumentService struct {
	db       *gorm.DB
	pipeline *sync.Pipeline
}

func NewDocumentService(db *gorm.DB, pipeline *sync.Pipeline) *DocumentService {
	return &DocumentService{db: db, pipeline: pipeline}
}

// Save creates or updates a document, then runs the upsert hook for its
// collection. A hook failure fails the whole save from the caller's point
// of view, matching CMS afterChange semantics.
func (s *DocumentService) Save(ctx context.Context, doc *models.Document) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(doc).Error
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return s.pipeline.Run(ctx, doc, s)
}

// SetForeignID writes the mirror-row id onto a document without
// re-running sync hooks.
func (s *DocumentService) SetForeignID(ctx context.Context, collection string, id uuid.UUID, foreignID uuid.UUID) error {
	result := s.db.WithContext(ctx).Model(&models.Document{}).
		Where("id = ? AND collection = ?", id, collection).
		Update("foreign_id", foreignID)
	if result.Error != nil {
		return fmt.Errorf("failed to backfill foreign id: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func (s *DocumentService) Get(ctx context.Context, collection string, id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *DocumentService) List(ctx context.Context, collection string, limit, offset int) ([]models.Document, error) {
	q := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("updated_at DESC").
		Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var docs []models.Document
	if err := q.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// Update applies new field data to an existing document and re-runs the
// sync hook, like a regular editor save.
func (s *DocumentService) Update(ctx context.Context, collection string, id uuid.UUID, data datatypes.JSON) (*models.Document, error) {
	doc, err := s.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	doc.Data = data
	if err := s.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes a document. Mirror rows are store-owned and are not
// cascaded; documents are never deleted by the sync pipeline itself.
func (s *DocumentService) Delete(ctx context.Context, collection string, id uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Delete(&models.Document{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
