package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/locale"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postDoc struct {
	Title       locale.Value `json:"title"`
	Excerpt     locale.Value `json:"excerpt"`
	Body        locale.Value `json:"body"`
	Slug        string       `json:"slug"`
	CoverURL    string       `json:"cover_url"`
	Tags        []string     `json:"tags"`
	Published   bool         `json:"published"`
	PublishedAt *time.Time   `json:"published_at"`
}

// PostSyncer mirrors "posts" documents. Natural key: slug.
type PostSyncer struct {
	db       *gorm.DB
	priority []string
}

func NewPostSyncer(db *gorm.DB, localePriority []string) *PostSyncer {
	return &PostSyncer{db: db, priority: localePriority}
}

func (s *PostSyncer) Collection() string { return "posts" }

func (s *PostSyncer) Sync(ctx context.Context, doc *models.Document, docs DocumentWriter) error {
	var fields postDoc
	if err := json.Unmarshal(doc.Data, &fields); err != nil {
		return fmt.Errorf("decode posts document %s: %w", doc.ID, err)
	}

	publishedAt := fields.PublishedAt
	if fields.Published && publishedAt == nil {
		now := time.Now().UTC()
		publishedAt = &now
	}

	row := models.Post{
		Slug:        fields.Slug,
		Title:       fields.Title.Resolve(s.priority),
		Excerpt:     fields.Excerpt.Resolve(s.priority),
		Body:        fields.Body.Resolve(s.priority),
		CoverURL:    fields.CoverURL,
		Tags:        datatypes.NewJSONSlice(fields.Tags),
		Published:   fields.Published,
		PublishedAt: publishedAt,
	}

	if doc.ForeignID != nil {
		row.ID = *doc.ForeignID
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"slug", "title", "excerpt", "body", "cover_url", "tags", "published", "published_at", "updated_at",
			}),
		}).Create(&row).Error
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "excerpt", "body", "cover_url", "tags", "published", "published_at", "updated_at",
		}),
	}, clause.Returning{Columns: []clause.Column{{Name: "id"}}}).Create(&row).Error
	if err != nil {
		return err
	}

	if docs == nil {
		return nil
	}
	return docs.SetForeignID(ctx, doc.Collection, doc.ID, row.ID)
}
