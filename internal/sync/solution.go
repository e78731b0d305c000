package sync

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/locale"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type solutionDoc struct {
	Title       locale.Value       `json:"title"`
	Description locale.Value       `json:"description"`
	Slug        string             `json:"slug"`
	IconURL     string             `json:"icon_url"`
	Features    locale.FeatureList `json:"features"`
	OrderIndex  int                `json:"order_index"`
	Active      *bool              `json:"active"`
}

// SolutionSyncer mirrors "solutions" documents. Natural key: slug.
type SolutionSyncer struct {
	db       *gorm.DB
	priority []string
}

func NewSolutionSyncer(db *gorm.DB, localePriority []string) *SolutionSyncer {
	return &SolutionSyncer{db: db, priority: localePriority}
}

func (s *SolutionSyncer) Collection() string { return "solutions" }

func (s *SolutionSyncer) Sync(ctx context.Context, doc *models.Document, docs DocumentWriter) error {
	var fields solutionDoc
	if err := json.Unmarshal(doc.Data, &fields); err != nil {
		return fmt.Errorf("decode solutions document %s: %w", doc.ID, err)
	}

	row := models.Solution{
		Slug:        fields.Slug,
		Title:       fields.Title.Resolve(s.priority),
		Description: fields.Description.Resolve(s.priority),
		Features:    datatypes.NewJSONSlice(fields.Features.Normalize(s.priority)),
		IconURL:     fields.IconURL,
		OrderIndex:  fields.OrderIndex,
		Active:      fields.Active == nil || *fields.Active,
	}

	if doc.ForeignID != nil {
		row.ID = *doc.ForeignID
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"slug", "title", "description", "features", "icon_url", "order_index", "active", "updated_at",
			}),
		}).Create(&row).Error
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "features", "icon_url", "order_index", "active", "updated_at",
		}),
	}, clause.Returning{Columns: []clause.Column{{Name: "id"}}}).Create(&row).Error
	if err != nil {
		return err
	}

	if docs == nil {
		// System-initiated save without a CMS handle: skip the backfill.
		return nil
	}
	return docs.SetForeignID(ctx, doc.Collection, doc.ID, row.ID)
}
