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

type teamDoc struct {
	Name       string            `json:"name"`
	Role       locale.Value      `json:"role"`
	Bio        locale.Value      `json:"bio"`
	PhotoURL   string            `json:"photo_url"`
	Socials    map[string]string `json:"socials"`
	OrderIndex int               `json:"order_index"`
	Active     *bool             `json:"active"`
}

// TeamSyncer mirrors "team" documents. Natural key: order_index (members
// carry no slug or email).
type TeamSyncer struct {
	db       *gorm.DB
	priority []string
}

func NewTeamSyncer(db *gorm.DB, localePriority []string) *TeamSyncer {
	return &TeamSyncer{db: db, priority: localePriority}
}

func (s *TeamSyncer) Collection() string { return "team" }

func (s *TeamSyncer) Sync(ctx context.Context, doc *models.Document, docs DocumentWriter) error {
	var fields teamDoc
	if err := json.Unmarshal(doc.Data, &fields); err != nil {
		return fmt.Errorf("decode team document %s: %w", doc.ID, err)
	}

	socials, err := json.Marshal(fields.Socials)
	if err != nil {
		return fmt.Errorf("encode socials for team document %s: %w", doc.ID, err)
	}

	row := models.TeamMember{
		Name:       fields.Name,
		Role:       fields.Role.Resolve(s.priority),
		Bio:        fields.Bio.Resolve(s.priority),
		PhotoURL:   fields.PhotoURL,
		Socials:    datatypes.JSON(socials),
		OrderIndex: fields.OrderIndex,
		Active:     fields.Active == nil || *fields.Active,
	}

	if doc.ForeignID != nil {
		row.ID = *doc.ForeignID
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "role", "bio", "photo_url", "socials", "order_index", "active", "updated_at",
			}),
		}).Create(&row).Error
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "order_index"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "role", "bio", "photo_url", "socials", "active", "updated_at",
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
