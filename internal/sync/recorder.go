package sync

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// EventRecorder persists sync events. Recording is fire-and-forget: a
// failed insert is logged and never affects the save that triggered it.
type EventRecorder struct {
	db *gorm.DB
}

func NewEventRecorder(db *gorm.DB) *EventRecorder {
	return &EventRecorder{db: db}
}

func (r *EventRecorder) Record(ctx context.Context, doc *models.Document, status, message string) {
	meta, _ := json.Marshal(map[string]interface{}{
		"has_foreign_id": doc.ForeignID != nil,
	})
	event := models.SyncEvent{
		ID:         uuid.New(),
		Collection: doc.Collection,
		DocumentID: doc.ID,
		Status:     status,
		Message:    message,
		Metadata:   datatypes.JSON(meta),
	}
	if err := r.db.WithContext(ctx).Create(&event).Error; err != nil {
		slog.Error("failed to record sync event", "collection", doc.Collection, "document_id", doc.ID, "error", err)
	}
}
