// Package sync mirrors saved CMS documents into the normalized public
// tables. One Syncer per collection; the pipeline dispatches by the
// document's collection slug and records an observability event per run.
package sync

import (
	"context"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/models"
	"github.com/google/uuid"
)

// DocumentWriter is the CMS write API used to backfill the generated
// mirror-row id into a document after its first sync. The write happens at
// depth 0: it must not re-trigger sync hooks.
type DocumentWriter interface {
	SetForeignID(ctx context.Context, collection string, id uuid.UUID, foreignID uuid.UUID) error
}

// Syncer mirrors one collection. docs may be nil for system-initiated
// saves; the foreign-id write-back is then skipped.
type Syncer interface {
	Collection() string
	Sync(ctx context.Context, doc *models.Document, docs DocumentWriter) error
}

type Pipeline struct {
	syncers  map[string]Syncer
	recorder *EventRecorder
}

// NewPipeline builds a dispatch table over the given syncers. recorder may
// be nil to disable the observability sink.
func NewPipeline(recorder *EventRecorder, syncers ...Syncer) *Pipeline {
	p := &Pipeline{
		syncers:  make(map[string]Syncer, len(syncers)),
		recorder: recorder,
	}
	for _, s := range syncers {
		p.syncers[s.Collection()] = s
	}
	return p
}

// Run executes the syncer registered for the document's collection.
// Unknown collections are a no-op. Store errors propagate to the caller
// (the document save fails); an event is recorded either way, best-effort.
func (p *Pipeline) Run(ctx context.Context, doc *models.Document, docs DocumentWriter) error {
	syncer, ok := p.syncers[doc.Collection]
	if !ok {
		return nil
	}

	err := syncer.Sync(ctx, doc, docs)
	if p.recorder != nil {
		if err != nil {
			p.recorder.Record(ctx, doc, StatusError, err.Error())
		} else {
			p.recorder.Record(ctx, doc, StatusSuccess, "")
		}
	}
	return err
}
