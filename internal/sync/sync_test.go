package sync

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testPriority = []string{"pt-BR", "en"}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

type fakeWriter struct {
	calls      int
	collection string
	docID      uuid.UUID
	foreignID  uuid.UUID
	err        error
}

func (w *fakeWriter) SetForeignID(_ context.Context, collection string, id, foreignID uuid.UUID) error {
	w.calls++
	w.collection = collection
	w.docID = id
	w.foreignID = foreignID
	return w.err
}

func solutionDocument(t *testing.T, foreignID *uuid.UUID) *models.Document {
	t.Helper()
	data, err := json.Marshal(map[string]interface{}{
		"slug":        "ai-consulting",
		"title":       map[string]string{"en": "", "pt-BR": "Consultoria IA"},
		"description": map[string]string{"en": "We build AI"},
		"features":    []interface{}{map[string]interface{}{"content": map[string]string{"pt-BR": "Recurso 1"}}, "Second capability"},
		"order_index": 2,
	})
	require.NoError(t, err)
	return &models.Document{
		ID:         uuid.New(),
		Collection: "solutions",
		ForeignID:  foreignID,
		Data:       datatypes.JSON(data),
	}
}

func TestSolutionSyncFirstSaveWritesBackGeneratedID(t *testing.T) {
	db, mock := newMockDB(t)
	doc := solutionDocument(t, nil)
	generated := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "solutions" .*ON CONFLICT \("slug"\) DO UPDATE SET.*RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(generated.String()))
	mock.ExpectCommit()

	writer := &fakeWriter{}
	err := NewSolutionSyncer(db, testPriority).Sync(context.Background(), doc, writer)
	require.NoError(t, err)

	assert.Equal(t, 1, writer.calls)
	assert.Equal(t, "solutions", writer.collection)
	assert.Equal(t, doc.ID, writer.docID)
	assert.Equal(t, generated, writer.foreignID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSolutionSyncWithForeignIDUpdatesOnly(t *testing.T) {
	db, mock := newMockDB(t)
	foreignID := uuid.New()
	doc := solutionDocument(t, &foreignID)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "solutions" .*ON CONFLICT \("id"\) DO UPDATE SET.*`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(foreignID.String()))
	mock.ExpectCommit()

	writer := &fakeWriter{}
	err := NewSolutionSyncer(db, testPriority).Sync(context.Background(), doc, writer)
	require.NoError(t, err)

	assert.Equal(t, 0, writer.calls, "existing foreign id must not trigger a write-back")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSolutionSyncNilWriterSkipsBackfill(t *testing.T) {
	db, mock := newMockDB(t)
	doc := solutionDocument(t, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "solutions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	err := NewSolutionSyncer(db, testPriority).Sync(context.Background(), doc, nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSolutionSyncStoreErrorPropagates(t *testing.T) {
	db, mock := newMockDB(t)
	doc := solutionDocument(t, nil)

	storeErr := errors.New("connection reset by peer")
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "solutions"`).WillReturnError(storeErr)
	mock.ExpectRollback()

	writer := &fakeWriter{}
	err := NewSolutionSyncer(db, testPriority).Sync(context.Background(), doc, writer)
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection reset by peer")
	assert.Equal(t, 0, writer.calls)
}

func TestSolutionSyncDecodeErrorMentionsDocument(t *testing.T) {
	db, _ := newMockDB(t)
	doc := &models.Document{
		ID:         uuid.New(),
		Collection: "solutions",
		Data:       datatypes.JSON(`{"title": 42}`),
	}

	err := NewSolutionSyncer(db, testPriority).Sync(context.Background(), doc, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, doc.ID.String())
}

func TestTeamSyncConflictsOnOrderIndex(t *testing.T) {
	db, mock := newMockDB(t)
	data, err := json.Marshal(map[string]interface{}{
		"name":        "Marina",
		"role":        map[string]string{"pt-BR": "Engenheira"},
		"order_index": 3,
	})
	require.NoError(t, err)
	doc := &models.Document{ID: uuid.New(), Collection: "team", Data: datatypes.JSON(data)}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "team_members" .*ON CONFLICT \("order_index"\) DO UPDATE SET.*RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	writer := &fakeWriter{}
	require.NoError(t, NewTeamSyncer(db, testPriority).Sync(context.Background(), doc, writer))
	assert.Equal(t, 1, writer.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
