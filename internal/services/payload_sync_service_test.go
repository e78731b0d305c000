package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/dto"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(role string) *dto.ProfileRow {
	return &dto.ProfileRow{
		UserID:   "auth-123",
		Email:    "marina@monynha.com",
		FullName: "Marina",
		Role:     role,
	}
}

func TestComputeTransition(t *testing.T) {
	tests := []struct {
		name     string
		event    string
		role     string
		previous *dto.ProfileRow
		promoted bool
		demoted  bool
	}{
		{"insert admin", "INSERT", "admin", nil, true, false},
		{"insert regular", "INSERT", "user", nil, false, false},
		{"update into admin", "UPDATE", "admin", row("user"), true, false},
		{"update stays admin", "UPDATE", "admin", row("admin"), false, false},
		{"update out of admin", "UPDATE", "user", row("admin"), false, true},
		{"update stays regular", "UPDATE", "user", row("user"), false, false},
		{"update admin without previous", "UPDATE", "admin", nil, true, false},
		{"delete admin", "DELETE", "admin", nil, false, true},
		{"delete regular", "DELETE", "user", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promoted, demoted := computeTransition(tt.event, row(tt.role), tt.previous)
			assert.Equal(t, tt.promoted, promoted, "promoted")
			assert.Equal(t, tt.demoted, demoted, "demoted")
		})
	}
}

func TestHandleEventSkipsNonTransitions(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewPayloadSyncService(db, payload.NewClient("http://payload.invalid", "t", time.Second))

	result, err := svc.HandleEvent(context.Background(), "UPDATE", row("user"), row("user"))
	require.NoError(t, err)
	assert.True(t, result.Skipped)
}

func TestHandleEventPromoteUpdatesExistingExternalUser(t *testing.T) {
	var patched bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"docs": []map[string]string{{"id": "u-1", "email": "marina@monynha.com"}},
			})
		case r.Method == http.MethodPatch:
			patched = true
			json.NewEncoder(w).Encode(map[string]interface{}{
				"doc": map[string]string{"id": "u-1", "email": "marina@monynha.com", "role": "admin"},
			})
		default:
			t.Errorf("unexpected call: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "profiles" SET "payload_user_id"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := NewPayloadSyncService(db, payload.NewClient(srv.URL, "t", time.Second))
	result, err := svc.HandleEvent(context.Background(), "UPDATE", row("admin"), row("user"))
	require.NoError(t, err)

	assert.True(t, patched)
	assert.False(t, result.Skipped)
	assert.Equal(t, ResultUpdated, result.Result)
	require.NotNil(t, result.PayloadUserID)
	assert.Equal(t, "u-1", *result.PayloadUserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleEventDemoteClearsPayloadID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]interface{}{
				"docs": []map[string]string{{"id": "u-1"}},
			})
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected call: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "profiles" SET "payload_user_id"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := NewPayloadSyncService(db, payload.NewClient(srv.URL, "t", time.Second))
	result, err := svc.HandleEvent(context.Background(), "UPDATE", row("user"), row("admin"))
	require.NoError(t, err)

	assert.Equal(t, ResultRemoved, result.Result)
	assert.Nil(t, result.PayloadUserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleEventExternalFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("payload down"))
	}))
	defer srv.Close()

	db, _ := newMockDB(t)
	svc := NewPayloadSyncService(db, payload.NewClient(srv.URL, "t", time.Second))

	_, err := svc.HandleEvent(context.Background(), "UPDATE", row("admin"), row("user"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "payload down")
}
