package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLeadNormalizesInput(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLeadService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "leads"`).
		WithArgs("Ana Souza", "ana@monynha.com", "", "Olá!", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	lead, err := svc.CreateLead(context.Background(), &dto.CreateLeadRequest{
		Name:    "  Ana Souza ",
		Email:   " Ana@Monynha.COM ",
		Message: " Olá! ",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@monynha.com", lead.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscribeDuplicateEmailIsSentinel(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLeadService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "subscribers"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_subscribers_email"})
	mock.ExpectRollback()

	_, err := svc.Subscribe(context.Background(), "ana@monynha.com")
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestSubscribeOutageIsNotDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLeadService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "subscribers"`).
		WillReturnError(errors.New("connection refused"))
	mock.ExpectRollback()

	_, err := svc.Subscribe(context.Background(), "ana@monynha.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
	assert.ErrorContains(t, err, "connection refused")
}
