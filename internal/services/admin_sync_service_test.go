package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubMailer struct {
	calls []string
	err   error
}

func (m *stubMailer) SendPasswordReset(_ context.Context, email string) error {
	m.calls = append(m.calls, email)
	return m.err
}

func adminProfile() *dto.SyncProfile {
	return &dto.SyncProfile{
		UserID: "auth-123",
		Email:  "marina@monynha.com",
		Name:   "Marina",
	}
}

func TestPromoteUpdatesExistingLinkedUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAdminSyncService(db, nil)

	mock.ExpectQuery(`SELECT \* FROM "cms_users" WHERE auth_user_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).
			AddRow(uuid.New().String(), "old@monynha.com", "editor"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cms_users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := svc.Promote(context.Background(), adminProfile())
	require.NoError(t, err)
	assert.Equal(t, ResultUpdated, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromoteAttachesIdentityByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAdminSyncService(db, nil)

	mock.ExpectQuery(`SELECT \* FROM "cms_users" WHERE auth_user_id = `).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(`SELECT \* FROM "cms_users" WHERE email = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).
			AddRow(uuid.New().String(), "marina@monynha.com", "editor"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cms_users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := svc.Promote(context.Background(), adminProfile())
	require.NoError(t, err)
	assert.Equal(t, ResultUpdated, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromoteCreatesUnseenUserAndSendsReset(t *testing.T) {
	db, mock := newMockDB(t)
	mailer := &stubMailer{}
	svc := NewAdminSyncService(db, mailer)

	mock.ExpectQuery(`SELECT \* FROM "cms_users" WHERE auth_user_id = `).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(`SELECT \* FROM "cms_users" WHERE email = `).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cms_users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	result, err := svc.Promote(context.Background(), adminProfile())
	require.NoError(t, err)
	assert.Equal(t, ResultCreated, result)
	assert.Equal(t, []string{"marina@monynha.com"}, mailer.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromoteResetFailureIsNotFatal(t *testing.T) {
	db, mock := newMockDB(t)
	mailer := &stubMailer{err: errors.New("smtp unavailable")}
	svc := NewAdminSyncService(db, mailer)

	mock.ExpectQuery(`SELECT \* FROM "cms_users" WHERE auth_user_id = `).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(`SELECT \* FROM "cms_users" WHERE email = `).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cms_users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	result, err := svc.Promote(context.Background(), adminProfile())
	require.NoError(t, err)
	assert.Equal(t, ResultCreated, result)
}

func TestDemoteUnknownUserIsSoftNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAdminSyncService(db, nil)

	mock.ExpectQuery(`SELECT \* FROM "cms_users" WHERE auth_user_id = `).
		WillReturnError(gorm.ErrRecordNotFound)

	result, err := svc.Demote(context.Background(), adminProfile())
	require.NoError(t, err)
	assert.Equal(t, ResultNotFound, result)
	// No delete statement was expected or issued.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDemoteDeletesLinkedUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAdminSyncService(db, nil)

	mock.ExpectQuery(`SELECT \* FROM "cms_users" WHERE auth_user_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).
			AddRow(uuid.New().String(), "marina@monynha.com", "admin"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cms_users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := svc.Demote(context.Background(), adminProfile())
	require.NoError(t, err)
	assert.Equal(t, ResultRemoved, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDemoteStoreOutagePropagates(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAdminSyncService(db, nil)

	mock.ExpectQuery(`SELECT \* FROM "cms_users" WHERE auth_user_id = `).
		WillReturnError(errors.New("connection refused"))

	result, err := svc.Demote(context.Background(), adminProfile())
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection refused")
	assert.Empty(t, result, "an outage must not read as not_found")
}

func TestPromoteLookupOutagePropagates(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAdminSyncService(db, nil)

	mock.ExpectQuery(`SELECT \* FROM "cms_users" WHERE auth_user_id = `).
		WillReturnError(errors.New("connection refused"))

	result, err := svc.Promote(context.Background(), adminProfile())
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection refused")
	assert.Empty(t, result)
}

// The identity-link row must be freed by demote: re-promoting the same
// profile afterwards goes down the create branch and the insert succeeds
// because email and auth_user_id no longer occupy the unique indexes.
func TestDemoteThenPromoteRecreatesUser(t *testing.T) {
	db, mock := newMockDB(t)
	mailer := &stubMailer{}
	svc := NewAdminSyncService(db, mailer)

	mock.ExpectQuery(`SELECT \* FROM "cms_users" WHERE auth_user_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).
			AddRow(uuid.New().String(), "marina@monynha.com", "admin"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cms_users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := svc.Demote(context.Background(), adminProfile())
	require.NoError(t, err)
	require.Equal(t, ResultRemoved, result)

	mock.ExpectQuery(`SELECT \* FROM "cms_users" WHERE auth_user_id = `).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(`SELECT \* FROM "cms_users" WHERE email = `).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "cms_users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	result, err = svc.Promote(context.Background(), adminProfile())
	require.NoError(t, err)
	assert.Equal(t, ResultCreated, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
