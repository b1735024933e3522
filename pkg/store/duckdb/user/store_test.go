package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/churn-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	s, err := NewStore(db)
	require.NoError(t, err)
	return s, mock
}

func sampleUser() store.User {
	return store.User{
		ID:           "user-1",
		Email:        "ana@example.com",
		Name:         "Ana",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC),
	}
}

func userRows(u store.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "created_at"}).
		AddRow(u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt)
}

func TestNewStore_NilConnection(t *testing.T) {
	s, err := NewStore(nil)
	assert.Nil(t, s)
	assert.Error(t, err)
}

func TestUserStore_Create(t *testing.T) {
	s, mock := setupMock(t)
	u := sampleUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Create(context.Background(), u)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserStore_Create_Error(t *testing.T) {
	s, mock := setupMock(t)
	u := sampleUser()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("unique constraint violated"))

	err := s.Create(context.Background(), u)
	assert.Error(t, err)
}

func TestUserStore_FindByEmail(t *testing.T) {
	s, mock := setupMock(t)
	u := sampleUser()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, name, password_hash, created_at FROM users WHERE email").
			WithArgs(u.Email).
			WillReturnRows(userRows(u))

		found, err := s.FindByEmail(context.Background(), u.Email)
		require.NoError(t, err)
		assert.Equal(t, u, *found)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, name, password_hash, created_at FROM users WHERE email").
			WithArgs("ghost@example.com").
			WillReturnError(sql.ErrNoRows)

		found, err := s.FindByEmail(context.Background(), "ghost@example.com")
		assert.Nil(t, found)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserStore_FindByID(t *testing.T) {
	s, mock := setupMock(t)
	u := sampleUser()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, name, password_hash, created_at FROM users WHERE id").
			WithArgs(u.ID).
			WillReturnRows(userRows(u))

		found, err := s.FindByID(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Equal(t, u, *found)
	})

	t.Run("query failure", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, name, password_hash, created_at FROM users WHERE id").
			WithArgs("user-2").
			WillReturnError(errors.New("connection reset"))

		found, err := s.FindByID(context.Background(), "user-2")
		assert.Nil(t, found)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}
