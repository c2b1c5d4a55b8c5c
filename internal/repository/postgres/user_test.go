package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_EnsureExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	userID := int64(123)

	// Group and notifiable defaults are SQL constants
	mock.ExpectExec("INSERT INTO users").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.EnsureExists(userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_EnsureExists_Idempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	userID := int64(123)

	// Second insert conflicts and affects zero rows
	mock.ExpectExec("INSERT INTO users").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO users").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.EnsureExists(userID))
	assert.NoError(t, repo.EnsureExists(userID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Get(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedGroup string
		expectedError bool
	}{
		{
			name:   "existing user with group",
			userID: 123,
			mockRows: sqlmock.NewRows([]string{"user_id", "study_group", "notifiable", "created_at"}).
				AddRow(int64(123), "ИС 21-1", true, time.Now()),
			expectedGroup: "ИС 21-1",
			expectedError: false,
		},
		{
			name:          "missing user",
			userID:        456,
			mockError:     sql.ErrNoRows,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := "SELECT user_id, study_group, notifiable, created_at FROM users WHERE user_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			user, err := repo.Get(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, user.ID)
				assert.Equal(t, tt.expectedGroup, user.Group)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	rows := sqlmock.NewRows([]string{"user_id", "study_group", "notifiable", "created_at"}).
		AddRow(int64(1), "ИС 21-1", true, time.Now()).
		AddRow(int64(2), "", false, time.Now())

	mock.ExpectQuery("SELECT user_id, study_group, notifiable, created_at FROM users").
		WillReturnRows(rows)

	users, err := repo.GetAll()

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].ID)
	assert.True(t, users[0].Notifiable)
	assert.False(t, users[1].Notifiable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SetGroup(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("UPDATE users SET study_group").
		WithArgs("ИС 21-1", int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetGroup(123, "ИС 21-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SetNotifiable(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("UPDATE users SET notifiable").
		WithArgs(false, int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetNotifiable(123, false)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
