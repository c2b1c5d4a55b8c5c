package postgres

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"kollegebot/internal/domain"
)

func TestContentRepo_GetSchedule(t *testing.T) {
	schedule := []domain.GroupSchedule{
		{Group: "ИС 21-1", Periods: []domain.Period{{Number: 1, Subject: "Математика"}}},
	}
	raw, err := json.Marshal(schedule)
	assert.NoError(t, err)

	tests := []struct {
		name      string
		mockRows  *sqlmock.Rows
		mockError error
		expected  []domain.GroupSchedule
	}{
		{
			name:     "snapshot present",
			mockRows: sqlmock.NewRows([]string{"data"}).AddRow(raw),
			expected: schedule,
		},
		{
			name:      "snapshot absent",
			mockError: sql.ErrNoRows,
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewContentRepo(db)

			query := "SELECT data FROM schedule_snapshot WHERE id = 1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WillReturnRows(tt.mockRows)
			}

			result, err := repo.GetSchedule()

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestContentRepo_ReplaceSchedule(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewContentRepo(db)

	schedule := []domain.GroupSchedule{{Group: "ИС 21-1"}}
	raw, err := json.Marshal(schedule)
	assert.NoError(t, err)

	mock.ExpectExec("INSERT INTO schedule_snapshot").
		WithArgs(raw).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.ReplaceSchedule(schedule)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepo_DeleteSchedule(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewContentRepo(db)

	mock.ExpectExec("DELETE FROM schedule_snapshot").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.DeleteSchedule()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepo_GetSubstitutions_AbsentDateIsEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewContentRepo(db)

	mock.ExpectQuery("SELECT data FROM substitutions WHERE date_key = \\$1").
		WithArgs("02_09_26").
		WillReturnError(sql.ErrNoRows)

	subs, err := repo.GetSubstitutions("02_09_26")

	assert.NoError(t, err)
	assert.Empty(t, subs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepo_GetSubstitutions(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewContentRepo(db)

	subs := []domain.Substitution{{Group: "ИС 21-1", Period: 2, Subject: "Информатика"}}
	raw, err := json.Marshal(subs)
	assert.NoError(t, err)

	mock.ExpectQuery("SELECT data FROM substitutions WHERE date_key = \\$1").
		WithArgs("02_09_26").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(raw))

	result, err := repo.GetSubstitutions("02_09_26")

	assert.NoError(t, err)
	assert.Equal(t, subs, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepo_ReplaceSubstitutions(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewContentRepo(db)

	subs := []domain.Substitution{{Group: "ИС 21-1", Period: 2, Subject: "Информатика"}}
	raw, err := json.Marshal(subs)
	assert.NoError(t, err)

	mock.ExpectExec("INSERT INTO substitutions").
		WithArgs("02_09_26", raw).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.ReplaceSubstitutions("02_09_26", subs)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepo_DeleteSubstitutions(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewContentRepo(db)

	mock.ExpectExec("DELETE FROM substitutions").
		WithArgs("02_09_26").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.DeleteSubstitutions("02_09_26")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
