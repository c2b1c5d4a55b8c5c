package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"kollegebot/internal/domain"
)

// ContentRepo implements repository.ContentRepository.
// The schedule snapshot lives in a single JSONB row and is replaced as a
// whole; substitutions are one JSONB row per normalized date key.
type ContentRepo struct {
	db *sql.DB
}

// NewContentRepo creates a new content repository
func NewContentRepo(db *sql.DB) *ContentRepo {
	return &ContentRepo{db: db}
}

// GetSchedule returns the current schedule snapshot, empty when not uploaded
func (r *ContentRepo) GetSchedule() ([]domain.GroupSchedule, error) {
	var raw []byte
	query := `SELECT data FROM schedule_snapshot WHERE id = 1`
	err := r.db.QueryRow(query).Scan(&raw)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var schedule []domain.GroupSchedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, fmt.Errorf("decode schedule snapshot: %w", err)
	}

	return schedule, nil
}

// ReplaceSchedule replaces the schedule snapshot atomically
func (r *ContentRepo) ReplaceSchedule(schedule []domain.GroupSchedule) error {
	raw, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("encode schedule snapshot: %w", err)
	}

	query := `
		INSERT INTO schedule_snapshot (id, data, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id)
		DO UPDATE SET data = $1, updated_at = NOW()
	`
	_, err = r.db.Exec(query, raw)
	return err
}

// DeleteSchedule removes the schedule snapshot
func (r *ContentRepo) DeleteSchedule() error {
	query := `DELETE FROM schedule_snapshot WHERE id = 1`
	_, err := r.db.Exec(query)
	return err
}

// GetSubstitutions returns the substitutions stored for the date key.
// An absent date yields an empty slice, not an error.
func (r *ContentRepo) GetSubstitutions(dateKey string) ([]domain.Substitution, error) {
	var raw []byte
	query := `SELECT data FROM substitutions WHERE date_key = $1`
	err := r.db.QueryRow(query, dateKey).Scan(&raw)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var subs []domain.Substitution
	if err := json.Unmarshal(raw, &subs); err != nil {
		return nil, fmt.Errorf("decode substitutions %s: %w", dateKey, err)
	}

	return subs, nil
}

// ReplaceSubstitutions replaces the date's substitution list as a whole
func (r *ContentRepo) ReplaceSubstitutions(dateKey string, subs []domain.Substitution) error {
	raw, err := json.Marshal(subs)
	if err != nil {
		return fmt.Errorf("encode substitutions %s: %w", dateKey, err)
	}

	query := `
		INSERT INTO substitutions (date_key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (date_key)
		DO UPDATE SET data = $2, updated_at = NOW()
	`
	_, err = r.db.Exec(query, dateKey, raw)
	return err
}

// DeleteSubstitutions removes the date's substitution list
func (r *ContentRepo) DeleteSubstitutions(dateKey string) error {
	query := `DELETE FROM substitutions WHERE date_key = $1`
	_, err := r.db.Exec(query, dateKey)
	return err
}
