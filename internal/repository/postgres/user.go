package postgres

import (
	"database/sql"
	"fmt"

	"kollegebot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureExists creates the user record if it doesn't exist yet
func (r *UserRepo) EnsureExists(userID int64) error {
	query := `
		INSERT INTO users (user_id, study_group, notifiable)
		VALUES ($1, '', TRUE)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// Get returns the user record by identifier
func (r *UserRepo) Get(userID int64) (domain.User, error) {
	var u domain.User
	query := `SELECT user_id, study_group, notifiable, created_at FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&u.ID, &u.Group, &u.Notifiable, &u.CreatedAt)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user %d: %w", userID, err)
	}
	return u, nil
}

// GetAll returns all user records
func (r *UserRepo) GetAll() ([]domain.User, error) {
	query := `SELECT user_id, study_group, notifiable, created_at FROM users ORDER BY user_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Group, &u.Notifiable, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// SetGroup updates the user's selected study group
func (r *UserRepo) SetGroup(userID int64, group string) error {
	query := `UPDATE users SET study_group = $1 WHERE user_id = $2`
	_, err := r.db.Exec(query, group, userID)
	return err
}

// SetNotifiable updates the user's notification opt-in flag
func (r *UserRepo) SetNotifiable(userID int64, notifiable bool) error {
	query := `UPDATE users SET notifiable = $1 WHERE user_id = $2`
	_, err := r.db.Exec(query, notifiable, userID)
	return err
}
