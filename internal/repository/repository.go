package repository

import (
	"kollegebot/internal/domain"
)

// UserRepository defines user directory operations
type UserRepository interface {
	EnsureExists(userID int64) error
	Get(userID int64) (domain.User, error)
	GetAll() ([]domain.User, error)
	SetGroup(userID int64, group string) error
	SetNotifiable(userID int64, notifiable bool) error
}

// ContentRepository defines schedule and substitutions snapshot operations.
// Snapshots are replaced wholesale; GetSubstitutions returns an empty slice,
// never an error, when nothing is stored for the date key.
type ContentRepository interface {
	GetSchedule() ([]domain.GroupSchedule, error)
	ReplaceSchedule(schedule []domain.GroupSchedule) error
	DeleteSchedule() error

	GetSubstitutions(dateKey string) ([]domain.Substitution, error)
	ReplaceSubstitutions(dateKey string, subs []domain.Substitution) error
	DeleteSubstitutions(dateKey string) error
}
