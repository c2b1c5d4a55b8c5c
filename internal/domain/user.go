package domain

import "time"

// User represents a bot user
type User struct {
	ID         int64
	Group      string
	Notifiable bool
	CreatedAt  time.Time
}

// HasGroup reports whether the user selected a study group
func (u User) HasGroup() bool {
	return u.Group != ""
}
