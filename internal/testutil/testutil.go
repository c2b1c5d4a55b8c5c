package testutil

import (
	"time"

	"go.uber.org/zap"

	"kollegebot/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, group string, notifiable bool) domain.User {
	return domain.User{
		ID:         userID,
		Group:      group,
		Notifiable: notifiable,
		CreatedAt:  time.Now(),
	}
}

// NewTestSchedule creates a snapshot with the given group names, one period each
func NewTestSchedule(groups ...string) []domain.GroupSchedule {
	schedule := make([]domain.GroupSchedule, 0, len(groups))
	for _, group := range groups {
		schedule = append(schedule, domain.GroupSchedule{
			Group:   group,
			Periods: []domain.Period{{Number: 1, Subject: "Математика"}},
		})
	}
	return schedule
}
