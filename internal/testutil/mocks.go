package testutil

import (
	"io"

	"github.com/stretchr/testify/mock"

	"kollegebot/internal/domain"
)

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) Get(userID int64) (domain.User, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SetGroup(userID int64, group string) error {
	args := m.Called(userID, group)
	return args.Error(0)
}

func (m *MockUserRepository) SetNotifiable(userID int64, notifiable bool) error {
	args := m.Called(userID, notifiable)
	return args.Error(0)
}

// MockContentRepository is a mock for repository.ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) GetSchedule() ([]domain.GroupSchedule, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupSchedule), args.Error(1)
}

func (m *MockContentRepository) ReplaceSchedule(schedule []domain.GroupSchedule) error {
	args := m.Called(schedule)
	return args.Error(0)
}

func (m *MockContentRepository) DeleteSchedule() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockContentRepository) GetSubstitutions(dateKey string) ([]domain.Substitution, error) {
	args := m.Called(dateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Substitution), args.Error(1)
}

func (m *MockContentRepository) ReplaceSubstitutions(dateKey string, subs []domain.Substitution) error {
	args := m.Called(dateKey, subs)
	return args.Error(0)
}

func (m *MockContentRepository) DeleteSubstitutions(dateKey string) error {
	args := m.Called(dateKey)
	return args.Error(0)
}

// MockParser is a mock for parser.Parser
type MockParser struct {
	mock.Mock
}

func (m *MockParser) ParseSchedule(r io.Reader) ([]domain.GroupSchedule, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupSchedule), args.Error(1)
}

func (m *MockParser) ParseSubstitutions(r io.Reader) ([]domain.Substitution, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Substitution), args.Error(1)
}
