package service

import (
	"errors"
	"fmt"

	"kollegebot/internal/domain"
	"kollegebot/internal/repository"
)

// ErrUnknownSetting marks a settings_switch route carrying a name that is
// not in the settings table. This is a programming-contract violation, not
// user input: buttons are built from the same table.
var ErrUnknownSetting = errors.New("unknown setting")

// SettingNotifiable is the notification opt-in switch
const SettingNotifiable = "is_notifiable"

type settingSpec struct {
	value func(domain.User) bool
	set   func(repository.UserRepository, int64, bool) error
}

// The full table of switchable settings, known at compile time
var settingSpecs = map[string]settingSpec{
	SettingNotifiable: {
		value: func(u domain.User) bool { return u.Notifiable },
		set: func(r repository.UserRepository, id int64, v bool) error {
			return r.SetNotifiable(id, v)
		},
	},
}

// SettingNames returns switchable setting names in display order
func SettingNames() []string {
	return []string{SettingNotifiable}
}

// SettingValue returns the current value of a named switch
func SettingValue(u domain.User, name string) (bool, error) {
	spec, ok := settingSpecs[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}
	return spec.value(u), nil
}

// UserService handles the user directory
type UserService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// EnsureExists creates the user record if it doesn't exist
func (s *UserService) EnsureExists(userID int64) error {
	return s.repo.EnsureExists(userID)
}

// Get returns the user record
func (s *UserService) Get(userID int64) (domain.User, error) {
	return s.repo.Get(userID)
}

// SetGroup updates the user's selected study group.
// Any name is accepted, selection is not validated against the schedule.
func (s *UserService) SetGroup(userID int64, group string) error {
	return s.repo.SetGroup(userID, group)
}

// Toggle flips a named boolean setting and returns the new value.
// An unknown name yields ErrUnknownSetting and leaves the record untouched.
func (s *UserService) Toggle(userID int64, name string) (bool, error) {
	spec, ok := settingSpecs[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownSetting, name)
	}

	user, err := s.repo.Get(userID)
	if err != nil {
		return false, err
	}

	value := !spec.value(user)
	if err := spec.set(s.repo, userID, value); err != nil {
		return false, err
	}

	return value, nil
}
