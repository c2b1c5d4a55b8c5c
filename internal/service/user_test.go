package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kollegebot/internal/testutil"
)

func TestUserService_Toggle(t *testing.T) {
	tests := []struct {
		name          string
		currentValue  bool
		expectedValue bool
	}{
		{
			name:          "on to off",
			currentValue:  true,
			expectedValue: false,
		},
		{
			name:          "off to on",
			currentValue:  false,
			expectedValue: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("Get", int64(123)).Return(testutil.NewTestUser(123, "", tt.currentValue), nil)
			mockRepo.On("SetNotifiable", int64(123), tt.expectedValue).Return(nil)

			service := NewUserService(mockRepo)

			value, err := service.Toggle(123, SettingNotifiable)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedValue, value)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Toggle_UnknownSetting(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)

	service := NewUserService(mockRepo)

	_, err := service.Toggle(123, "is_invisible")

	assert.ErrorIs(t, err, ErrUnknownSetting)
	// The record is never read, let alone written
	mockRepo.AssertNotCalled(t, "Get")
	mockRepo.AssertNotCalled(t, "SetNotifiable")
}

func TestUserService_SetGroup_AcceptsAnyName(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("SetGroup", int64(123), "НЕ СУЩЕСТВУЕТ 99-9").Return(nil)

	service := NewUserService(mockRepo)

	err := service.SetGroup(123, "НЕ СУЩЕСТВУЕТ 99-9")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_EnsureExists(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("EnsureExists", int64(123)).Return(nil)

	service := NewUserService(mockRepo)

	assert.NoError(t, service.EnsureExists(123))
	mockRepo.AssertExpectations(t)
}

func TestSettingValue(t *testing.T) {
	user := testutil.NewTestUser(123, "ИС 21-1", true)

	value, err := SettingValue(user, SettingNotifiable)
	assert.NoError(t, err)
	assert.True(t, value)

	_, err = SettingValue(user, "is_invisible")
	assert.ErrorIs(t, err, ErrUnknownSetting)
}

func TestSettingNames_AllResolvable(t *testing.T) {
	user := testutil.NewTestUser(123, "", false)

	for _, name := range SettingNames() {
		_, err := SettingValue(user, name)
		assert.NoError(t, err, name)
	}
}
