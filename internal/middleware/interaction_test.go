package middleware

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"

	"kollegebot/internal/service"
	"kollegebot/internal/testutil"
)

func TestInteraction_EnsuresUserExists(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("EnsureExists", int64(100)).Return(nil)

	mw := Interaction(service.NewUserService(mockRepo), testutil.NewTestLogger())

	called := false
	next := func(c tele.Context) error {
		called = true
		return nil
	}

	c := testutil.NewCallbackContext(100, "start")
	require.NoError(t, mw(next)(c))

	assert.True(t, called)
	mockRepo.AssertExpectations(t)
}

func TestInteraction_DirectoryFailureDoesNotBlockEvent(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("EnsureExists", int64(100)).Return(errors.New("connection refused"))

	mw := Interaction(service.NewUserService(mockRepo), testutil.NewTestLogger())

	called := false
	next := func(c tele.Context) error {
		called = true
		return nil
	}

	c := testutil.NewMessageContext(100, "/start", nil)
	require.NoError(t, mw(next)(c))

	assert.True(t, called)
}
