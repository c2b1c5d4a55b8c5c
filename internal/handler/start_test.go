package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kollegebot/internal/testutil"
)

func TestHandleStart_ShowsMainMenu(t *testing.T) {
	f := newFixture("")
	f.userRepo.On("EnsureExists", testUserID).Return(nil)

	c := testutil.NewMessageContext(testUserID, "/start", nil)
	require.NoError(t, f.handler.handleStart(c))

	f.userRepo.AssertExpectations(t)
	assert.Contains(t, c.LastText(), "Привет")
	require.NotNil(t, c.LastMarkup())
	assert.Equal(t, "view_schedules", c.LastMarkup().InlineKeyboard[0][0].Data)
}

func TestHandleStart_DirectoryFailure(t *testing.T) {
	f := newFixture("")
	f.userRepo.On("EnsureExists", testUserID).Return(errors.New("connection refused"))

	c := testutil.NewMessageContext(testUserID, "/start", nil)
	require.NoError(t, f.handler.handleStart(c))

	assert.Equal(t, msgInternalError, c.LastText())
}

func TestHandleStart_CancelsPendingUpload(t *testing.T) {
	f := newFixture("")
	f.userRepo.On("EnsureExists", testAdminID).Return(nil)
	f.handler.sessions.AwaitSchedule(testAdminID)

	c := testutil.NewMessageContext(testAdminID, "/start", nil)
	require.NoError(t, f.handler.handleStart(c))

	assert.Equal(t, ModeIdle, f.handler.sessions.Get(testAdminID).Mode)
}

func TestHandleAdmin_SilentForPlainUsers(t *testing.T) {
	f := newFixture("")

	c := testutil.NewMessageContext(testUserID, "/admin", nil)
	require.NoError(t, f.handler.handleAdmin(c))

	assert.Empty(t, c.SentMessages)
}

func TestHandleAdmin_ShowsAdminMenu(t *testing.T) {
	f := newFixture("")

	c := testutil.NewMessageContext(testAdminID, "/admin", nil)
	require.NoError(t, f.handler.handleAdmin(c))

	assert.Contains(t, c.LastText(), "Меню администратора")
	require.NotNil(t, c.LastMarkup())
	assert.Equal(t, "manage_schedule", c.LastMarkup().InlineKeyboard[0][0].Data)
}
