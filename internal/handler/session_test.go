package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionStore_DefaultsToIdle(t *testing.T) {
	store := newSessionStore()

	assert.Equal(t, ModeIdle, store.Get(100).Mode)
}

func TestSessionStore_AtMostOneModePerUser(t *testing.T) {
	store := newSessionStore()
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	store.AwaitSchedule(100)
	assert.Equal(t, ModeAwaitingSchedule, store.Get(100).Mode)

	store.AwaitSubstitutions(100, date)
	state := store.Get(100)
	assert.Equal(t, ModeAwaitingSubstitutions, state.Mode)
	assert.Equal(t, date, state.Date)
}

func TestSessionStore_ClearResetsToIdle(t *testing.T) {
	store := newSessionStore()

	store.AwaitSchedule(100)
	store.Clear(100)

	assert.Equal(t, ModeIdle, store.Get(100).Mode)
}

func TestSessionStore_UsersAreIndependent(t *testing.T) {
	store := newSessionStore()

	store.AwaitSchedule(100)

	assert.Equal(t, ModeIdle, store.Get(200).Mode)
	store.Clear(200)
	assert.Equal(t, ModeAwaitingSchedule, store.Get(100).Mode)
}
