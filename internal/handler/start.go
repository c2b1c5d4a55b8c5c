package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: create-if-absent the user record and show
// the main menu as a new message
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	unlock := h.lockSender(userID)
	defer unlock()

	h.sessions.Clear(userID)

	if err := h.users.EnsureExists(userID); err != nil {
		h.logger.Error("failed to ensure user exists", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgInternalError)
	}

	return c.Send(menuStart(senderName(c.Sender())), mainMenuMarkup())
}

// handleAdmin handles /admin. Non-admins get no reply at all: the command
// is not advertised and its existence is not revealed.
func (h *Handler) handleAdmin(c tele.Context) error {
	userID := c.Sender().ID

	unlock := h.lockSender(userID)
	defer unlock()

	h.sessions.Clear(userID)

	if !h.auth.IsAdmin(userID) {
		return nil
	}

	return c.Send(menuAdmin(senderName(c.Sender()), h.startedAt), adminMarkup())
}
