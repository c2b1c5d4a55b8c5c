package handler

import (
	"context"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"kollegebot/internal/domain"
	"kollegebot/internal/service"
)

// handleContent handles content events (plain messages). While an upload
// mode is armed they continue that upload; otherwise there is no route and
// the message is ignored.
func (h *Handler) handleContent(c tele.Context) error {
	if c.Message() == nil {
		return nil
	}

	userID := c.Sender().ID
	unlock := h.lockSender(userID)
	defer unlock()

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("panic in content handler",
				zap.Int64("user_id", userID),
				zap.Any("panic", r),
			)
		}
	}()

	state := h.sessions.Get(userID)

	h.logger.Info("handleContent: processing message",
		zap.Int64("user_id", userID),
		zap.Bool("has_file", c.Message().Document != nil),
		zap.Int("mode", int(state.Mode)),
	)

	switch state.Mode {
	case ModeAwaitingSchedule:
		return h.continueScheduleUpload(c)
	case ModeAwaitingSubstitutions:
		return h.continueSubstitutionsUpload(c, state.Date)
	default:
		return nil
	}
}

// continueScheduleUpload finishes the schedule upload. A message without a
// file re-prompts and keeps the mode armed; a file-bearing message always
// exits to idle, whether or not the workbook parses.
func (h *Handler) continueScheduleUpload(c tele.Context) error {
	userID := c.Sender().ID

	doc := c.Message().Document
	if doc == nil {
		return c.Send(menuUploadSchedule(), cancelMarkup("manage_schedule"))
	}

	defer h.sessions.Clear(userID)

	file, err := h.files.File(&doc.File)
	if err != nil {
		h.logger.Error("schedule download failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(menuUploadScheduleError(), scheduleUploadEndedMarkup())
	}
	defer file.Close()

	count, err := h.content.UploadSchedule(file)
	if err != nil {
		h.logger.Error("schedule upload failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(menuUploadScheduleError(), scheduleUploadEndedMarkup())
	}

	if err := c.Send(menuUploadScheduleSuccess(count), scheduleUploadEndedMarkup()); err != nil {
		return err
	}

	h.broadcast(notificationScheduleUploaded, notificationScheduleMarkup())
	return nil
}

// continueSubstitutionsUpload finishes the substitutions upload for the
// date captured when the mode was armed
func (h *Handler) continueSubstitutionsUpload(c tele.Context, date time.Time) error {
	userID := c.Sender().ID

	doc := c.Message().Document
	if doc == nil {
		return c.Send(menuUploadSubstitutions(date),
			cancelMarkup("manage_substitutions "+domain.CallbackDate(date)))
	}

	defer h.sessions.Clear(userID)

	file, err := h.files.File(&doc.File)
	if err != nil {
		h.logger.Error("substitutions download failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(menuUploadSubstitutionsError(), substitutionsUploadEndedMarkup(date))
	}
	defer file.Close()

	count, err := h.content.UploadSubstitutions(date, file)
	if err != nil {
		h.logger.Error("substitutions upload failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(menuUploadSubstitutionsError(), substitutionsUploadEndedMarkup(date))
	}

	if err := c.Send(menuUploadSubstitutionsSuccess(date, count), substitutionsUploadEndedMarkup(date)); err != nil {
		return err
	}

	h.broadcast(notificationSubstitutionsUploaded(date), notificationSubstitutionsMarkup(date))
	return nil
}

// broadcast notifies opted-in non-admin users with a selected group
func (h *Handler) broadcast(text string, markup *tele.ReplyMarkup) {
	results, err := h.notifier.Broadcast(context.Background(), service.SubscriberFilter(), text, markup)
	if err != nil {
		h.logger.Error("notification broadcast failed", zap.Error(err))
		return
	}

	delivered := 0
	for _, result := range results {
		if result.Status == service.Delivered {
			delivered++
		}
	}
	h.logger.Info("notifications sent",
		zap.Int("delivered", delivered),
		zap.Int("selected", len(results)),
	)
}
