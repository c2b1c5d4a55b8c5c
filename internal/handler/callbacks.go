package handler

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"kollegebot/internal/domain"
	"kollegebot/internal/service"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles ALL navigation events
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	userID := c.Sender().ID
	unlock := h.lockSender(userID)
	defer unlock()

	// Registered first so the acknowledgement still goes out after a panic
	defer h.acknowledge(c)
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("panic in callback handler",
				zap.Int64("user_id", userID),
				zap.Any("panic", r),
			)
		}
	}()

	data := cleanCallbackData(callback.Data)
	isAdmin := h.auth.IsAdmin(userID)

	h.logger.Info("handleCallback: processing callback",
		zap.Int64("user_id", userID),
		zap.String("data", data),
		zap.Bool("is_admin", isAdmin),
	)

	// Navigation always cancels a pending upload
	h.sessions.Clear(userID)

	route := domain.ParseRoute(data)

	spec, ok := h.routes[route.Verb]
	if !ok || !spec.arityOK(len(route.Args)) || (spec.adminOnly && !isAdmin) {
		return h.respondAlert(c, alertButtonUnavailable)
	}

	if err := spec.handle(c, route.Args); err != nil && !service.IsUnreachable(err) {
		h.logger.Error("callback handler failed",
			zap.Int64("user_id", userID),
			zap.String("data", data),
			zap.Error(err),
		)
	}
	return nil
}

// startScreen shows the main menu
func (h *Handler) startScreen(c tele.Context, _ []string) error {
	return h.editScreen(c, menuStart(senderName(c.Sender())), mainMenuMarkup())
}

// viewSchedulesScreen lists selectable upcoming dates
func (h *Handler) viewSchedulesScreen(c tele.Context, _ []string) error {
	schedule, err := h.content.Schedule()
	if err != nil {
		return err
	}
	if len(schedule) == 0 {
		return h.respondAlert(c, alertScheduleUnavailable)
	}

	user, err := h.users.Get(c.Sender().ID)
	if err != nil {
		return err
	}
	if !user.HasGroup() {
		return h.respondAlert(c, alertGroupNotSelected)
	}

	return h.editScreen(c, menuViewSchedules, scheduleDatesMarkup(time.Now()))
}

// scheduleScreen renders the sender's group timetable for a date, with that
// date's substitutions merged in
func (h *Handler) scheduleScreen(c tele.Context, args []string) error {
	date, err := domain.ParseCallbackDate(args[0])
	if err != nil {
		return h.respondAlert(c, alertButtonUnavailable)
	}

	user, err := h.users.Get(c.Sender().ID)
	if err != nil {
		return err
	}
	if !user.HasGroup() {
		return h.respondAlert(c, alertGroupNotSelected)
	}

	periods, hasSubstitutions, err := h.content.ScheduleFor(user.Group, date)
	switch {
	case errors.Is(err, service.ErrNoSchedule):
		return h.respondAlert(c, alertScheduleUnavailable)
	case errors.Is(err, service.ErrGroupMissing):
		return h.respondAlert(c, alertGroupMissingInSchedule)
	case err != nil:
		return err
	}

	return h.editScreen(c, menuSchedule(date, periods, hasSubstitutions), scheduleMarkup())
}

// viewGroupsScreen shows one page of the group list
func (h *Handler) viewGroupsScreen(c tele.Context, args []string) error {
	page, err := strconv.Atoi(args[0])
	if err != nil {
		return h.respondAlert(c, alertButtonUnavailable)
	}

	schedule, err := h.content.Schedule()
	if err != nil {
		return err
	}
	if len(schedule) == 0 {
		return h.respondAlert(c, alertScheduleUnavailable)
	}

	if page < firstPage || page > pagesTotal(len(schedule), groupsPerPage) {
		return h.respondAlert(c, alertButtonUnavailable)
	}

	groups := make([]string, 0, len(schedule))
	for _, gs := range schedule {
		groups = append(groups, gs.Group)
	}

	return h.editScreen(c, menuViewGroups, groupsMarkup(groups, page))
}

// selectGroup sets the sender's study group. The group name is the
// remainder of the route, names may contain spaces.
func (h *Handler) selectGroup(c tele.Context, args []string) error {
	group := strings.Join(args, " ")

	if err := h.users.SetGroup(c.Sender().ID, group); err != nil {
		return err
	}

	return h.respondToast(c, alertGroupSelected(group))
}

// settingsScreen shows the settings switches
func (h *Handler) settingsScreen(c tele.Context, _ []string) error {
	user, err := h.users.Get(c.Sender().ID)
	if err != nil {
		return err
	}

	return h.editScreen(c, menuSettings(user), settingsMarkup(user))
}

// settingsSwitch toggles a named boolean setting and refreshes the screen.
// The name comes from a button built out of the same settings table, so an
// unknown name is a contract violation, not user input.
func (h *Handler) settingsSwitch(c tele.Context, args []string) error {
	userID := c.Sender().ID
	name := args[0]

	if _, err := h.users.Toggle(userID, name); err != nil {
		if errors.Is(err, service.ErrUnknownSetting) {
			h.logger.DPanic("settings switch contract violation",
				zap.Int64("user_id", userID),
				zap.String("setting", name),
			)
			return h.respondAlert(c, alertButtonUnavailable)
		}
		return err
	}

	user, err := h.users.Get(userID)
	if err != nil {
		return err
	}

	return h.editScreen(c, menuSettings(user), settingsMarkup(user))
}

// adminScreen shows the admin menu
func (h *Handler) adminScreen(c tele.Context, _ []string) error {
	return h.editScreen(c, menuAdmin(senderName(c.Sender()), h.startedAt), adminMarkup())
}

// manageScheduleScreen shows schedule status with upload/delete actions
func (h *Handler) manageScheduleScreen(c tele.Context, _ []string) error {
	schedule, err := h.content.Schedule()
	if err != nil {
		return err
	}

	return h.editScreen(c, menuManageSchedule(len(schedule)), manageScheduleMarkup())
}

// uploadSchedule arms the schedule upload mode and prompts for a file
func (h *Handler) uploadSchedule(c tele.Context, _ []string) error {
	h.sessions.AwaitSchedule(c.Sender().ID)
	return h.editScreen(c, menuUploadSchedule(), cancelMarkup("manage_schedule"))
}

// deleteSchedule wholesale-clears the schedule snapshot
func (h *Handler) deleteSchedule(c tele.Context, _ []string) error {
	existed, err := h.content.DeleteSchedule()
	if err != nil {
		return err
	}
	if !existed {
		return h.respondAlert(c, alertScheduleUnavailable)
	}

	if err := h.editScreen(c, menuManageSchedule(0), manageScheduleMarkup()); err != nil {
		return err
	}
	return h.respondAlert(c, alertScheduleDeleted)
}

// viewSubstitutionsScreen lists dates whose substitutions can be managed
func (h *Handler) viewSubstitutionsScreen(c tele.Context, _ []string) error {
	return h.editScreen(c, menuViewSubstitutions, substitutionDatesMarkup(time.Now()))
}

// manageSubstitutionsScreen shows a date's substitutions status
func (h *Handler) manageSubstitutionsScreen(c tele.Context, args []string) error {
	date, err := domain.ParseCallbackDate(args[0])
	if err != nil {
		return h.respondAlert(c, alertButtonUnavailable)
	}

	subs, err := h.content.Substitutions(date)
	if err != nil {
		return err
	}

	return h.editScreen(c, menuManageSubstitutions(date, len(subs)), manageSubstitutionsMarkup(date))
}

// uploadSubstitutions arms the substitutions upload mode for a date
func (h *Handler) uploadSubstitutions(c tele.Context, args []string) error {
	date, err := domain.ParseCallbackDate(args[0])
	if err != nil {
		return h.respondAlert(c, alertButtonUnavailable)
	}

	h.sessions.AwaitSubstitutions(c.Sender().ID, date)
	return h.editScreen(c, menuUploadSubstitutions(date),
		cancelMarkup("manage_substitutions "+domain.CallbackDate(date)))
}

// deleteSubstitutions wholesale-clears a date's substitution list
func (h *Handler) deleteSubstitutions(c tele.Context, args []string) error {
	date, err := domain.ParseCallbackDate(args[0])
	if err != nil {
		return h.respondAlert(c, alertButtonUnavailable)
	}

	existed, err := h.content.DeleteSubstitutions(date)
	if err != nil {
		return err
	}
	if !existed {
		return h.respondAlert(c, alertSubstitutionsUnavailable)
	}

	if err := h.editScreen(c, menuManageSubstitutions(date, 0), manageSubstitutionsMarkup(date)); err != nil {
		return err
	}
	return h.respondAlert(c, alertSubstitutionsDeleted)
}

// exportLogs sends the log file as a document
func (h *Handler) exportLogs(c tele.Context, _ []string) error {
	if h.logFile == "" {
		return h.respondAlert(c, alertExportLogsUnavailable)
	}

	return c.Send(&tele.Document{
		File:     tele.FromDisk(h.logFile),
		FileName: filepath.Base(h.logFile),
	})
}

func senderName(user *tele.User) string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = user.Username
	}
	return name
}
