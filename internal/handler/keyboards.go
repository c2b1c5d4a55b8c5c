package handler

import (
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"kollegebot/internal/domain"
	"kollegebot/internal/service"
)

const (
	firstPage     = 1
	groupsPerPage = 5

	// scheduleDays is how many upcoming dates get a button
	scheduleDays = 3
)

func btn(text, data string) tele.InlineButton {
	return tele.InlineButton{Text: text, Data: data}
}

func inline(rows ...[]tele.InlineButton) *tele.ReplyMarkup {
	return &tele.ReplyMarkup{InlineKeyboard: rows}
}

func backBtn(target string) tele.InlineButton {
	return btn(btnBack, target)
}

func pagesTotal(total, perPage int) int {
	return (total + perPage - 1) / perPage
}

// pageRow builds previous / info / next controls. Buttons past the first or
// last page degrade to answer_callback, a pure acknowledgement.
func pageRow(callback string, page, total, perPage int) []tele.InlineButton {
	pages := pagesTotal(total, perPage)

	previous := fmt.Sprintf("%s %d", callback, page-1)
	if page-1 < firstPage {
		previous = "answer_callback"
	}

	info := fmt.Sprintf("%s %d", callback, firstPage)
	if page == firstPage {
		info = "answer_callback"
	}

	next := fmt.Sprintf("%s %d", callback, page+1)
	if page+1 > pages {
		next = "answer_callback"
	}

	return []tele.InlineButton{
		btn(btnPagePrevious, previous),
		btn(fmt.Sprintf("%d / %d", page, pages), info),
		btn(btnPageNext, next),
	}
}

func mainMenuMarkup() *tele.ReplyMarkup {
	return inline(
		[]tele.InlineButton{btn(btnViewSchedules, "view_schedules")},
		[]tele.InlineButton{
			btn(btnViewGroups, fmt.Sprintf("view_groups %d", firstPage)),
			btn(btnSettings, "settings"),
		},
	)
}

func scheduleDatesMarkup(now time.Time) *tele.ReplyMarkup {
	row := make([]tele.InlineButton, 0, scheduleDays)
	for _, date := range domain.UpcomingDates(now, scheduleDays) {
		row = append(row, btn(domain.ReadableDate(date), "schedule "+domain.CallbackDate(date)))
	}

	return inline(row, []tele.InlineButton{backBtn("start")})
}

func scheduleMarkup() *tele.ReplyMarkup {
	return inline([]tele.InlineButton{backBtn("view_schedules")})
}

func groupsMarkup(groups []string, page int) *tele.ReplyMarkup {
	start := (page - 1) * groupsPerPage
	end := start + groupsPerPage
	if end > len(groups) {
		end = len(groups)
	}

	var rows [][]tele.InlineButton
	for _, group := range groups[start:end] {
		rows = append(rows, []tele.InlineButton{btn(group, "group "+group)})
	}

	rows = append(rows, pageRow("view_groups", page, len(groups), groupsPerPage))
	rows = append(rows, []tele.InlineButton{backBtn("start")})

	return inline(rows...)
}

func settingsMarkup(user domain.User) *tele.ReplyMarkup {
	var rows [][]tele.InlineButton
	for _, name := range service.SettingNames() {
		value, err := service.SettingValue(user, name)
		if err != nil {
			continue
		}
		rows = append(rows, []tele.InlineButton{
			btn(btnSettingsSwitch(settingLabel(name), value), "settings_switch "+name),
		})
	}

	rows = append(rows, []tele.InlineButton{backBtn("start")})
	return inline(rows...)
}

func adminMarkup() *tele.ReplyMarkup {
	return inline(
		[]tele.InlineButton{
			btn(btnSchedule, "manage_schedule"),
			btn(btnSubstitutions, "view_substitutions"),
		},
		[]tele.InlineButton{btn(btnExportLogs, "export_logs")},
	)
}

func manageScheduleMarkup() *tele.ReplyMarkup {
	return inline(
		[]tele.InlineButton{
			btn(btnUpload, "upload_schedule"),
			btn(btnDelete, "delete_schedule"),
		},
		[]tele.InlineButton{backBtn("admin")},
	)
}

func cancelMarkup(target string) *tele.ReplyMarkup {
	return inline([]tele.InlineButton{btn(btnCancel, target)})
}

func scheduleUploadEndedMarkup() *tele.ReplyMarkup {
	return inline([]tele.InlineButton{backBtn("manage_schedule")})
}

func substitutionDatesMarkup(now time.Time) *tele.ReplyMarkup {
	row := make([]tele.InlineButton, 0, scheduleDays)
	for _, date := range domain.UpcomingDates(now, scheduleDays) {
		row = append(row, btn(domain.ReadableDate(date), "manage_substitutions "+domain.CallbackDate(date)))
	}

	return inline(row, []tele.InlineButton{backBtn("admin")})
}

func manageSubstitutionsMarkup(date time.Time) *tele.ReplyMarkup {
	key := domain.CallbackDate(date)
	return inline(
		[]tele.InlineButton{
			btn(btnUpload, "upload_substitutions "+key),
			btn(btnDelete, "delete_substitutions "+key),
		},
		[]tele.InlineButton{backBtn("view_substitutions")},
	)
}

func substitutionsUploadEndedMarkup(date time.Time) *tele.ReplyMarkup {
	return inline([]tele.InlineButton{backBtn("manage_substitutions " + domain.CallbackDate(date))})
}

func notificationScheduleMarkup() *tele.ReplyMarkup {
	return inline([]tele.InlineButton{btn(btnViewSchedules, "view_schedules")})
}

func notificationSubstitutionsMarkup(date time.Time) *tele.ReplyMarkup {
	return inline([]tele.InlineButton{
		btn(btnScheduleFor(date), "schedule "+domain.CallbackDate(date)),
	})
}
