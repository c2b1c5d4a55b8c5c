package handler

import (
	"fmt"
	"strings"
	"time"

	"kollegebot/internal/domain"
)

const workbookExtension = "xlsx"

// Alerts

const (
	alertGroupNotSelected       = "Выберите группу для просмотра расписания!"
	alertGroupMissingInSchedule = "Расписание для выбранной группы отсутствует!"

	alertScheduleUnavailable      = "Расписание недоступно!"
	alertScheduleDeleted          = "Расписание удалено!"
	alertSubstitutionsUnavailable = "Замены недоступны!"
	alertSubstitutionsDeleted     = "Замены удалены!"
	alertExportLogsUnavailable    = "Логирование отключено!"

	alertButtonUnavailable = "Эта кнопка недоступна!"

	msgInternalError = "Произошла ошибка. Попробуйте позже."
)

func alertGroupSelected(group string) string {
	return fmt.Sprintf("Выбрана группа %q!", group)
}

// Button labels

const (
	btnViewSchedules = "Просмотр расписания"
	btnViewGroups    = "Выбрать группу"
	btnSettings      = "Настройки"

	btnSchedule      = "Расписание"
	btnSubstitutions = "Замены"
	btnUpload        = "Загрузить"
	btnDelete        = "Удалить"
	btnExportLogs    = "Экспортировать логи"

	btnBack   = "Назад"
	btnCancel = "Отмена"

	btnPagePrevious = "<"
	btnPageNext     = ">"
)

func btnSettingsSwitch(label string, value bool) string {
	mark := "❌"
	if value {
		mark = "✅"
	}
	return fmt.Sprintf("%s - %s", label, mark)
}

func btnScheduleFor(date time.Time) string {
	return "Расписание на " + domain.ReadableDate(date)
}

func settingLabel(name string) string {
	switch name {
	case "is_notifiable":
		return "Уведомления"
	default:
		return name
	}
}

// Menu screens

func menuStart(name string) string {
	return fmt.Sprintf(
		"<b>Привет, %s!</b>\n\nЗдесь вы можете посмотреть\nактуальное расписание колледжа\nдля вашей учебной группы.",
		name,
	)
}

const menuViewSchedules = "<b>Просмотр расписания</b>\n\nВыберите нужную дату:"

func menuSchedule(date time.Time, periods []domain.Period, hasSubstitutions bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>Расписание на %s</b>", domain.ReadableDate(date))
	if !hasSubstitutions {
		b.WriteString("\n<i>Замены не загружены</i>")
	}
	b.WriteString("\n\n")

	if len(periods) == 0 {
		b.WriteString("<i>Пары отсутствуют</i>")
		return b.String()
	}

	lines := make([]string, 0, len(periods))
	for _, period := range periods {
		lines = append(lines, period.Readable())
	}
	b.WriteString(strings.Join(lines, "\n"))

	return b.String()
}

const menuViewGroups = "<b>Выбор группы</b>\n\nВыберите свою учебную группу из списка ниже:"

func menuSettings(user domain.User) string {
	text := fmt.Sprintf("<b>Настройки</b>\n\nUserID: <b>%d</b>", user.ID)
	if user.HasGroup() {
		text += fmt.Sprintf("\nГруппа: <b>%s</b>", user.Group)
	}
	return text
}

func menuAdmin(name string, startedAt time.Time) string {
	return fmt.Sprintf(
		"<b>Меню администратора</b>\n\nДобро пожаловать, %s!\n\nДата запуска: <b>%s UTC</b>",
		name,
		startedAt.UTC().Format("02.01.06 15:04:05"),
	)
}

func menuManageSchedule(groupCount int) string {
	if groupCount == 0 {
		return "<b>Управление расписанием</b>\n\nСтатус расписания: <b>Отсутствует</b>"
	}
	return fmt.Sprintf(
		"<b>Управление расписанием</b>\n\nСтатус расписания: <b>Загружено</b>\nУчебных групп: <b>%d</b>",
		groupCount,
	)
}

func menuUploadSchedule() string {
	return fmt.Sprintf(
		"<b>Загрузка расписания</b>\n\nОтправьте файл с расширением <b>\".%s\"</b>",
		workbookExtension,
	)
}

func menuUploadScheduleError() string {
	return "<b>Возникла ошибка!</b>\n\nНе удалось обработать расписание."
}

func menuUploadScheduleSuccess(groupCount int) string {
	return fmt.Sprintf("<b>Расписание загружено!</b>\n\nУчебных групп: <b>%d</b>", groupCount)
}

const menuViewSubstitutions = "<b>Управление заменами</b>\n\nВыберите нужную дату:"

func menuManageSubstitutions(date time.Time, count int) string {
	if count == 0 {
		return fmt.Sprintf(
			"<b>Управление заменами на %s</b>\n\nСтатус замен: <b>Отсутствуют</b>",
			domain.ReadableDate(date),
		)
	}
	return fmt.Sprintf(
		"<b>Управление заменами на %s</b>\n\nСтатус замен: <b>Загружены</b>\nЗамен: <b>%d</b>",
		domain.ReadableDate(date), count,
	)
}

func menuUploadSubstitutions(date time.Time) string {
	return fmt.Sprintf(
		"<b>Загрузка замен на %s</b>\n\nОтправьте файл с расширением <b>\".%s\"</b>",
		domain.ReadableDate(date), workbookExtension,
	)
}

func menuUploadSubstitutionsError() string {
	return "<b>Возникла ошибка!</b>\n\nНе удалось обработать замены."
}

func menuUploadSubstitutionsSuccess(date time.Time, count int) string {
	return fmt.Sprintf(
		"<b>Замены на %s загружены!</b>\n\nЗамен: <b>%d</b>",
		domain.ReadableDate(date), count,
	)
}

// Notifications

const notificationScheduleUploaded = "Загружено новое расписание!"

func notificationSubstitutionsUploaded(date time.Time) string {
	return fmt.Sprintf("Загружены замены на %s!", domain.ReadableDate(date))
}
