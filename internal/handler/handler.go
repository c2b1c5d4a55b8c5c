package handler

import (
	"io"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"kollegebot/internal/domain"
	"kollegebot/internal/service"
)

// FileSource downloads an attached file, satisfied by *tele.Bot
type FileSource interface {
	File(file *tele.File) (io.ReadCloser, error)
}

// Handler is the interaction dispatch engine: it routes inbound events to
// handlers, enforces the admin set, drives per-user upload state and
// produces the outbound screens.
type Handler struct {
	bot      *tele.Bot
	files    FileSource
	auth     *service.AuthService
	users    *service.UserService
	content  *service.ContentService
	notifier *service.Notifier
	logger   *zap.Logger

	// logFile is the path served by export_logs, empty = disabled
	logFile   string
	startedAt time.Time

	sessions *sessionStore
	routes   map[domain.Verb]routeSpec

	// One event per sender at a time. The map keeps one mutex per sender
	// seen during the process lifetime and is never pruned: entries cannot
	// be removed safely while another goroutine may be blocked on them,
	// and the cost is a few dozen bytes per distinct user.
	lockMux sync.Mutex
	locks   map[int64]*sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	auth *service.AuthService,
	users *service.UserService,
	content *service.ContentService,
	notifier *service.Notifier,
	logger *zap.Logger,
	logFile string,
) *Handler {
	h := &Handler{
		bot:       bot,
		auth:      auth,
		users:     users,
		content:   content,
		notifier:  notifier,
		logger:    logger,
		logFile:   logFile,
		startedAt: time.Now(),
		sessions:  newSessionStore(),
		locks:     make(map[int64]*sync.Mutex),
	}
	if bot != nil {
		h.files = bot
	}
	h.routes = h.buildRoutes()
	return h
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/admin", h.handleAdmin)

	h.bot.Handle(tele.OnCallback, h.handleCallback)

	h.bot.Handle(tele.OnText, h.handleContent)
	h.bot.Handle(tele.OnDocument, h.handleContent)
}

// routeSpec describes one dispatchable verb: its expected argument count
// (exact, or a minimum for variadic routes) and admin requirement.
type routeSpec struct {
	argc      int
	variadic  bool
	adminOnly bool
	handle    func(c tele.Context, args []string) error
}

func (s routeSpec) arityOK(n int) bool {
	if s.variadic {
		return n >= s.argc
	}
	return n == s.argc
}

func (h *Handler) buildRoutes() map[domain.Verb]routeSpec {
	return map[domain.Verb]routeSpec{
		domain.VerbStart:          {handle: h.startScreen},
		domain.VerbViewSchedules:  {handle: h.viewSchedulesScreen},
		domain.VerbSchedule:       {argc: 1, handle: h.scheduleScreen},
		domain.VerbViewGroups:     {argc: 1, handle: h.viewGroupsScreen},
		domain.VerbGroup:          {argc: 1, variadic: true, handle: h.selectGroup},
		domain.VerbSettings:       {handle: h.settingsScreen},
		domain.VerbSettingsSwitch: {argc: 1, handle: h.settingsSwitch},

		domain.VerbAdmin:               {adminOnly: true, handle: h.adminScreen},
		domain.VerbManageSchedule:      {adminOnly: true, handle: h.manageScheduleScreen},
		domain.VerbUploadSchedule:      {adminOnly: true, handle: h.uploadSchedule},
		domain.VerbDeleteSchedule:      {adminOnly: true, handle: h.deleteSchedule},
		domain.VerbViewSubstitutions:   {adminOnly: true, handle: h.viewSubstitutionsScreen},
		domain.VerbManageSubstitutions: {argc: 1, adminOnly: true, handle: h.manageSubstitutionsScreen},
		domain.VerbUploadSubstitutions: {argc: 1, adminOnly: true, handle: h.uploadSubstitutions},
		domain.VerbDeleteSubstitutions: {argc: 1, adminOnly: true, handle: h.deleteSubstitutions},
		domain.VerbExportLogs:          {adminOnly: true, handle: h.exportLogs},

		// Disabled pagination buttons land here; the deferred
		// acknowledgement is the whole effect
		domain.VerbAnswerCallback: {handle: func(tele.Context, []string) error { return nil }},
	}
}

// lockSender serializes event handling per sender
func (h *Handler) lockSender(userID int64) func() {
	h.lockMux.Lock()
	lock, ok := h.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		h.locks[userID] = lock
	}
	h.lockMux.Unlock()

	lock.Lock()
	return lock.Unlock
}

// acknowledge closes the pending callback spinner. Runs on every callback
// path; a second answer to an already-answered query is harmless noise.
func (h *Handler) acknowledge(c tele.Context) {
	if c.Callback() == nil {
		return
	}
	if err := c.Respond(); err != nil && !service.IsUnreachable(err) {
		h.logger.Debug("callback acknowledgement failed", zap.Error(err))
	}
}

// editScreen edits the originating screen in place for navigation events
// and sends a new message for command-style events
func (h *Handler) editScreen(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		// Already showing this screen, nothing to redraw
		if strings.Contains(err.Error(), "message is not modified") {
			return nil
		}
		h.logger.Warn("failed to edit message, sending new",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		return c.Send(text, markup)
	}
	return nil
}

// respondAlert shows a popup alert on the originating screen
func (h *Handler) respondAlert(c tele.Context, text string) error {
	return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
}

// respondToast shows a transient confirmation without a screen change
func (h *Handler) respondToast(c tele.Context, text string) error {
	return c.Respond(&tele.CallbackResponse{Text: text})
}
