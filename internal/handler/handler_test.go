package handler

import (
	"bytes"
	"io"

	tele "gopkg.in/telebot.v3"

	"kollegebot/internal/service"
	"kollegebot/internal/testutil"
)

const (
	testAdminID = int64(1)
	testUserID  = int64(100)
)

// fixture wires a handler to mocks; no live bot is involved
type fixture struct {
	handler *Handler

	userRepo    *testutil.MockUserRepository
	contentRepo *testutil.MockContentRepository
	parser      *testutil.MockParser
	sender      *testutil.FakeSender
	files       *fakeFileSource
}

func newFixture(logFile string) *fixture {
	userRepo := new(testutil.MockUserRepository)
	contentRepo := new(testutil.MockContentRepository)
	mockParser := new(testutil.MockParser)
	sender := &testutil.FakeSender{}
	files := &fakeFileSource{}

	logger := testutil.NewTestLogger()
	auth := service.NewAuthService([]int64{testAdminID})
	users := service.NewUserService(userRepo)
	content := service.NewContentService(contentRepo, mockParser)
	notifier := service.NewNotifier(sender, userRepo, auth, logger, 4, 1000)

	h := NewHandler(nil, auth, users, content, notifier, logger, logFile)
	h.files = files

	return &fixture{
		handler:     h,
		userRepo:    userRepo,
		contentRepo: contentRepo,
		parser:      mockParser,
		sender:      sender,
		files:       files,
	}
}

// fakeFileSource serves a fixed payload instead of downloading
type fakeFileSource struct {
	Payload []byte
	Err     error
}

func (f *fakeFileSource) File(_ *tele.File) (io.ReadCloser, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return io.NopCloser(bytes.NewReader(f.Payload)), nil
}

func testDocument() *tele.Document {
	return &tele.Document{File: tele.File{FileID: "file-1"}, FileName: "schedule.xlsx"}
}
