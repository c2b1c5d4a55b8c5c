package testutil

import (
	"strconv"
	"sync"

	tele "gopkg.in/telebot.v3"
)

// FakeContext implements the handler-facing subset of tele.Context and
// records outbound calls. Methods the handlers never touch fall through to
// the embedded nil interface and would panic, keeping the subset honest.
type FakeContext struct {
	tele.Context

	User *tele.User
	Cb   *tele.Callback
	Msg  *tele.Message

	SentMessages   []interface{}
	EditedMessages []interface{}
	Markups        []*tele.ReplyMarkup
	Responses      []*tele.CallbackResponse

	SendErr    error
	EditErr    error
	RespondErr error
}

// NewCallbackContext builds a context for a navigation (callback) event
func NewCallbackContext(userID int64, data string) *FakeContext {
	user := &tele.User{ID: userID}
	return &FakeContext{
		User: user,
		Cb: &tele.Callback{
			ID:      "cb-" + strconv.FormatInt(userID, 10),
			Sender:  user,
			Data:    data,
			Message: &tele.Message{Chat: &tele.Chat{ID: userID}},
		},
	}
}

// NewMessageContext builds a context for a content (message) event,
// optionally carrying an attached document
func NewMessageContext(userID int64, text string, document *tele.Document) *FakeContext {
	user := &tele.User{ID: userID}
	return &FakeContext{
		User: user,
		Msg: &tele.Message{
			Sender:   user,
			Chat:     &tele.Chat{ID: userID},
			Text:     text,
			Document: document,
		},
	}
}

func (f *FakeContext) Sender() *tele.User {
	return f.User
}

func (f *FakeContext) Callback() *tele.Callback {
	return f.Cb
}

func (f *FakeContext) Message() *tele.Message {
	return f.Msg
}

func (f *FakeContext) Text() string {
	if f.Msg == nil {
		return ""
	}
	return f.Msg.Text
}

func (f *FakeContext) Send(what interface{}, opts ...interface{}) error {
	if f.SendErr != nil {
		return f.SendErr
	}
	f.SentMessages = append(f.SentMessages, what)
	f.recordMarkup(opts)
	return nil
}

func (f *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if f.EditErr != nil {
		return f.EditErr
	}
	f.EditedMessages = append(f.EditedMessages, what)
	f.recordMarkup(opts)
	return nil
}

func (f *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if f.RespondErr != nil {
		return f.RespondErr
	}
	if len(resp) == 0 {
		f.Responses = append(f.Responses, &tele.CallbackResponse{})
	} else {
		f.Responses = append(f.Responses, resp...)
	}
	return nil
}

func (f *FakeContext) recordMarkup(opts []interface{}) {
	for _, opt := range opts {
		if markup, ok := opt.(*tele.ReplyMarkup); ok {
			f.Markups = append(f.Markups, markup)
		}
	}
}

// LastText returns the text of the last sent or edited message
func (f *FakeContext) LastText() string {
	if n := len(f.EditedMessages); n > 0 {
		if s, ok := f.EditedMessages[n-1].(string); ok {
			return s
		}
	}
	if n := len(f.SentMessages); n > 0 {
		if s, ok := f.SentMessages[n-1].(string); ok {
			return s
		}
	}
	return ""
}

// LastMarkup returns the most recently attached keyboard, nil when none
func (f *FakeContext) LastMarkup() *tele.ReplyMarkup {
	if n := len(f.Markups); n > 0 {
		return f.Markups[n-1]
	}
	return nil
}

// LastAlert returns the last callback response carrying alert text
func (f *FakeContext) LastAlert() *tele.CallbackResponse {
	for i := len(f.Responses) - 1; i >= 0; i-- {
		if f.Responses[i].Text != "" {
			return f.Responses[i]
		}
	}
	return nil
}

// FakeSender records broadcast deliveries and fails the ids listed in Errs
type FakeSender struct {
	mu   sync.Mutex
	sent []int64

	Errs map[int64]error
}

func (s *FakeSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	id, err := strconv.ParseInt(to.Recipient(), 10, 64)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sendErr, ok := s.Errs[id]; ok {
		return nil, sendErr
	}

	s.sent = append(s.sent, id)
	return &tele.Message{}, nil
}

// Sent returns the recipient ids of successful deliveries
func (s *FakeSender) Sent() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.sent...)
}
