// Package flash is a small session-backed notification queue. Handlers push
// messages after an action; the next rendered page pops and displays them
// all, so feedback never blocks navigation.
package flash

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const cookieName = "helpbridge-flash"

// Level determines how a message is styled when rendered.
type Level string

const (
	Success Level = "success"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Message is one queued notification.
type Message struct {
	Level Level
	Text  string
}

func init() {
	gob.Register(Message{})
}

// Queue stores pending messages in their own short-lived cookie session so
// flash writes never race with auth session writes.
type Queue struct {
	store *sessions.CookieStore
	log   *zap.Logger
}

// NewQueue builds the flash store. It shares the session key with the auth
// cookie but uses a separate cookie name.
func NewQueue(sessionKey string, secure bool, logger *zap.Logger) *Queue {
	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   300, // queued messages expire if never rendered
	}
	return &Queue{store: store, log: logger}
}

// Push queues a message for the next rendered page.
func (q *Queue) Push(w http.ResponseWriter, r *http.Request, level Level, text string) {
	s, _ := q.store.Get(r, cookieName)
	s.AddFlash(Message{Level: level, Text: text})
	if err := s.Save(r, w); err != nil {
		q.log.Warn("failed to queue flash message", zap.Error(err))
	}
}

// Pop drains and returns all queued messages, clearing the cookie.
func (q *Queue) Pop(w http.ResponseWriter, r *http.Request) []Message {
	s, _ := q.store.Get(r, cookieName)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := s.Save(r, w); err != nil {
		q.log.Warn("failed to clear flash messages", zap.Error(err))
	}
	msgs := make([]Message, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(Message); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
