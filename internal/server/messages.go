package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/tartampluch/go-dialog-calendar/internal/config"
	"github.com/tartampluch/go-dialog-calendar/internal/engine"
	"github.com/tartampluch/go-dialog-calendar/internal/feed"
)

// message is one chat message carrying a widget. mu serializes taps on it,
// so a slow edit can never overwrite a newer grid.
type message struct {
	mu        sync.Mutex
	ref       engine.MessageRef
	markup    *engine.Markup // nil once the grid was removed
	selected  bool
	date      time.Time
	cacheTime int // last acknowledgement hint, 0 if the last tap was not answered
}

// messageTransport applies engine side effects to a single message.
// The caller must hold msg.mu. The acknowledgement hint is kept aside and
// only stored on the message once the tap succeeded.
type messageTransport struct {
	msg       *message
	cacheTime int
}

func (t *messageTransport) check(ref engine.MessageRef) error {
	if ref != t.msg.ref {
		return fmt.Errorf("%s: %d", config.ErrMessageNotFound, ref.MessageID)
	}
	if t.msg.markup == nil {
		return errors.New(config.ErrMessageResolved)
	}
	return nil
}

func (t *messageTransport) EditReplyMarkup(_ context.Context, ref engine.MessageRef, markup engine.Markup) error {
	if err := t.check(ref); err != nil {
		return err
	}
	t.msg.markup = &markup
	return nil
}

func (t *messageTransport) DeleteReplyMarkup(_ context.Context, ref engine.MessageRef) error {
	if err := t.check(ref); err != nil {
		return err
	}
	t.msg.markup = nil
	return nil
}

func (t *messageTransport) AnswerCallback(_ context.Context, _ string, cacheSeconds int) error {
	t.cacheTime = cacheSeconds
	return nil
}

// -----------------------------------------------------------------------------
// Wire types
// -----------------------------------------------------------------------------

type createRequest struct {
	ChatID int64  `json:"chat_id"`
	View   string `json:"view,omitempty"`
}

type callbackRequest struct {
	QueryID   string `json:"query_id"`
	MessageID int    `json:"message_id"`
	Data      string `json:"data"`
}

type messageState struct {
	ChatID      int64          `json:"chat_id"`
	MessageID   int            `json:"message_id"`
	ReplyMarkup *engine.Markup `json:"reply_markup,omitempty"`
	Selected    bool           `json:"selected"`
	Date        string         `json:"date,omitempty"`
	CacheTime   int            `json:"cache_time,omitempty"`
}

// state snapshots msg. The caller must hold msg.mu.
func (m *message) state() messageState {
	st := messageState{
		ChatID:      m.ref.ChatID,
		MessageID:   m.ref.MessageID,
		ReplyMarkup: m.markup,
		CacheTime:   m.cacheTime,
	}
	if m.selected {
		st.Selected = true
		st.Date = m.date.Format(config.DateFormatDisplay)
	}
	return st
}

// -----------------------------------------------------------------------------
// Handlers
// -----------------------------------------------------------------------------

// handleCreateMessage posts a new message showing the initial grid.
func (s *ChatServer) handleCreateMessage(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(w, r, &req); err != nil {
		http.Error(w, config.ErrBadRequest, http.StatusBadRequest)
		return
	}

	view, err := engine.ParseView(req.View)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	markup := s.Calendar.Open(view)

	s.mu.Lock()
	s.lastID++
	msg := &message{
		ref:    engine.MessageRef{ChatID: req.ChatID, MessageID: s.lastID},
		markup: &markup,
	}
	s.messages[msg.ref.MessageID] = msg
	s.mu.Unlock()

	slog.Info(config.MsgWidgetCreated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyChat, msg.ref.ChatID,
		config.LogKeyMessage, msg.ref.MessageID,
		config.LogKeyView, req.View,
	)

	msg.mu.Lock()
	st := msg.state()
	msg.mu.Unlock()
	writeJSON(w, http.StatusCreated, st)
}

// handleGetMessage returns the current state of a message.
func (s *ChatServer) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue(config.PathParamID))
	if err != nil {
		http.Error(w, config.ErrMessageNotFound, http.StatusNotFound)
		return
	}
	msg := s.lookup(id)
	if msg == nil {
		http.Error(w, config.ErrMessageNotFound, http.StatusNotFound)
		return
	}

	msg.mu.Lock()
	st := msg.state()
	msg.mu.Unlock()
	writeJSON(w, http.StatusOK, st)
}

// handleCallback routes one tap to the calendar.
func (s *ChatServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	var req callbackRequest
	if err := decodeBody(w, r, &req); err != nil {
		http.Error(w, config.ErrBadRequest, http.StatusBadRequest)
		return
	}

	log := slog.With(
		config.LogKeyComponent, config.CompServer,
		config.LogKeyMessage, req.MessageID,
		config.LogKeyQuery, req.QueryID,
	)

	msg := s.lookup(req.MessageID)
	if msg == nil {
		http.Error(w, config.ErrMessageNotFound, http.StatusNotFound)
		return
	}

	// Decode failures drop the tap; the widget stays as it was.
	data, err := engine.Unpack(req.Data)
	if err != nil {
		log.Warn(config.MsgPayloadRejects, config.LogKeyError, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg.mu.Lock()
	defer msg.mu.Unlock()

	if msg.markup == nil {
		http.Error(w, config.ErrMessageResolved, http.StatusConflict)
		return
	}
	query := engine.Query{ID: req.QueryID, Message: msg.ref}
	tr := &messageTransport{msg: msg}
	sel, err := s.Calendar.ProcessSelection(r.Context(), tr, query, data)
	switch {
	case errors.Is(err, engine.ErrInvalidDate):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case errors.Is(err, engine.ErrUnknownAction):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Error(config.HTTPMsgInternalErr, config.LogKeyError, err)
		http.Error(w, config.HTTPMsgInternalErr, http.StatusInternalServerError)
		return
	}

	msg.cacheTime = tr.cacheTime
	if sel.Selected {
		msg.selected = true
		msg.date = sel.Date
		entry := feed.Entry{ChatID: msg.ref.ChatID, MessageID: msg.ref.MessageID, Date: sel.Date}
		if err := s.recordSelection(entry); err != nil {
			log.Error(config.ErrICalEncode, config.LogKeyError, err)
		}
	}

	writeJSON(w, http.StatusOK, msg.state())
}

func (s *ChatServer) lookup(id int) *message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.messages[id]
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxRequestBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}
