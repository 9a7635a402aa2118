package site

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/chat"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/session"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/state"
)

// chatWidget re-renders the widget in its current state, used by the
// client to refresh the message list after a streamed reply.
func (h Handler) chatWidget(w http.ResponseWriter, r *http.Request) {
	data, _ := h.baseData(w, r, navFromReferer(r))
	h.rd.renderPartial(w, "home", "chat_widget", data)
}

func (h Handler) chatToggle(w http.ResponseWriter, r *http.Request) {
	visitor := h.sessions.Ensure(w, r)

	data, _ := h.baseData(w, r, navFromReferer(r))
	visitor.WithLock(func(s *session.State) {
		s.Chat.Toggle()
		data.Chat = s.Chat.Snapshot()
	})

	h.rd.renderPartial(w, "home", "chat_widget", data)
}

// chatSend accepts the visitor's message and streams the assistant reply
// as server-sent events while mirroring each chunk into the session.
func (h Handler) chatSend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	message := r.PostFormValue("message")

	visitor := h.sessions.Ensure(w, r)

	var (
		sendErr error
		history []chat.Message
	)
	visitor.WithLock(func(s *session.State) {
		sendErr = s.Chat.Send(message)
		if sendErr == nil {
			history = s.Chat.History()
		}
	})
	if sendErr != nil {
		http.Error(w, sendErr.Error(), http.StatusConflict)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok || h.assistant == nil {
		// No streaming support; fall back to a buffered reply.
		h.replyBuffered(w, r, visitor, history)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	ctx, cancel := context.WithTimeout(r.Context(), h.replyTimeout)
	defer cancel()

	err := h.assistant.Reply(ctx, history, func(text string) {
		visitor.WithLock(func(s *session.State) {
			s.Chat.ApplyChunk(text)
		})
		writeSSE(w, "message", text)
		flusher.Flush()
	})
	if err != nil {
		h.logger.Warn("chat reply failed", zap.Error(err))
		visitor.WithLock(func(s *session.State) {
			s.Chat.Fail()
		})
		writeSSE(w, "error", "I'm sorry, I encountered an error. Please try again.")
		flusher.Flush()
		return
	}

	visitor.WithLock(func(s *session.State) {
		s.Chat.Complete()
	})
	writeSSE(w, "done", "")
	flusher.Flush()
}

func (h Handler) replyBuffered(w http.ResponseWriter, r *http.Request, visitor *session.State, history []chat.Message) {
	if h.assistant == nil {
		visitor.WithLock(func(s *session.State) {
			s.Chat.Fail()
		})
		http.Error(w, "chat service is unavailable", http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.replyTimeout)
	defer cancel()

	err := h.assistant.Reply(ctx, history, func(text string) {
		visitor.WithLock(func(s *session.State) {
			s.Chat.ApplyChunk(text)
		})
	})
	visitor.WithLock(func(s *session.State) {
		if err != nil {
			s.Chat.Fail()
		} else {
			s.Chat.Complete()
		}
	})

	data, _ := h.baseData(w, r, navFromReferer(r))
	h.rd.renderPartial(w, "home", "chat_widget", data)
}

// writeSSE emits one server-sent event with a JSON payload.
func writeSSE(w http.ResponseWriter, event, text string) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
}

// navFromReferer recovers the page the widget sits on, so the partial can
// render with the right navigation highlighted.
func navFromReferer(r *http.Request) state.Navigation {
	if nav, ok := state.FromPathOrURL(r.Header.Get("HX-Current-URL")); ok {
		return nav
	}
	if nav, ok := state.FromPathOrURL(r.Referer()); ok {
		return nav
	}
	return state.Home()
}
