// Package chat runs the support chat widget: the per-visitor session state
// machine and the assistant that produces streamed replies.
package chat

import (
	"fmt"
	"strings"
)

// Sender distinguishes visitor and assistant messages.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message is one chat bubble.
type Message struct {
	ID     int64
	Text   string
	Sender Sender
	// Err marks an apology bubble after a failed reply.
	Err bool
}

// Phase is the widget state.
type Phase int

const (
	// PhaseClosed hides the widget; history is kept.
	PhaseClosed Phase = iota
	// PhaseOpenIdle shows the widget and accepts input.
	PhaseOpenIdle
	// PhaseOpenWaiting shows the widget while a reply is streaming in.
	PhaseOpenWaiting
)

// Session is one visitor's chat state.
type Session struct {
	Phase    Phase
	Messages []Message
	// Available is false when the assistant could not be configured.
	Available bool

	nextID int64
}

// NewSession returns a closed session with the greeting queued.
func NewSession(available bool) *Session {
	s := &Session{Phase: PhaseClosed, Available: available}
	if available {
		s.append(Message{Text: "Hello! How can I help you with your event or production needs today?", Sender: SenderAI})
	} else {
		s.append(Message{Text: "Sorry, the chat service is currently unavailable.", Sender: SenderAI, Err: true})
	}
	return s
}

func (s *Session) append(msg Message) *Message {
	s.nextID++
	msg.ID = s.nextID
	s.Messages = append(s.Messages, msg)
	return &s.Messages[len(s.Messages)-1]
}

// View is a render copy of a session. The live Session is only touched
// under its owner's lock; templates read the detached copy.
type View struct {
	Phase     Phase
	Messages  []Message
	Available bool
}

// Open reports whether the widget is visible.
func (v View) Open() bool {
	return v.Phase != PhaseClosed
}

// Snapshot copies the session for rendering. Call it under the same lock
// that guards the session's mutations.
func (s *Session) Snapshot() View {
	return View{
		Phase:     s.Phase,
		Messages:  append([]Message(nil), s.Messages...),
		Available: s.Available,
	}
}

// Toggle opens a closed widget and closes an open one. History survives.
func (s *Session) Toggle() {
	if s.Phase == PhaseClosed {
		s.Phase = PhaseOpenIdle
		return
	}
	s.Phase = PhaseClosed
}

// Open reports whether the widget is visible.
func (s *Session) Open() bool {
	return s.Phase != PhaseClosed
}

// Send records the visitor's message and an empty assistant placeholder,
// moving the session to the waiting phase. It fails while a reply is in
// flight, when the widget is closed, or when the assistant is unavailable.
func (s *Session) Send(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("message is empty")
	}
	if s.Phase == PhaseClosed {
		return fmt.Errorf("chat is closed")
	}
	if s.Phase == PhaseOpenWaiting {
		return fmt.Errorf("reply already in flight")
	}
	if !s.Available {
		return fmt.Errorf("chat service is unavailable")
	}

	s.append(Message{Text: text, Sender: SenderUser})
	s.append(Message{Sender: SenderAI})
	s.Phase = PhaseOpenWaiting
	return nil
}

// ApplyChunk appends streamed text to the pending assistant message.
func (s *Session) ApplyChunk(chunk string) {
	if s.Phase != PhaseOpenWaiting || len(s.Messages) == 0 {
		return
	}
	last := &s.Messages[len(s.Messages)-1]
	if last.Sender != SenderAI {
		return
	}
	last.Text += chunk
}

// Complete marks the streamed reply as finished.
func (s *Session) Complete() {
	if s.Phase == PhaseOpenWaiting {
		s.Phase = PhaseOpenIdle
	}
}

// Fail replaces the pending assistant message with an apology.
func (s *Session) Fail() {
	if s.Phase != PhaseOpenWaiting || len(s.Messages) == 0 {
		return
	}
	last := &s.Messages[len(s.Messages)-1]
	if last.Sender == SenderAI {
		last.Text = "I'm sorry, I encountered an error. Please try again."
		last.Err = true
	}
	s.Phase = PhaseOpenIdle
}

// History returns the completed exchange for the assistant prompt,
// excluding the pending placeholder and error bubbles.
func (s *Session) History() []Message {
	history := make([]Message, 0, len(s.Messages))
	for i, msg := range s.Messages {
		if msg.Err {
			continue
		}
		if i == len(s.Messages)-1 && msg.Sender == SenderAI && msg.Text == "" {
			continue
		}
		history = append(history, msg)
	}
	return history
}
