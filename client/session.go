package client

import (
	"strings"
	"time"

	"github.com/spattnaik1998/Augmenting-Wolfram/models"
)

// Message is one turn of the local conversation. Messages are immutable once
// created and ids are sequential within a session.
type Message struct {
	ID             int
	Role           string // models.RoleUser or models.RoleBot
	Content        string
	Timestamp      time.Time
	UsedWolfram    bool
	IsError        bool
	ProcessingTime float64
}

// Backend is the slice of the API client the session depends on.
type Backend interface {
	CheckHealth() bool
	SendChat(message string, history []models.ChatMessage) (models.ChatResponse, error)
}

// Session holds the conversation of a single chat session in memory. The
// history is append-only: messages are never mutated, reordered or removed.
// Connectivity is checked once at construction; Refresh re-checks on demand.
type Session struct {
	backend   Backend
	messages  []Message
	nextID    int
	connected bool
	inFlight  bool
}

// NewSession creates a session and performs the startup connectivity check.
func NewSession(backend Backend) *Session {
	s := &Session{
		backend: backend,
		nextID:  1,
	}
	s.connected = backend.CheckHealth()
	return s
}

// Connected reports the last known connectivity status.
func (s *Session) Connected() bool {
	return s.connected
}

// Refresh re-checks backend connectivity and returns the new status.
func (s *Session) Refresh() bool {
	s.connected = s.backend.CheckHealth()
	return s.connected
}

// Messages returns a copy of the conversation so far.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Submit sends one user message through the backend and returns whether a
// submission happened. It is a no-op when the input is blank, a request is
// already in flight, or the backend is disconnected. Otherwise exactly one
// user message and one bot message are appended, in that order; on failure
// the bot message carries the error text and IsError=true.
func (s *Session) Submit(input string) bool {
	if strings.TrimSpace(input) == "" || s.inFlight || !s.connected {
		return false
	}

	// History snapshot excludes the message being sent; it travels in the
	// request's message field.
	history := s.history()
	s.append(Message{
		Role:      models.RoleUser,
		Content:   input,
		Timestamp: time.Now(),
	})

	s.inFlight = true
	defer func() { s.inFlight = false }()

	resp, err := s.backend.SendChat(input, history)
	if err != nil {
		s.append(Message{
			Role:      models.RoleBot,
			Content:   err.Error(),
			Timestamp: time.Now(),
			IsError:   true,
		})
		return true
	}

	timestamp, parseErr := time.Parse(time.RFC3339, resp.Timestamp)
	if parseErr != nil {
		timestamp = time.Now()
	}
	s.append(Message{
		Role:           models.RoleBot,
		Content:        resp.Content,
		Timestamp:      timestamp,
		UsedWolfram:    resp.UsedWolfram,
		ProcessingTime: resp.ProcessingTime,
	})
	return true
}

func (s *Session) history() []models.ChatMessage {
	out := make([]models.ChatMessage, 0, len(s.messages))
	for _, msg := range s.messages {
		out = append(out, models.ChatMessage{
			ID:          msg.ID,
			Type:        msg.Role,
			Content:     msg.Content,
			Timestamp:   msg.Timestamp.Format(time.RFC3339),
			UsedWolfram: msg.UsedWolfram,
		})
	}
	return out
}

func (s *Session) append(msg Message) {
	msg.ID = s.nextID
	s.nextID++
	s.messages = append(s.messages, msg)
}
