package model

import (
	"sync"
	"time"
)

// Role constants for conversation history entries.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single conversation history entry.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PendingItem is an identified item awaiting completion of a composite action
// (e.g. an ingredient found via lookup, waiting for a storage location).
type PendingItem struct {
	ID   string
	Name string
}

// DefaultUnit is the quantity unit used when the user does not specify one.
const DefaultUnit = "pieces"

// SessionState holds all mutable per-conversation state. One instance per
// active conversation; all mutations must hold the embedded mutex so that a
// late reply handler racing a new utterance cannot observe a half-applied
// slot update.
type SessionState struct {
	sync.Mutex

	ID      string
	Context map[string]any
	History []ChatMessage

	// Slot-filling state for the pending composite action.
	PendingItem     *PendingItem
	PendingQuantity int
	PendingLocation string
	PendingUnit     string

	// Continuous conversation state. Invariant: ConversationActive is true
	// iff LastActivityAt is non-zero.
	ConversationActive bool
	LastActivityAt     time.Time
}

// NewSessionState returns a fresh session with slot defaults applied.
func NewSessionState(id string) *SessionState {
	return &SessionState{
		ID:              id,
		Context:         make(map[string]any),
		PendingQuantity: 1,
		PendingUnit:     DefaultUnit,
	}
}

// MergeContext shallow-merges the given context mapping into the session.
func (s *SessionState) MergeContext(ctx map[string]any) {
	s.Lock()
	defer s.Unlock()
	for k, v := range ctx {
		s.Context[k] = v
	}
}

// AppendHistory appends one entry to the conversation history.
func (s *SessionState) AppendHistory(role, content string) {
	s.Lock()
	defer s.Unlock()
	s.History = append(s.History, ChatMessage{Role: role, Content: content})
}

// HistoryTail returns a copy of the last n history entries.
func (s *SessionState) HistoryTail(n int) []ChatMessage {
	s.Lock()
	defer s.Unlock()
	start := len(s.History) - n
	if start < 0 {
		start = 0
	}
	tail := make([]ChatMessage, len(s.History)-start)
	copy(tail, s.History[start:])
	return tail
}
