package domain

import (
	"sync"
	"time"
)

// Chat turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn is a single message in a session's chat history. The history is
// append-only; turns are never edited or removed.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session holds all per-visitor mutable state: chat history, cart, last
// search results and the UI flags the presentation layer reads. Sessions are
// in-memory only and die with the process.
//
// Handlers must hold the session lock for the whole interaction so that each
// user action is one atomic state transition.
type Session struct {
	mu sync.Mutex

	ID                 string     `json:"id"`
	CustomerName       string     `json:"customer_name,omitempty"`
	History            []ChatTurn `json:"history"`
	Cart               []CartLine `json:"cart"`
	LastResults        []Product  `json:"-"`
	ViewingProductID   int        `json:"viewing_product_id,omitempty"`
	ShowResultActions  bool       `json:"show_result_actions"`
	RedirectToCheckout bool       `json:"redirect_to_checkout"`
	CreatedAt          time.Time  `json:"created_at"`
	LastSeen           time.Time  `json:"-"`
}

// Lock acquires the session's interaction lock.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session's interaction lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// AppendTurn appends a chat turn to the session history.
func (s *Session) AppendTurn(role, content string) {
	s.History = append(s.History, ChatTurn{Role: role, Content: content})
}
