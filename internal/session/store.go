// Package session provides the in-memory per-visitor session store. Each
// visitor gets exactly one Session, reachable only through its id, which is
// how session isolation is enforced when several visitors are served at
// once. Nothing here survives a process restart.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"techmart/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

// Store holds all live sessions keyed by id.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	ttl      time.Duration
	logger   *zap.Logger
}

// NewStore creates a session store. Sessions idle longer than ttl are
// removed by the sweeper.
func NewStore(ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
		logger:   logger,
	}
}

// Create registers a fresh session with a new id.
func (s *Store) Create() *domain.Session {
	now := time.Now()
	sess := &domain.Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		LastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Debug("Session created", zap.String("session_id", sess.ID))
	return sess
}

// Get returns the session with the given id, refreshing its idle timer.
func (s *Store) Get(id string) (*domain.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.Lock()
	sess.LastSeen = time.Now()
	sess.Unlock()
	return sess, nil
}

// GetOrCreate returns the session with the given id, or a fresh one if the
// id is empty or no longer known (expired, or from a previous process).
func (s *Store) GetOrCreate(id string) *domain.Session {
	if id != "" {
		if sess, err := s.Get(id); err == nil {
			return sess
		}
	}
	return s.Create()
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartSweeper periodically drops sessions idle past the TTL until ctx is
// cancelled.
func (s *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *Store) sweep() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	var expired []string
	for id, sess := range s.sessions {
		sess.Lock()
		idle := sess.LastSeen.Before(cutoff)
		sess.Unlock()
		if idle {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if len(expired) > 0 {
		s.logger.Info("Expired idle sessions", zap.Int("count", len(expired)))
	}
}
