package session

import (
	"testing"
	"time"

	"techmart/internal/domain"

	"go.uber.org/zap"
)

func TestCreateAndGet(t *testing.T) {
	store := NewStore(time.Hour, zap.NewNop())

	sess := store.Create()
	if sess.ID == "" {
		t.Fatal("expected non-empty session id")
	}

	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != sess {
		t.Error("Get returned a different session")
	}
}

func TestGetUnknownID(t *testing.T) {
	store := NewStore(time.Hour, zap.NewNop())

	if _, err := store.Get("nope"); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestGetOrCreate(t *testing.T) {
	store := NewStore(time.Hour, zap.NewNop())

	first := store.GetOrCreate("")
	same := store.GetOrCreate(first.ID)
	other := store.GetOrCreate("expired-or-foreign-id")

	if same != first {
		t.Error("expected the same session back for a known id")
	}
	if other == first {
		t.Error("unknown id must yield a fresh session")
	}
	if store.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", store.Len())
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	store := NewStore(time.Hour, zap.NewNop())

	a := store.Create()
	b := store.Create()

	a.Lock()
	a.CustomerName = "Ada"
	a.Cart = append(a.Cart, domain.CartLine{ProductID: 1, Quantity: 1, Price: 100})
	a.Unlock()

	if b.CustomerName != "" || len(b.Cart) != 0 {
		t.Error("mutating one session leaked into another")
	}
}

func TestSweepExpiresIdleSessions(t *testing.T) {
	store := NewStore(10*time.Millisecond, zap.NewNop())

	stale := store.Create()
	stale.Lock()
	stale.LastSeen = time.Now().Add(-time.Minute)
	stale.Unlock()

	fresh := store.Create()

	store.sweep()

	if _, err := store.Get(stale.ID); err != ErrSessionNotFound {
		t.Error("idle session should have been expired")
	}
	if _, err := store.Get(fresh.ID); err != nil {
		t.Errorf("fresh session should survive the sweep: %v", err)
	}
}

func TestDeleteUnknownIsNoOp(t *testing.T) {
	store := NewStore(time.Hour, zap.NewNop())
	store.Delete("nope")

	if store.Len() != 0 {
		t.Errorf("unexpected sessions: %d", store.Len())
	}
}
