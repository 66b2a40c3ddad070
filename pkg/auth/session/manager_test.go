package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type mockStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string)}
}

func (m *mockStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprint(value)
	return nil
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return val, nil
}

func (m *mockStore) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mockStore) AdminSessionKey(tokenID string) string {
	return fmt.Sprintf("sess:admin:%s", tokenID)
}

func newTestManager(store *mockStore) *Manager {
	return &Manager{
		store: store,
		keyer: store,
		ttl:   time.Hour,
	}
}

func TestManagerStartAndRevoke(t *testing.T) {
	store := newMockStore()
	manager := newTestManager(store)

	ctx := context.Background()
	tokenID := NewTokenID()
	if err := manager.Start(ctx, tokenID, time.Now()); err != nil {
		t.Fatalf("start: %v", err)
	}

	active, err := manager.HasSession(ctx, tokenID)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !active {
		t.Fatalf("expected active session after start")
	}

	if err := manager.Revoke(ctx, tokenID); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	active, err = manager.HasSession(ctx, tokenID)
	if err != nil {
		t.Fatalf("has session after revoke: %v", err)
	}
	if active {
		t.Fatalf("expected session gone after revoke")
	}
}

func TestManagerHasSessionUnknownToken(t *testing.T) {
	manager := newTestManager(newMockStore())

	active, err := manager.HasSession(context.Background(), "never-issued")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if active {
		t.Fatalf("unknown token should have no session")
	}
}

func TestManagerRejectsEmptyTokenID(t *testing.T) {
	manager := newTestManager(newMockStore())
	ctx := context.Background()

	if err := manager.Start(ctx, " ", time.Now()); err == nil {
		t.Fatalf("expected error for blank token id")
	}
	if err := manager.Revoke(ctx, ""); err == nil {
		t.Fatalf("expected error for blank token id")
	}
	if _, err := manager.HasSession(ctx, ""); err == nil {
		t.Fatalf("expected error for blank token id")
	}
}
