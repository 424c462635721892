package auth

import (
	"context"
	"sync"
)

// MemoryRepository is an in-process Repository. It holds no durability
// across restarts; intended for tests and single-shot tooling.
type MemoryRepository struct {
	mu    sync.RWMutex
	token string
	user  *User
}

// NewMemoryRepository creates an empty in-memory session store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// ReadToken returns the stored token, or "" when none is held.
func (r *MemoryRepository) ReadToken(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.token, nil
}

// ReadUser returns a copy of the stored user, or nil when none is held.
func (r *MemoryRepository) ReadUser(_ context.Context) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.user == nil {
		return nil, nil
	}
	u := *r.user
	return &u, nil
}

// Write stores token and user together.
func (r *MemoryRepository) Write(_ context.Context, token string, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = token
	r.user = &user
	return nil
}

// Clear removes token and user together.
func (r *MemoryRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = ""
	r.user = nil
	return nil
}
