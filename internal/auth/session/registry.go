package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session maps an opaque token to the user it was issued for.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}

// Registry is the process-wide session store. A session is valid while
// now - CreatedAt < ttl; expiry is detected lazily on lookup and an optional
// background sweeper bounds memory growth under login churn. All operations
// hold one mutex so a revoke can never race a lookup into reporting a stale
// session as valid.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration

	now func() time.Time // overridable in tests
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create issues a fresh opaque token for the user. Tokens are the natural
// key; a colliding uuid would overwrite, which is not guarded.
func (r *Registry) Create(userID string) string {
	token := uuid.New().String()

	r.mu.Lock()
	r.sessions[token] = Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: r.now(),
	}
	r.mu.Unlock()

	return token
}

// Lookup returns the session for the token, or nil when the token is unknown
// or its TTL has elapsed. Expired entries are not deleted here.
func (r *Registry) Lookup(token string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok {
		return nil
	}
	if r.now().Sub(s.CreatedAt) >= r.ttl {
		return nil
	}
	return &s
}

// Revoke removes the token immediately. Missing tokens are not an error.
func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}

// Sweep removes all expired sessions and reports how many were dropped.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for token, s := range r.sessions {
		if now.Sub(s.CreatedAt) >= r.ttl {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed
}

// Len reports the current number of stored sessions, expired or not.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// StartSweeper runs Sweep every interval until stop is closed.
func (r *Registry) StartSweeper(interval time.Duration, stop <-chan struct{}, logger *zap.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if removed := r.Sweep(); removed > 0 {
					logger.Info("swept expired sessions", zap.Int("removed", removed))
				}
			case <-stop:
				return
			}
		}
	}()
}
