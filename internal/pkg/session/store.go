// Package session implements the in-memory session store backing the
// student and admin authentication guards. Sessions are process-local and
// intentionally non-durable: a restart invalidates every issued token.
package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsj/linkup/internal/pkg/apperrors"
)

// PrincipalKind distinguishes the two disjoint session namespaces.
type PrincipalKind string

const (
	KindStudent PrincipalKind = "student"
	KindAdmin   PrincipalKind = "admin"
)

// DefaultTTL is the session lifetime measured from issuance.
const DefaultTTL = 24 * time.Hour

// Principal is the identity snapshot captured at login time.
// StudentNumber is set for student sessions, AdminID for admin sessions.
type Principal struct {
	Kind          PrincipalKind
	StudentNumber string
	AdminID       int64
	Email         string
	Name          string
	Surname       string
}

type entry struct {
	principal Principal
	expiresAt time.Time
}

// Store holds active sessions for both principal kinds. It is safe for
// concurrent use; expiry is evaluated lazily on Resolve rather than with
// per-session timers.
type Store struct {
	mu       sync.RWMutex
	students map[string]entry
	admins   map[string]entry
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a session store with the given TTL. A non-positive TTL
// falls back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		students: make(map[string]entry),
		admins:   make(map[string]entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock overrides the time source. Used by tests to simulate expiry.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Issue stores a principal snapshot and returns an opaque session token.
// The token embeds the issuance timestamp plus a random suffix, making
// collisions vanishingly unlikely.
func (s *Store) Issue(kind PrincipalKind, principal Principal) string {
	principal.Kind = kind
	issuedAt := s.now()
	token := newToken(kind, issuedAt)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.namespace(kind)[token] = entry{
		principal: principal,
		expiresAt: issuedAt.Add(s.ttl),
	}
	return token
}

// Resolve looks up a token in the namespace of the given kind. It does not
// extend the TTL. Expired entries are removed on the way out.
func (s *Store) Resolve(token string, kind PrincipalKind) (Principal, error) {
	s.mu.RLock()
	e, ok := s.namespace(kind)[token]
	s.mu.RUnlock()

	if !ok {
		return Principal{}, apperrors.ErrSessionInvalid
	}
	if !s.now().Before(e.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock; a concurrent re-issue of the same
		// token (not expected, but cheap to guard) must not be dropped.
		if cur, ok := s.namespace(kind)[token]; ok && !s.now().Before(cur.expiresAt) {
			delete(s.namespace(kind), token)
		}
		s.mu.Unlock()
		return Principal{}, apperrors.ErrSessionExpired
	}
	return e.principal, nil
}

// Revoke removes a token from both namespaces. Revoking an unknown token
// is a no-op.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.students, token)
	delete(s.admins, token)
}

// Len reports the number of live entries in a namespace, expired ones
// included until they are resolved.
func (s *Store) Len(kind PrincipalKind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.namespace(kind))
}

func (s *Store) namespace(kind PrincipalKind) map[string]entry {
	if kind == KindAdmin {
		return s.admins
	}
	return s.students
}

func newToken(kind PrincipalKind, issuedAt time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s_%d_%s", kind, issuedAt.UnixMilli(), suffix[:12])
}
