package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsj/linkup/internal/pkg/apperrors"
)

func TestIssueAndResolve(t *testing.T) {
	store := NewStore(DefaultTTL)

	token := store.Issue(KindStudent, Principal{
		StudentNumber: "123456789",
		Email:         "a@x.com",
		Name:          "Thandi",
		Surname:       "Nkosi",
	})
	require.NotEmpty(t, token)

	principal, err := store.Resolve(token, KindStudent)
	require.NoError(t, err)
	assert.Equal(t, KindStudent, principal.Kind)
	assert.Equal(t, "123456789", principal.StudentNumber)
	assert.Equal(t, "a@x.com", principal.Email)
}

func TestTokensAreUnique(t *testing.T) {
	store := NewStore(DefaultTTL)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := store.Issue(KindStudent, Principal{StudentNumber: "123456789"})
		assert.False(t, seen[token], "token issued twice: %s", token)
		seen[token] = true
	}
}

func TestNamespaceIsolation(t *testing.T) {
	store := NewStore(DefaultTTL)

	studentToken := store.Issue(KindStudent, Principal{StudentNumber: "123456789"})
	adminToken := store.Issue(KindAdmin, Principal{AdminID: 1})

	// A student token must not resolve in the admin namespace and vice versa.
	_, err := store.Resolve(studentToken, KindAdmin)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)

	_, err = store.Resolve(adminToken, KindStudent)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)

	_, err = store.Resolve(studentToken, KindStudent)
	assert.NoError(t, err)
	_, err = store.Resolve(adminToken, KindAdmin)
	assert.NoError(t, err)
}

func TestResolveUnknownToken(t *testing.T) {
	store := NewStore(DefaultTTL)

	_, err := store.Resolve("student_0_deadbeef", KindStudent)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
}

func TestExpiry(t *testing.T) {
	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}

	store := NewStore(24 * time.Hour).WithClock(now)
	token := store.Issue(KindStudent, Principal{StudentNumber: "123456789"})

	// Valid just before the deadline.
	mu.Lock()
	current = current.Add(24*time.Hour - time.Second)
	mu.Unlock()
	_, err := store.Resolve(token, KindStudent)
	require.NoError(t, err)

	// Invalid once the deadline passes.
	mu.Lock()
	current = current.Add(2 * time.Second)
	mu.Unlock()
	_, err = store.Resolve(token, KindStudent)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)

	// The expired entry is removed lazily.
	assert.Equal(t, 0, store.Len(KindStudent))
}

func TestRevoke(t *testing.T) {
	store := NewStore(DefaultTTL)

	token := store.Issue(KindStudent, Principal{StudentNumber: "123456789"})
	store.Revoke(token)

	_, err := store.Resolve(token, KindStudent)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)

	// Revoking again, or revoking garbage, is not an error.
	store.Revoke(token)
	store.Revoke("no-such-token")
}

func TestConcurrentAccess(t *testing.T) {
	store := NewStore(DefaultTTL)

	var wg sync.WaitGroup
	tokens := make([]string, 50)
	for i := range tokens {
		tokens[i] = store.Issue(KindStudent, Principal{StudentNumber: "123456789"})
	}

	// Logins racing logouts and lookups must not corrupt the store.
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			store.Issue(KindAdmin, Principal{AdminID: int64(i)})
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _ = store.Resolve(tokens[i], KindStudent)
		}(i)
		go func(i int) {
			defer wg.Done()
			store.Revoke(tokens[i])
		}(i)
	}
	wg.Wait()

	for _, token := range tokens {
		_, err := store.Resolve(token, KindStudent)
		assert.True(t, errors.Is(err, apperrors.ErrSessionInvalid))
	}
	assert.Equal(t, 50, store.Len(KindAdmin))
}
