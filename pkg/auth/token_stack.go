package auth

import (
	"fmt"
	"strings"
	"sync"
)

// DefaultMaxSize bounds a token stack when no explicit size is given.
const DefaultMaxSize = 5000

// TokenStack is an insertion-ordered user_id→token cache with lazy
// maintenance: expired entries and excess capacity are only cleaned up when
// a lookup actually finds a token, so writes stay cheap and the sweep cost
// is amortized over calls that already pay for a lookup.
type TokenStack struct {
	mu      sync.Mutex
	keys    []string
	data    map[string]string
	maxSize int
}

func NewTokenStack(maxSize int) *TokenStack {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &TokenStack{
		data:    make(map[string]string),
		maxSize: maxSize,
	}
}

// Add inserts or overwrites the token for userID. An overwrite moves the
// key to the newest position. Tokens are not validated on insert: an
// already-expired token is accepted and pruned on a later Get.
func (s *TokenStack) Add(userID, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[userID]; exists {
		s.removeKey(userID)
	}
	s.keys = append(s.keys, userID)
	s.data[userID] = token
}

// Get returns the token stored for userID, which may itself be expired:
// validity checking is the caller's job, the stack only does eviction
// bookkeeping. If and only if a token is found, the two maintenance sweeps
// run before returning.
func (s *TokenStack) Get(userID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, exists := s.data[userID]
	if !exists {
		return "", false
	}
	s.clearExpiredTokens()
	s.clearIfMaxSizeExceeded()
	return token, true
}

func (s *TokenStack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

// Dump renders the stack contents with per-token validity, for operational
// inspection only.
func (s *TokenStack) Dump() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := &strings.Builder{}
	fmt.Fprintf(b, "TokenStack: [size=%d tokens | max_size=%d]\n", len(s.keys), s.maxSize)
	for _, key := range s.keys {
		token := s.data[key]
		fmt.Fprintf(b, "%s (valid=%t): %s\n", key, IsValidToken(token), token)
	}
	return b.String()
}

// clearExpiredTokens scans from newest to oldest for the latest-inserted
// expired token and, if one exists, pops oldest entries until that token
// has been popped. Expired entries always form a prefix in insertion order
// (tokens are minted with uniform lifetimes), so this removes the whole
// stale prefix in one pass. Must be called with the lock held.
func (s *TokenStack) clearExpiredTokens() {
	latestExpired := -1
	for i := len(s.keys) - 1; i >= 0; i-- {
		if !IsValidToken(s.data[s.keys[i]]) {
			latestExpired = i
			break
		}
	}
	for i := 0; i <= latestExpired; i++ {
		s.popOldest()
	}
}

// clearIfMaxSizeExceeded pops oldest entries until the size bound holds.
// Must be called with the lock held.
func (s *TokenStack) clearIfMaxSizeExceeded() {
	for len(s.keys) > s.maxSize {
		s.popOldest()
	}
}

func (s *TokenStack) popOldest() {
	if len(s.keys) == 0 {
		return
	}
	oldest := s.keys[0]
	s.keys = s.keys[1:]
	delete(s.data, oldest)
}

func (s *TokenStack) removeKey(userID string) {
	for i, key := range s.keys {
		if key == userID {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	delete(s.data, userID)
}
