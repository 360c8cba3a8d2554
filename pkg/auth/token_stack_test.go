package auth

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyToken(t *testing.T, expired bool) string {
	t.Helper()

	exp := time.Now().Add(60 * time.Minute)
	if expired {
		exp = time.Now().Add(-60 * time.Minute)
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  uuid.NewString(),
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestTokenStackAddAndGet(t *testing.T) {
	stack := NewTokenStack(0)

	token := dummyToken(t, false)
	stack.Add("key", token)

	retrieved, ok := stack.Get("key")
	require.True(t, ok)
	assert.Equal(t, token, retrieved)
}

func TestTokenStackMissDoesNotError(t *testing.T) {
	stack := NewTokenStack(0)

	_, ok := stack.Get("absent")
	assert.False(t, ok)
}

func TestTokenStackKeepsMaxSize(t *testing.T) {
	stack := NewTokenStack(3)

	for i := 0; i < 6; i++ {
		stack.Add(strconv.Itoa(i), dummyToken(t, false))
	}
	require.Equal(t, 6, stack.Len())

	// The hit triggers the capacity sweep.
	_, ok := stack.Get("1")
	require.True(t, ok)
	assert.Equal(t, 3, stack.Len())
}

func TestTokenStackRemovesExpiredTokens(t *testing.T) {
	stack := NewTokenStack(0)

	for i := 0; i < 4; i++ {
		stack.Add(strconv.Itoa(i), dummyToken(t, true))
	}
	require.Equal(t, 4, stack.Len())

	for i := 6; i < 12; i++ {
		stack.Add(strconv.Itoa(i), dummyToken(t, false))
	}
	require.Equal(t, 10, stack.Len())

	// A miss never sweeps.
	_, ok := stack.Get("not_available_user_id")
	require.False(t, ok)
	assert.Equal(t, 10, stack.Len())

	// A hit removes exactly the expired prefix.
	_, ok = stack.Get("11")
	require.True(t, ok)
	assert.Equal(t, 6, stack.Len())
}

func TestTokenStackExpirySweepLeavesValidEntriesIntact(t *testing.T) {
	stack := NewTokenStack(0)

	for i := 0; i < 3; i++ {
		stack.Add(fmt.Sprintf("expired_%d", i), dummyToken(t, true))
	}
	validTokens := map[string]string{}
	for i := 0; i < 5; i++ {
		key := fmt.Sprintf("valid_%d", i)
		validTokens[key] = dummyToken(t, false)
		stack.Add(key, validTokens[key])
	}

	_, ok := stack.Get("valid_0")
	require.True(t, ok)
	require.Equal(t, 5, stack.Len())

	for key, want := range validTokens {
		got, ok := stack.Get(key)
		require.True(t, ok, "key %s should have survived the sweep", key)
		assert.Equal(t, want, got)
	}
}

func TestTokenStackOverwriteMovesToNewestPosition(t *testing.T) {
	stack := NewTokenStack(2)

	stack.Add("a", dummyToken(t, false))
	stack.Add("b", dummyToken(t, false))
	stack.Add("a", dummyToken(t, false))
	stack.Add("c", dummyToken(t, false))

	// Capacity sweep evicts "b", the oldest after the re-insert of "a".
	_, ok := stack.Get("c")
	require.True(t, ok)
	assert.Equal(t, 2, stack.Len())

	_, ok = stack.Get("b")
	assert.False(t, ok)
	_, ok = stack.Get("a")
	assert.True(t, ok)
}

func TestTokenStackAcceptsExpiredOnAdd(t *testing.T) {
	stack := NewTokenStack(0)

	expired := dummyToken(t, true)
	stack.Add("key", expired)

	// Get still returns it; validity is the caller's concern. The hit
	// sweeps the stack afterwards.
	retrieved, ok := stack.Get("key")
	require.True(t, ok)
	assert.Equal(t, expired, retrieved)
	assert.Equal(t, 0, stack.Len())
}

func TestTokenStackDump(t *testing.T) {
	stack := NewTokenStack(0)
	stack.Add("fresh", dummyToken(t, false))
	stack.Add("stale", dummyToken(t, true))

	dump := stack.Dump()
	assert.Contains(t, dump, "size=2")
	assert.Contains(t, dump, "fresh (valid=true)")
	assert.Contains(t, dump, "stale (valid=false)")
}
