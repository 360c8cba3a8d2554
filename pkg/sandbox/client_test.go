package sandbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
	"github.com/alicebiometrics/onboarding-go/pkg/onboarding"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	return NewClient(Options{
		SandboxToken: "sandbox-token",
		BaseURL:      ts.URL,
		Rest:         rest.NewClient(rest.Options{}),
	})
}

func TestCreateUserSendsTokenAndForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "Bearer sandbox-token", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "carmen@example.com", r.PostFormValue("email"))

		// The sandbox returns the user_id as a bare JSON string.
		_ = json.NewEncoder(w).Encode("u-123")
	})

	userID, err := client.CreateUser(context.Background(),
		&onboarding.UserInfo{Email: "carmen@example.com"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "u-123", userID)
}

func TestGetUserToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/token/carmen@example.com", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "user-token"})
	})

	token, err := client.GetUserToken(context.Background(), "carmen@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-token", token)
}

func TestDeleteUser(t *testing.T) {
	var called bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/user/carmen@example.com", r.URL.Path)
	})

	require.NoError(t, client.DeleteUser(context.Background(), "carmen@example.com"))
	assert.True(t, called)
}

func TestErrorShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "no such user"})
	})

	_, err := client.GetUser(context.Background(), "missing@example.com")
	require.Error(t, err)

	var opErr *Error
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "get_user", opErr.Operation)
	assert.Equal(t, http.StatusNotFound, opErr.Code)
	assert.Contains(t, opErr.Error(), "[SandboxError: ")
}
