package onboarding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
	"github.com/alicebiometrics/onboarding-go/pkg/auth"
)

func validToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

// newTestClient serves token-mint endpoints and forwards everything else to
// handler, so one fake server backs both the auth and the service calls.
func newTestClient(t *testing.T, sendAgent bool, handler http.HandlerFunc) *Client {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/login_token",
			strings.HasPrefix(r.URL.Path, "/backend_token"),
			strings.HasPrefix(r.URL.Path, "/user_token/"):
			_ = json.NewEncoder(w).Encode(map[string]string{"token": validToken(t)})
		default:
			handler(w, r)
		}
	}))
	t.Cleanup(ts.Close)

	restClient := rest.NewClient(rest.Options{})
	return NewClient(Options{
		Auth: auth.NewClient(auth.Options{
			BaseURL: ts.URL,
			APIKey:  "test-api-key",
			Rest:    restClient,
		}),
		BaseURL:   ts.URL,
		SendAgent: sendAgent,
		Rest:      restClient,
	})
}

func TestCreateUser(t *testing.T) {
	client := newTestClient(t, true, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user", r.URL.Path)
		assert.Contains(t, r.Header.Get("Authorization"), "Bearer ")
		assert.Contains(t, r.Header.Get("Alice-User-Agent"), "onboarding-go/")

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Carmen", r.PostFormValue("first_name"))
		assert.Equal(t, "ios", r.PostFormValue("device_platform"))

		_ = json.NewEncoder(w).Encode(map[string]string{"user_id": "u-123"})
	})

	userID, err := client.CreateUser(context.Background(),
		&UserInfo{FirstName: "Carmen", LastName: "Espanola", Email: "carmen@example.com"},
		&DeviceInfo{DevicePlatform: "ios"})
	require.NoError(t, err)
	assert.Equal(t, "u-123", userID)
}

func TestAddSelfieUploadsVideo(t *testing.T) {
	client := newTestClient(t, false, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/selfie", r.URL.Path)
		assert.Empty(t, r.Header.Get("Alice-User-Agent"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, _, err := r.FormFile("video")
		require.NoError(t, err)
		_ = file.Close()
	})

	err := client.AddSelfie(context.Background(), "u-123", []byte("frames"))
	require.NoError(t, err)
}

func TestAddDocumentSendsSideAndImage(t *testing.T) {
	client := newTestClient(t, false, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/user/document", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "doc-1", r.FormValue("document_id"))
		assert.Equal(t, "front", r.FormValue("side"))
		assert.Equal(t, "false", r.FormValue("manual"))
		assert.Equal(t, "file", r.FormValue("source"))
		file, _, err := r.FormFile("image")
		require.NoError(t, err)
		_ = file.Close()

		_ = json.NewEncoder(w).Encode(map[string]string{"document_id": "doc-1"})
	})

	documentID, err := client.AddDocument(context.Background(), "u-123", "doc-1",
		[]byte("pixels"), DocumentSideFront, AddDocumentOptions{})
	require.NoError(t, err)
	assert.Equal(t, "doc-1", documentID)
}

func TestGetUsersStatusQueryParameters(t *testing.T) {
	client := newTestClient(t, false, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "2", query.Get("page"))
		assert.Equal(t, "10", query.Get("page_size"))
		assert.Equal(t, "true", query.Get("descending"))
		assert.Equal(t, "email", query.Get("filter_field"))
		assert.Equal(t, "carmen@example.com", query.Get("filter_value"))
		_ = json.NewEncoder(w).Encode(map[string]any{"users_status": []any{}})
	})

	body, err := client.GetUsersStatus(context.Background(), StatusQuery{
		Page:        2,
		PageSize:    10,
		Descending:  true,
		FilterField: "email",
		FilterValue: "carmen@example.com",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "users_status")
}

func TestServiceErrorHasOperationAndCode(t *testing.T) {
	client := newTestClient(t, false, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "user already exists"})
	})

	_, err := client.CreateUser(context.Background(), nil, nil)
	require.Error(t, err)

	var opErr *Error
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "create_user", opErr.Operation)
	assert.Equal(t, http.StatusConflict, opErr.Code)
	assert.Equal(t, map[string]any{"message": "user already exists"}, opErr.Message)
	assert.Contains(t, opErr.Error(), "[OnboardingError: ")
}

func TestTokenFailurePropagatesAsAuthError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "bad api key"})
	}))
	t.Cleanup(ts.Close)

	restClient := rest.NewClient(rest.Options{})
	client := NewClient(Options{
		Auth: auth.NewClient(auth.Options{
			BaseURL: ts.URL,
			APIKey:  "wrong-key",
			Rest:    restClient,
		}),
		BaseURL: ts.URL,
		Rest:    restClient,
	})

	_, err := client.CreateUser(context.Background(), nil, nil)
	require.Error(t, err)

	// The auth failure is not rewrapped by the onboarding layer.
	var authErr *auth.Error
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "create_backend_token", authErr.Operation)
	assert.Equal(t, http.StatusForbidden, authErr.Code)
}

func TestRetrieveMediaReturnsRawBytes(t *testing.T) {
	client := newTestClient(t, false, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/media/m-1/download", r.URL.Path)
		_, _ = w.Write([]byte{0xFF, 0xD8, 0xFF})
	})

	media, err := client.RetrieveMedia(context.Background(), "u-123", "m-1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, media)
}

func TestScreeningUsesDetailSuffix(t *testing.T) {
	client := newTestClient(t, false, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/screening/search/detail", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"screening_result": map[string]any{"hits": []any{}},
		})
	})

	result, err := client.Screening(context.Background(), "u-123", true)
	require.NoError(t, err)
	assert.Contains(t, result, "hits")
}
