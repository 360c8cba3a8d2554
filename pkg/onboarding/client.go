package onboarding

import (
	"context"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
	"github.com/alicebiometrics/onboarding-go/pkg/alice"
	"github.com/alicebiometrics/onboarding-go/pkg/auth"
)

type Options struct {
	Auth      *auth.Client
	BaseURL   string
	SendAgent bool
	Rest      *rest.Client
}

// Client wraps the onboarding service API. Every operation resolves the
// token kind it needs through the auth client (which caches aggressively)
// and performs a single HTTP call; token acquisition failures propagate
// unchanged as *auth.Error.
type Client struct {
	auth      *auth.Client
	baseURL   string
	sendAgent bool
	rest      *rest.Client
}

func NewClient(opts Options) *Client {
	return &Client{
		auth:      opts.Auth,
		baseURL:   opts.BaseURL,
		sendAgent: opts.SendAgent,
		rest:      opts.Rest,
	}
}

func (c *Client) authHeaders(token string) map[string]string {
	headers := map[string]string{"Authorization": "Bearer " + token}
	if c.sendAgent {
		headers["Alice-User-Agent"] = alice.UserAgent()
	}
	return headers
}

func (c *Client) backendHeaders(ctx context.Context) (map[string]string, error) {
	token, err := c.auth.CreateBackendToken(ctx, "")
	if err != nil {
		return nil, err
	}
	return c.authHeaders(token), nil
}

func (c *Client) backendUserHeaders(ctx context.Context, userID string) (map[string]string, error) {
	token, err := c.auth.CreateBackendToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	return c.authHeaders(token), nil
}

func (c *Client) userHeaders(ctx context.Context, userID string) (map[string]string, error) {
	token, err := c.auth.CreateUserToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	return c.authHeaders(token), nil
}

// do performs a request and turns any status other than wantStatus into a
// typed *Error for the given operation.
func (c *Client) do(ctx context.Context, operation string, req *rest.Request, wantStatus int) (*rest.Response, error) {
	response, err := c.rest.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if response.StatusCode != wantStatus {
		return nil, NewError(operation, response)
	}
	return response, nil
}
