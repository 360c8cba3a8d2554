package sandbox

import (
	"context"
	"net/http"
	"net/url"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
	"github.com/alicebiometrics/onboarding-go/pkg/onboarding"
)

type Options struct {
	SandboxToken string
	BaseURL      string
	Rest         *rest.Client
}

// Client wraps the sandbox service, which manages trial users by email and
// hands out their onboarding user tokens. It authenticates with a
// long-lived sandbox token instead of the minted token hierarchy.
type Client struct {
	token   string
	baseURL string
	rest    *rest.Client
}

func NewClient(opts Options) *Client {
	return &Client{
		token:   opts.SandboxToken,
		baseURL: opts.BaseURL,
		rest:    opts.Rest,
	}
}

func (c *Client) authHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.token}
}

func (c *Client) do(ctx context.Context, operation string, req *rest.Request) (*rest.Response, error) {
	response, err := c.rest.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusOK {
		return nil, NewError(operation, response)
	}
	return response, nil
}

// Healthcheck verifies the sandbox service is reachable and healthy.
func (c *Client) Healthcheck(ctx context.Context) error {
	_, err := c.do(ctx, "healthcheck", &rest.Request{
		Method: http.MethodGet,
		URL:    c.baseURL + "/healthcheck",
	})
	return err
}

// CreateUser creates a sandbox user (email required in userInfo) together
// with its linked onboarding user, and returns the onboarding user_id.
func (c *Client) CreateUser(ctx context.Context, userInfo *onboarding.UserInfo, deviceInfo *onboarding.DeviceInfo) (string, error) {
	form := url.Values{}
	if userInfo != nil {
		userInfo.FillForm(form)
	}
	if deviceInfo != nil {
		deviceInfo.FillForm(form)
	}

	response, err := c.do(ctx, "create_user", &rest.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/user",
		Headers: c.authHeaders(),
		Form:    form,
	})
	if err != nil {
		return "", err
	}

	var userID string
	if err := response.Decode(&userID); err != nil {
		return "", err
	}
	return userID, nil
}

// DeleteUser removes a sandbox user and its linked onboarding user.
func (c *Client) DeleteUser(ctx context.Context, email string) error {
	_, err := c.do(ctx, "delete_user", &rest.Request{
		Method:  http.MethodDelete,
		URL:     c.baseURL + "/user/" + email,
		Headers: c.authHeaders(),
	})
	return err
}

// GetUser returns the sandbox user's status.
func (c *Client) GetUser(ctx context.Context, email string) (map[string]any, error) {
	response, err := c.do(ctx, "get_user", &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/user/" + email,
		Headers: c.authHeaders(),
	})
	if err != nil {
		return nil, err
	}

	var body map[string]any
	if err := response.Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

// GetUserToken returns the onboarding user token linked to a sandbox user.
func (c *Client) GetUserToken(ctx context.Context, email string) (string, error) {
	response, err := c.do(ctx, "get_user_token", &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/user/token/" + email,
		Headers: c.authHeaders(),
	})
	if err != nil {
		return "", err
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := response.Decode(&body); err != nil {
		return "", err
	}
	return body.Token, nil
}
