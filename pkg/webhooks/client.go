package webhooks

import (
	"context"
	"net/http"

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

// Client manages webhook subscriptions. All operations run with a shared
// backend token.
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

func (c *Client) backendHeaders(ctx context.Context) (map[string]string, error) {
	token, err := c.auth.CreateBackendToken(ctx, "")
	if err != nil {
		return nil, err
	}
	headers := map[string]string{"Authorization": "Bearer " + token}
	if c.sendAgent {
		headers["Alice-User-Agent"] = alice.UserAgent()
	}
	return headers, nil
}

func (c *Client) do(ctx context.Context, operation string, req *rest.Request) (*rest.Response, error) {
	headers, err := c.backendHeaders(ctx)
	if err != nil {
		return nil, err
	}
	req.Headers = headers

	response, err := c.rest.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusOK {
		return nil, NewError(operation, response)
	}
	return response, nil
}

// GetAvailableEvents returns the events a webhook can subscribe to.
func (c *Client) GetAvailableEvents(ctx context.Context) ([]map[string]any, error) {
	response, err := c.do(ctx, "get_available_events", &rest.Request{
		Method: http.MethodGet,
		URL:    c.baseURL + "/events",
	})
	if err != nil {
		return nil, err
	}

	var events []map[string]any
	if err := response.Decode(&events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateWebhook registers a new webhook and returns its webhook_id.
func (c *Client) CreateWebhook(ctx context.Context, webhook Webhook) (string, error) {
	response, err := c.do(ctx, "create_webhook", &rest.Request{
		Method: http.MethodPost,
		URL:    c.baseURL + "/webhook",
		JSON:   webhook,
	})
	if err != nil {
		return "", err
	}

	var body struct {
		WebhookID string `json:"webhook_id"`
	}
	if err := response.Decode(&body); err != nil {
		return "", err
	}
	return body.WebhookID, nil
}

// UpdateWebhook replaces an existing webhook's configuration.
func (c *Client) UpdateWebhook(ctx context.Context, webhook Webhook) error {
	_, err := c.do(ctx, "update_webhook", &rest.Request{
		Method: http.MethodPut,
		URL:    c.baseURL + "/webhook/" + webhook.WebhookID,
		JSON:   webhook,
	})
	return err
}

// UpdateWebhookActivation toggles a webhook on or off.
func (c *Client) UpdateWebhookActivation(ctx context.Context, webhookID string, active bool) error {
	_, err := c.do(ctx, "update_webhook_activation", &rest.Request{
		Method: http.MethodPatch,
		URL:    c.baseURL + "/webhook/" + webhookID,
		JSON:   map[string]bool{"active": active},
	})
	return err
}

// PingWebhook sends a ping event to an active webhook.
func (c *Client) PingWebhook(ctx context.Context, webhookID string) error {
	_, err := c.do(ctx, "ping_webhook", &rest.Request{
		Method: http.MethodGet,
		URL:    c.baseURL + "/webhook/" + webhookID + "/ping",
	})
	return err
}

// DeleteWebhook removes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	_, err := c.do(ctx, "delete_webhook", &rest.Request{
		Method: http.MethodDelete,
		URL:    c.baseURL + "/webhook/" + webhookID,
	})
	return err
}

// GetWebhook returns one webhook's configuration.
func (c *Client) GetWebhook(ctx context.Context, webhookID string) (*Webhook, error) {
	response, err := c.do(ctx, "get_webhook", &rest.Request{
		Method: http.MethodGet,
		URL:    c.baseURL + "/webhook/" + webhookID,
	})
	if err != nil {
		return nil, err
	}

	webhook := &Webhook{}
	if err := response.Decode(webhook); err != nil {
		return nil, err
	}
	return webhook, nil
}

// GetWebhooks returns every configured webhook.
func (c *Client) GetWebhooks(ctx context.Context) ([]Webhook, error) {
	response, err := c.do(ctx, "get_webhooks", &rest.Request{
		Method: http.MethodGet,
		URL:    c.baseURL + "/webhooks",
	})
	if err != nil {
		return nil, err
	}

	var webhooks []Webhook
	if err := response.Decode(&webhooks); err != nil {
		return nil, err
	}
	return webhooks, nil
}

// GetWebhookResults returns the delivery results of a webhook.
func (c *Client) GetWebhookResults(ctx context.Context, webhookID string) (map[string]any, error) {
	response, err := c.do(ctx, "get_webhook_results", &rest.Request{
		Method: http.MethodGet,
		URL:    c.baseURL + "/webhook/results/" + webhookID,
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

// GetLastWebhookResult returns the most recent delivery result of a
// webhook.
func (c *Client) GetLastWebhookResult(ctx context.Context, webhookID string) (map[string]any, error) {
	response, err := c.do(ctx, "get_last_webhook_result", &rest.Request{
		Method: http.MethodGet,
		URL:    c.baseURL + "/webhook/result/" + webhookID + "/last",
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
