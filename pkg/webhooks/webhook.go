package webhooks

// Webhook describes a subscription to platform events: where results are
// posted and how the payload is signed.
type Webhook struct {
	WebhookID    string `json:"webhook_id,omitempty"`
	Active       bool   `json:"active"`
	PostURL      string `json:"post_url"`
	APIKey       string `json:"api_key"`
	Secret       string `json:"secret"`
	Algorithm    string `json:"algorithm,omitempty"`
	EventName    string `json:"event_name"`
	EventVersion string `json:"event_version"`
}
