package onboarding

import (
	"context"
	"net/http"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
)

// Healthcheck verifies the onboarding service is reachable and healthy.
func (c *Client) Healthcheck(ctx context.Context) error {
	_, err := c.do(ctx, "healthcheck", &rest.Request{
		Method: http.MethodGet,
		URL:    c.baseURL + "/healthcheck",
	}, http.StatusOK)
	return err
}
