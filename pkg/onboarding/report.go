package onboarding

import (
	"context"
	"net/http"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
)

// CreateReport returns the report of a user's onboarding process: every
// piece of evidence added and analyzed, documents and facial verifications
// included.
func (c *Client) CreateReport(ctx context.Context, userID string) (map[string]any, error) {
	const operation = "create_report"

	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return nil, err
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/user/report",
		Headers: headers,
	}, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var body map[string]any
	if err := response.Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}
