package onboarding

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
)

// Screening checks a user against sanctions, PEP and similar public lists.
// With detail set, a per-list summary is included.
func (c *Client) Screening(ctx context.Context, userID string, detail bool) (map[string]any, error) {
	const operation = "screening"

	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return nil, err
	}

	screeningURL := c.baseURL + "/user/screening/search"
	if detail {
		screeningURL += "/detail"
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     screeningURL,
		Headers: headers,
	}, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var body struct {
		ScreeningResult map[string]any `json:"screening_result"`
	}
	if err := response.Decode(&body); err != nil {
		return nil, err
	}
	return body.ScreeningResult, nil
}

// ScreeningMonitorAdd puts a user on the AML monitoring list.
func (c *Client) ScreeningMonitorAdd(ctx context.Context, userID string) error {
	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, "screening_monitor_add", &rest.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/user/screening/monitor",
		Headers: headers,
	}, http.StatusOK)
	return err
}

// ScreeningMonitorDelete removes a user from the AML monitoring list.
func (c *Client) ScreeningMonitorDelete(ctx context.Context, userID string) error {
	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, "screening_monitor_delete", &rest.Request{
		Method:  http.MethodDelete,
		URL:     c.baseURL + "/user/screening/monitor",
		Headers: headers,
	}, http.StatusOK)
	return err
}

// ScreeningMonitorOpenAlerts returns open screening alerts for monitored
// users, paginated by start index and size.
func (c *Client) ScreeningMonitorOpenAlerts(ctx context.Context, startIndex, size int) (map[string]any, error) {
	const operation = "screening_monitor_open_alerts"

	headers, err := c.backendHeaders(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("start_index", strconv.Itoa(startIndex))
	params.Set("size", strconv.Itoa(size))

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/users/screening/monitor/alerts",
		Headers: headers,
		Query:   params,
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
