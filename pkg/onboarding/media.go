package onboarding

import (
	"context"
	"net/http"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
)

// RetrieveMedia returns the binary data of a media resource, identified
// for example through the report.
func (c *Client) RetrieveMedia(ctx context.Context, userID, mediaID string) ([]byte, error) {
	const operation = "retrieve_media"

	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return nil, err
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/media/" + mediaID + "/download",
		Headers: headers,
	}, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return response.Body, nil
}

// Download fetches the binary data behind an href obtained from a report.
func (c *Client) Download(ctx context.Context, userID, href string) ([]byte, error) {
	const operation = "download"

	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return nil, err
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     href,
		Headers: headers,
	}, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return response.Body, nil
}
