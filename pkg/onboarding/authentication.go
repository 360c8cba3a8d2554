package onboarding

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
)

// AuthenticateUser verifies a registered user's identity against a new
// selfie video and returns the authentication_id.
func (c *Client) AuthenticateUser(ctx context.Context, userID string, media []byte) (string, error) {
	const operation = "authenticate_user"

	headers, err := c.userHeaders(ctx, userID)
	if err != nil {
		return "", err
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/user/authenticate",
		Headers: headers,
		Files:   []rest.File{{Field: "video", Name: "video", Data: media}},
	}, http.StatusOK)
	if err != nil {
		return "", err
	}

	var body struct {
		AuthenticationID string `json:"authentication_id"`
	}
	if err := response.Decode(&body); err != nil {
		return "", err
	}
	return body.AuthenticationID, nil
}

// GetAuthenticationsIDs returns the ids of every authentication performed
// for a user, newest first.
func (c *Client) GetAuthenticationsIDs(ctx context.Context, userID string) ([]string, error) {
	const operation = "get_authentications_ids"

	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return nil, err
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/user/authentications/ids",
		Headers: headers,
	}, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var body struct {
		AuthenticationIDs []string `json:"authentication_ids"`
	}
	if err := response.Decode(&body); err != nil {
		return nil, err
	}
	return body.AuthenticationIDs, nil
}

// GetAuthentications returns a page of a user's authentications.
func (c *Client) GetAuthentications(ctx context.Context, userID string, page, pageSize int) (map[string]any, error) {
	const operation = "get_authentications"

	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return nil, err
	}

	if page == 0 {
		page = 1
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/user/authentications",
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

// GetAuthentication returns the result of one authentication.
func (c *Client) GetAuthentication(ctx context.Context, userID, authenticationID string) (map[string]any, error) {
	const operation = "get_authentication"

	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return nil, err
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/user/authentication/" + authenticationID,
		Headers: headers,
	}, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var body struct {
		Authentication map[string]any `json:"authentication"`
	}
	if err := response.Decode(&body); err != nil {
		return nil, err
	}
	return body.Authentication, nil
}
