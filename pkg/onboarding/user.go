package onboarding

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
)

// CreateUser creates a new user in the onboarding service and returns its
// user_id. A user must exist before the onboarding flow starts.
func (c *Client) CreateUser(ctx context.Context, userInfo *UserInfo, deviceInfo *DeviceInfo) (string, error) {
	const operation = "create_user"

	headers, err := c.backendHeaders(ctx)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	if userInfo != nil {
		userInfo.FillForm(form)
	}
	if deviceInfo != nil {
		deviceInfo.FillForm(form)
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/user",
		Headers: headers,
		Form:    form,
	}, http.StatusOK)
	if err != nil {
		return "", err
	}

	var body struct {
		UserID string `json:"user_id"`
	}
	if err := response.Decode(&body); err != nil {
		return "", err
	}
	return body.UserID, nil
}

// DeleteUser removes all stored information about a user.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, "delete_user", &rest.Request{
		Method:  http.MethodDelete,
		URL:     c.baseURL + "/user",
		Headers: headers,
	}, http.StatusOK)
	return err
}

// GetUserStatus returns onboarding progress feedback for a user.
func (c *Client) GetUserStatus(ctx context.Context, userID string) (map[string]any, error) {
	const operation = "get_user_status"

	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return nil, err
	}
	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/user/status",
		Headers: headers,
	}, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var body struct {
		User map[string]any `json:"user"`
	}
	if err := response.Decode(&body); err != nil {
		return nil, err
	}
	return body.User, nil
}

// GetUsers returns all user identifiers known to the platform.
func (c *Client) GetUsers(ctx context.Context) ([]string, error) {
	const operation = "get_users"

	headers, err := c.backendHeaders(ctx)
	if err != nil {
		return nil, err
	}
	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/users",
		Headers: headers,
	}, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var body struct {
		Users []string `json:"users"`
	}
	if err := response.Decode(&body); err != nil {
		return nil, err
	}
	return body.Users, nil
}

// GetUsersStats returns aggregate statistics about the platform's users.
func (c *Client) GetUsersStats(ctx context.Context) (map[string]any, error) {
	const operation = "get_users_stats"

	headers, err := c.backendHeaders(ctx)
	if err != nil {
		return nil, err
	}
	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/users/stats",
		Headers: headers,
	}, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var body struct {
		Stats map[string]any `json:"stats"`
	}
	if err := response.Decode(&body); err != nil {
		return nil, err
	}
	return body.Stats, nil
}

// GetUsersStatus returns the status of every user, ordered by creation
// date, selected and paginated by the query.
func (c *Client) GetUsersStatus(ctx context.Context, query StatusQuery) (map[string]any, error) {
	const operation = "get_users_status"

	headers, err := c.backendHeaders(ctx)
	if err != nil {
		return nil, err
	}

	page := query.Page
	if page == 0 {
		page = 1
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(query.PageSize))
	params.Set("descending", strconv.FormatBool(query.Descending))
	params.Set("authorized", strconv.FormatBool(query.Authorized))
	if query.FilterField != "" && query.FilterValue != "" {
		params.Set("filter_field", query.FilterField)
		params.Set("filter_value", query.FilterValue)
	}
	if query.SortBy != "" {
		params.Set("sort_by", query.SortBy)
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/users/status",
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

// AddUserFeedback records the client's review verdict on an onboarding,
// usually after human review.
func (c *Client) AddUserFeedback(ctx context.Context, userID, documentID, selfieMediaID string, decision Decision, additionalFeedback []string) error {
	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("document_id", documentID)
	form.Set("selfie_media_id", selfieMediaID)
	form.Set("decision", string(decision))
	for _, feedback := range additionalFeedback {
		form.Add("additional_feedback", feedback)
	}

	_, err = c.do(ctx, "add_user_feedback", &rest.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/user/feedback",
		Headers: headers,
		Form:    form,
	}, http.StatusOK)
	return err
}

// AuthorizeUser allows a user to authenticate.
func (c *Client) AuthorizeUser(ctx context.Context, userID string) error {
	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, "authorize_user", &rest.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/user/authorize",
		Headers: headers,
	}, http.StatusOK)
	return err
}

// DeauthorizeUser revokes a user's ability to authenticate.
func (c *Client) DeauthorizeUser(ctx context.Context, userID string) error {
	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, "deauthorize_user", &rest.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/user/deauthorize",
		Headers: headers,
	}, http.StatusOK)
	return err
}

// IdentifyUser matches the target user (1:N) against the probe users and
// returns the match scores.
func (c *Client) IdentifyUser(ctx context.Context, targetUserID string, probeUserIDs []string) (map[string]any, error) {
	const operation = "identify_user"

	headers, err := c.backendUserHeaders(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	for _, probe := range probeUserIDs {
		form.Add("user_ids", probe)
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/user/identify",
		Headers: headers,
		Form:    form,
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
