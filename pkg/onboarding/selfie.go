package onboarding

import (
	"context"
	"net/http"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
)

// AddSelfie uploads the video of the user's face. The platform extracts the
// biometric face profile from it.
func (c *Client) AddSelfie(ctx context.Context, userID string, media []byte) error {
	headers, err := c.userHeaders(ctx, userID)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, "add_selfie", &rest.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/user/selfie",
		Headers: headers,
		Files:   []rest.File{{Field: "video", Name: "video", Data: media}},
	}, http.StatusOK)
	return err
}

// DeleteSelfie removes the selfie video and the extracted face profile.
func (c *Client) DeleteSelfie(ctx context.Context, userID string) error {
	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, "delete_selfie", &rest.Request{
		Method:  http.MethodDelete,
		URL:     c.baseURL + "/user/selfie",
		Headers: headers,
	}, http.StatusOK)
	return err
}

// VoidSelfie marks the selfie video as invalid, keeping the face profile.
func (c *Client) VoidSelfie(ctx context.Context, userID string) error {
	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, "void_selfie", &rest.Request{
		Method:  http.MethodPatch,
		URL:     c.baseURL + "/user/selfie",
		Headers: headers,
	}, http.StatusOK)
	return err
}
