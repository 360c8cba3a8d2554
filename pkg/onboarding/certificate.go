package onboarding

import (
	"context"
	"net/http"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
)

// CreateCertificate builds a signed PDF report of a user's onboarding and
// returns its certificate_id.
func (c *Client) CreateCertificate(ctx context.Context, userID, templateName string) (string, error) {
	const operation = "create_certificate"

	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return "", err
	}
	if templateName == "" {
		templateName = "default"
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/user/certificate",
		Headers: headers,
		JSON:    map[string]string{"template_name": templateName},
	}, http.StatusOK)
	if err != nil {
		return "", err
	}

	var body struct {
		CertificateID string `json:"certificate_id"`
	}
	if err := response.Decode(&body); err != nil {
		return "", err
	}
	return body.CertificateID, nil
}

// RetrieveCertificate downloads a signed PDF certificate.
func (c *Client) RetrieveCertificate(ctx context.Context, userID, certificateID string) ([]byte, error) {
	const operation = "retrieve_certificate"

	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return nil, err
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/user/certificate/" + certificateID,
		Headers: headers,
	}, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return response.Body, nil
}

// RetrieveCertificates returns summary info for a user's certificates.
func (c *Client) RetrieveCertificates(ctx context.Context, userID string) ([]map[string]any, error) {
	const operation = "retrieve_certificates"

	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return nil, err
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/user/certificates",
		Headers: headers,
	}, http.StatusOK)
	if err != nil {
		return nil, err
	}

	var body struct {
		Certificates []map[string]any `json:"certificates"`
	}
	if err := response.Decode(&body); err != nil {
		return nil, err
	}
	return body.Certificates, nil
}
