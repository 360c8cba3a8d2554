package onboarding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
)

// SupportedDocuments returns the hierarchy of document types the platform
// accepts. With an empty userID a backend token is used.
func (c *Client) SupportedDocuments(ctx context.Context, userID string) (map[string]any, error) {
	const operation = "supported_documents"

	var headers map[string]string
	var err error
	if userID != "" {
		headers, err = c.userHeaders(ctx, userID)
	} else {
		headers, err = c.backendHeaders(ctx)
	}
	if err != nil {
		return nil, err
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/documents/supported",
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

// CreateDocument registers a new document of the given type and issuing
// country and returns its document_id for later uploads.
func (c *Client) CreateDocument(ctx context.Context, userID string, docType DocumentType, issuingCountry string) (string, error) {
	const operation = "create_document"

	headers, err := c.userHeaders(ctx, userID)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("type", string(docType))
	form.Set("issuing_country", issuingCountry)

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/user/document",
		Headers: headers,
		Form:    form,
	}, http.StatusOK)
	if err != nil {
		return "", err
	}

	var body struct {
		DocumentID string `json:"document_id"`
	}
	if err := response.Decode(&body); err != nil {
		return "", err
	}
	return body.DocumentID, nil
}

// AddDocumentOptions tunes an AddDocument upload.
type AddDocumentOptions struct {
	Manual bool
	Source DocumentSource
	// Fields to record regardless of the OCR outcome.
	Fields map[string]any
}

// AddDocument uploads one side of a previously created document. The
// platform extracts the document content from the media automatically.
func (c *Client) AddDocument(ctx context.Context, userID, documentID string, media []byte, side DocumentSide, opts AddDocumentOptions) (string, error) {
	const operation = "add_document"

	headers, err := c.userHeaders(ctx, userID)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("document_id", documentID)
	form.Set("side", string(side))
	form.Set("manual", strconv.FormatBool(opts.Manual))
	source := opts.Source
	if source == "" {
		source = DocumentSourceFile
	}
	form.Set("source", string(source))
	if opts.Fields != nil {
		encoded, err := json.Marshal(opts.Fields)
		if err != nil {
			return "", err
		}
		form.Set("fields", string(encoded))
	}

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodPut,
		URL:     c.baseURL + "/user/document",
		Headers: headers,
		Form:    form,
		Files:   []rest.File{{Field: "image", Name: "image", Data: media}},
	}, http.StatusOK)
	if err != nil {
		return "", err
	}

	var body struct {
		DocumentID string `json:"document_id"`
	}
	if err := response.Decode(&body); err != nil {
		return "", err
	}
	return body.DocumentID, nil
}

// DeleteDocument removes all stored and extracted document information.
func (c *Client) DeleteDocument(ctx context.Context, userID, documentID string) error {
	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, "delete_document", &rest.Request{
		Method:  http.MethodDelete,
		URL:     c.baseURL + "/user/document/" + documentID,
		Headers: headers,
	}, http.StatusOK)
	return err
}

// VoidDocument marks a document as invalid.
func (c *Client) VoidDocument(ctx context.Context, userID, documentID string) error {
	headers, err := c.backendUserHeaders(ctx, userID)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, "void_document", &rest.Request{
		Method:  http.MethodPatch,
		URL:     c.baseURL + "/user/document/" + documentID,
		Headers: headers,
	}, http.StatusOK)
	return err
}

// DocumentProperties returns the properties of an added document, such as
// face, MRZ or NFC availability.
func (c *Client) DocumentProperties(ctx context.Context, userID, documentID string) (map[string]any, error) {
	const operation = "document_properties"

	headers, err := c.userHeaders(ctx, userID)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("document_id", documentID)

	response, err := c.do(ctx, operation, &rest.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/user/document/properties",
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
