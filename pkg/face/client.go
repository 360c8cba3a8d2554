package face

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
	"github.com/alicebiometrics/onboarding-go/pkg/alice"
)

type Options struct {
	APIKey    string
	BaseURL   string
	SendAgent bool
	// Headers are extra headers attached to every call.
	Headers map[string]string
	Rest    *rest.Client
}

// Client wraps the stateless face service: liveness and face extraction
// from media, and 1:1 matching of profiles. It authenticates with the raw
// API key, not the minted token hierarchy.
type Client struct {
	apiKey    string
	baseURL   string
	sendAgent bool
	headers   map[string]string
	rest      *rest.Client
}

func NewClient(opts Options) *Client {
	return &Client{
		apiKey:    opts.APIKey,
		baseURL:   opts.BaseURL,
		sendAgent: opts.SendAgent,
		headers:   opts.Headers,
		rest:      opts.Rest,
	}
}

func (c *Client) authHeaders(extra map[string]string) map[string]string {
	headers := map[string]string{"apikey": c.apiKey}
	if c.sendAgent {
		headers["Alice-User-Agent"] = alice.UserAgent()
	}
	for k, v := range c.headers {
		headers[k] = v
	}
	for k, v := range extra {
		headers[k] = v
	}
	return headers
}

// Healthcheck verifies the face service is reachable and healthy.
func (c *Client) Healthcheck(ctx context.Context) error {
	response, err := c.rest.Do(ctx, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/healthcheck",
		Headers: c.authHeaders(nil),
	})
	if err != nil {
		return err
	}
	if response.StatusCode != http.StatusOK {
		return NewError("healthcheck", response)
	}
	return nil
}

// Selfie extracts liveness and the biometric face profile from selfie
// media in a single stateless call.
func (c *Client) Selfie(ctx context.Context, media []byte, extractLiveness, extractFaceProfile bool) (*SelfieResult, error) {
	const operation = "selfie"

	form := url.Values{}
	form.Set("extract_liveness", strconv.FormatBool(extractLiveness))
	form.Set("extract_face_profile", strconv.FormatBool(extractFaceProfile))

	response, err := c.rest.Do(ctx, &rest.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/selfie",
		Headers: c.authHeaders(nil),
		Form:    form,
		Files:   []rest.File{{Field: "media", Name: "media", Data: media}},
	})
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusOK {
		return nil, NewError(operation, response)
	}

	parts, err := decodeMultipart(response)
	if err != nil {
		return nil, err
	}

	result := &SelfieResult{
		FaceProfile: parts["face_profile"],
		FaceSelfie:  parts["face_selfie"],
		FaceAvatar:  parts["face_avatar"],
	}
	if result.LivenessScore, err = parseLiveness(parts["liveness_score"]); err != nil {
		return nil, err
	}
	if result.BoundingBox, err = parseBoundingBox(parts["face_bounding_box"]); err != nil {
		return nil, err
	}
	if result.Metadata, err = parseMetadata(parts["metadata"]); err != nil {
		return nil, err
	}
	if raw, ok := parts["number_of_faces"]; ok && len(raw) > 0 {
		if result.NumberOfFaces, err = strconv.Atoi(string(raw)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Document extracts the face profile and document metadata from a document
// image.
func (c *Client) Document(ctx context.Context, image []byte) (*DocumentResult, error) {
	const operation = "document"

	response, err := c.rest.Do(ctx, &rest.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/document",
		Headers: c.authHeaders(nil),
		Files:   []rest.File{{Field: "image", Name: "image", Data: image}},
	})
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusOK {
		return nil, NewError(operation, response)
	}

	parts, err := decodeMultipart(response)
	if err != nil {
		return nil, err
	}

	result := &DocumentResult{FaceProfile: parts["face_profile"]}
	if result.BoundingBox, err = parseBoundingBox(parts["face_bounding_box"]); err != nil {
		return nil, err
	}
	if result.Metadata, err = parseMetadata(parts["metadata"]); err != nil {
		return nil, err
	}
	return result, nil
}

// MatchProfiles compares two previously extracted face profiles.
func (c *Client) MatchProfiles(ctx context.Context, probe, target []byte) (*MatchResult, error) {
	return c.match(ctx, "match_profiles", c.baseURL+"/match/profiles", []rest.File{
		{Field: "face_profile_probe", Name: "face_profile_probe", Data: probe},
		{Field: "face_profile_target", Name: "face_profile_target", Data: target},
	})
}

// MatchMedia compares a selfie against a document image directly.
func (c *Client) MatchMedia(ctx context.Context, selfieMedia, documentMedia []byte) (*MatchResult, error) {
	return c.match(ctx, "match_media", c.baseURL+"/match/media", []rest.File{
		{Field: "selfie_media", Name: "selfie_media", Data: selfieMedia},
		{Field: "document_media", Name: "document_media", Data: documentMedia},
	})
}

func (c *Client) match(ctx context.Context, operation, matchURL string, files []rest.File) (*MatchResult, error) {
	response, err := c.rest.Do(ctx, &rest.Request{
		Method:  http.MethodPost,
		URL:     matchURL,
		Headers: c.authHeaders(nil),
		Files:   files,
	})
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusOK {
		return nil, NewError(operation, response)
	}

	var body struct {
		MatchScore float64 `json:"match_score"`
	}
	if err := response.Decode(&body); err != nil {
		return nil, err
	}
	return &MatchResult{Score: body.MatchScore}, nil
}

// decodeMultipart splits a multipart response body into its named parts.
func decodeMultipart(response *rest.Response) (map[string][]byte, error) {
	mediaType, params, err := mime.ParseMediaType(response.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(mediaType, "multipart/") {
		return nil, &Error{Operation: "decode_multipart", Code: response.StatusCode,
			Message: map[string]any{"message": "expected multipart response, got " + mediaType}}
	}

	parts := map[string][]byte{}
	reader := multipart.NewReader(bytes.NewReader(response.Body), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(part)
		if err != nil {
			return nil, err
		}
		parts[part.FormName()] = data
	}
	return parts, nil
}
