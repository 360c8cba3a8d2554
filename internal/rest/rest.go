package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// File is a binary part of a multipart request body.
type File struct {
	Field string
	Name  string
	Data  []byte
}

type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Query   url.Values
	JSON    any
	Form    url.Values
	Files   []File
}

// Response carries the raw outcome of a call, successful or not. Callers
// branch on StatusCode; the transport never turns an HTTP error status into
// a Go error.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// ErrorBody returns the response body parsed as a JSON object, or the
// "no content" fallback when the body is empty or not JSON.
func (r *Response) ErrorBody() map[string]any {
	var body map[string]any
	if err := json.Unmarshal(r.Body, &body); err != nil || body == nil {
		return map[string]any{"message": "no content"}
	}
	return body
}

type Options struct {
	Timeout time.Duration
	Logger  *zap.Logger
}

type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		logger: logger,
	}
}

var timedOutBody = []byte(`{"message": "Request timed out"}`)

// Do performs the request and returns the raw response. A client-side
// timeout is not an error: it resolves to a synthetic 408 response so that
// callers handle server and client timeouts through one code path.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	body, contentType, err := buildBody(req)
	if err != nil {
		return nil, err
	}

	fullURL := req.URL
	if len(req.Query) > 0 {
		sep := "?"
		if strings.Contains(fullURL, "?") {
			sep = "&"
		}
		fullURL += sep + req.Query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	for k, v := range req.Headers {
		request.Header.Set(k, v)
	}

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		if isTimeout(err) {
			c.logger.Debug("request timed out",
				zap.String("method", req.Method),
				zap.String("url", req.URL))
			return &Response{StatusCode: http.StatusRequestTimeout, Body: timedOutBody}, nil
		}
		return nil, err
	}
	defer func() {
		_ = response.Body.Close()
	}()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		if isTimeout(err) {
			return &Response{StatusCode: http.StatusRequestTimeout, Body: timedOutBody}, nil
		}
		return nil, err
	}

	c.logger.Debug("request done",
		zap.String("method", req.Method),
		zap.String("url", req.URL),
		zap.Int("status", response.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	return &Response{
		StatusCode: response.StatusCode,
		Header:     response.Header,
		Body:       raw,
	}, nil
}

func buildBody(req *Request) (io.Reader, string, error) {
	switch {
	case len(req.Files) > 0:
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)
		for _, file := range req.Files {
			part, err := writer.CreateFormFile(file.Field, file.Name)
			if err != nil {
				return nil, "", err
			}
			if _, err := part.Write(file.Data); err != nil {
				return nil, "", err
			}
		}
		for key, values := range req.Form {
			for _, value := range values {
				if err := writer.WriteField(key, value); err != nil {
					return nil, "", err
				}
			}
		}
		if err := writer.Close(); err != nil {
			return nil, "", err
		}
		return buf, writer.FormDataContentType(), nil

	case len(req.Form) > 0:
		return strings.NewReader(req.Form.Encode()), "application/x-www-form-urlencoded", nil

	case req.JSON != nil:
		encoded, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(encoded), "application/json", nil
	}
	return nil, "", nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
