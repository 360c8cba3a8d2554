package auth

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
)

// Single-slot cache keys for the tokens that are not scoped to a user.
const (
	loginTokenKey   = "login_token"
	backendTokenKey = "backend_token"
)

type Options struct {
	BaseURL  string
	APIKey   string
	UseCache bool
	Rest     *rest.Client
	Logger   *zap.Logger
}

// Client mints and caches the three token kinds of the auth service: the
// login token (exchanged for the API key, used only to mint the others),
// backend tokens (service-level, optionally narrowed to one user) and user
// tokens (scoped to exactly one user). Every mint consults its cache first;
// a valid cached token is returned without touching the network.
//
// Concurrent callers racing on the same cache miss may each trigger a mint.
// That is accepted: mints are idempotent on the server side and the extra
// round-trips are bounded by the number of racing callers.
type Client struct {
	baseURL  string
	apiKey   string
	useCache bool
	rest     *rest.Client
	logger   *zap.Logger

	loginTokens       *TokenStack
	backendTokens     *TokenStack
	backendUserTokens *TokenStack
	userTokens        *TokenStack
}

func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:           opts.BaseURL,
		apiKey:            opts.APIKey,
		useCache:          opts.UseCache,
		rest:              opts.Rest,
		logger:            logger,
		loginTokens:       NewTokenStack(1),
		backendTokens:     NewTokenStack(1),
		backendUserTokens: NewTokenStack(DefaultMaxSize),
		userTokens:        NewTokenStack(DefaultMaxSize),
	}
}

// CreateUserToken returns a token scoped to userID, minting one through
// the auth service only when no valid cached token exists.
func (c *Client) CreateUserToken(ctx context.Context, userID string) (string, error) {
	const operation = "create_user_token"

	if token, ok := c.userTokens.Get(userID); ok && IsValidToken(token) {
		c.logger.Debug("user token cache hit", zap.String("user_id", userID))
		return token, nil
	}
	return c.mintToken(ctx, operation, c.baseURL+"/user_token/"+userID, c.userTokens, userID)
}

// CreateBackendToken returns a service-level token. With an empty userID a
// shared backend token is returned; otherwise the token is narrowed to that
// user. The two variants report failures under distinct operation names.
func (c *Client) CreateBackendToken(ctx context.Context, userID string) (string, error) {
	if userID != "" {
		if token, ok := c.backendUserTokens.Get(userID); ok && IsValidToken(token) {
			c.logger.Debug("backend token cache hit", zap.String("user_id", userID))
			return token, nil
		}
		return c.mintToken(ctx, "create_backend_token (with user)", c.baseURL+"/backend_token/"+userID, c.backendUserTokens, userID)
	}

	if token, ok := c.backendTokens.Get(backendTokenKey); ok && IsValidToken(token) {
		c.logger.Debug("backend token cache hit")
		return token, nil
	}
	return c.mintToken(ctx, "create_backend_token", c.baseURL+"/backend_token", c.backendTokens, backendTokenKey)
}

// DumpCaches renders all four token stacks for operational inspection.
func (c *Client) DumpCaches() string {
	return "login tokens\n" + c.loginTokens.Dump() +
		"backend tokens\n" + c.backendTokens.Dump() +
		"backend tokens (with user)\n" + c.backendUserTokens.Dump() +
		"user tokens\n" + c.userTokens.Dump()
}

// mintToken performs one authenticated GET against a token-mint endpoint
// and caches the result under cacheKey. The login token is resolved first;
// a login failure is reported under the caller's operation name, carrying
// the upstream status and body.
func (c *Client) mintToken(ctx context.Context, operation, url string, cache *TokenStack, cacheKey string) (string, error) {
	loginToken, failure, err := c.loginToken(ctx)
	if err != nil {
		return "", err
	}
	if failure != nil {
		return "", NewError(operation, failure)
	}

	headers := map[string]string{"Authorization": "Bearer " + loginToken}
	if c.useCache {
		headers["Cache-Control"] = "use-cache"
	}

	response, err := c.rest.Do(ctx, &rest.Request{
		Method:  http.MethodGet,
		URL:     url,
		Headers: headers,
	})
	if err != nil {
		return "", err
	}
	if response.StatusCode != http.StatusOK {
		return "", NewError(operation, response)
	}

	token, err := tokenFromResponse(response)
	if err != nil {
		return "", err
	}
	cache.Add(cacheKey, token)
	return token, nil
}

// loginToken returns a valid login token, spending the API key on a fresh
// exchange only when the cached one is missing, malformed or expired. A
// non-200 exchange is returned as a failure response for the caller to wrap
// under its own operation name.
func (c *Client) loginToken(ctx context.Context) (string, *rest.Response, error) {
	if token, ok := c.loginTokens.Get(loginTokenKey); ok && IsValidToken(token) {
		return token, nil, nil
	}

	response, err := c.rest.Do(ctx, &rest.Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + "/login_token",
		Headers: map[string]string{"apikey": c.apiKey},
	})
	if err != nil {
		return "", nil, err
	}
	if response.StatusCode != http.StatusOK {
		return "", response, nil
	}

	token, err := tokenFromResponse(response)
	if err != nil {
		return "", nil, err
	}
	c.loginTokens.Add(loginTokenKey, token)
	return token, nil, nil
}
