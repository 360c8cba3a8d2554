package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
)

// ValidityMargin is subtracted from now when checking a token's exp claim:
// a token is still accepted for this long past its literal deadline, which
// absorbs clock skew between client and auth service.
const ValidityMargin = 60 * time.Second

var unverifiedParser = jwt.NewParser()

// IsValidToken reports whether token decodes as a JWT whose exp claim is
// still ahead of now minus the validity margin. The signature is never
// verified: the claims are read for expiry bookkeeping only, and the token
// only has value when presented back to the service that issued it.
func IsValidToken(token string) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := unverifiedParser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(time.Now().Add(-ValidityMargin))
}

func tokenFromResponse(response *rest.Response) (string, error) {
	var body struct {
		Token string `json:"token"`
	}
	if err := response.Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if body.Token == "" {
		return "", fmt.Errorf("token response has no token field")
	}
	return body.Token, nil
}
