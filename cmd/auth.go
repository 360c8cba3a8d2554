package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/alicebiometrics/onboarding-go/pkg/errtb"
)

// AuthCmd mints one token of each kind and shows how the caches behave on
// a repeated request.
func AuthCmd(env *Env, services *Services) {
	ctx := context.Background()
	userID := uuid.NewString()

	color.Cyan("create_backend_token")
	backendToken := errtb.Must(services.Auth.CreateBackendToken(ctx, ""))
	color.Green("backend token: %s", backendToken)

	color.Cyan("create_backend_token (with user)")
	backendUserToken := errtb.Must(services.Auth.CreateBackendToken(ctx, userID))
	color.Green("backend token with user: %s", backendUserToken)

	color.Cyan("create_user_token")
	userToken := errtb.Must(services.Auth.CreateUserToken(ctx, userID))
	color.Green("user token: %s", userToken)

	// Second round: every token comes from the caches, no network calls.
	color.Cyan("repeating the three requests (cache hits)")
	errtb.Must(services.Auth.CreateBackendToken(ctx, ""))
	errtb.Must(services.Auth.CreateBackendToken(ctx, userID))
	errtb.Must(services.Auth.CreateUserToken(ctx, userID))

	color.Yellow("%s", services.Auth.DumpCaches())
}
