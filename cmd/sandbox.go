package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/alicebiometrics/onboarding-go/pkg/errtb"
	"github.com/alicebiometrics/onboarding-go/pkg/onboarding"
)

// SandboxCmd exercises the sandbox service: trial user lifecycle and user
// token retrieval by email.
func SandboxCmd(env *Env, services *Services) {
	ctx := context.Background()
	client := services.Sandbox

	email := fmt.Sprintf("%s@example.com", uuid.NewString())

	color.Cyan("create_user (%s)", email)
	userID := errtb.Must(client.CreateUser(ctx, &onboarding.UserInfo{Email: email}, nil))
	color.Green("user_id: %s", userID)

	color.Cyan("get_user")
	user := errtb.Must(client.GetUser(ctx, email))
	color.Green("user: %v", user)

	color.Cyan("get_user_token")
	token := errtb.Must(client.GetUserToken(ctx, email))
	color.Green("user token: %s", token)

	color.Cyan("delete_user")
	errtb.Must0(client.DeleteUser(ctx, email))
}
