package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alicebiometrics/onboarding-go/cmd"
)

func main() {
	cmdName := "auth"
	if len(os.Args) >= 2 {
		cmdName = os.Args[1]
	}

	env, services, cleanup := cmd.Bootstrap(context.Background())
	defer cleanup()

	switch cmdName {
	case "auth":
		cmd.AuthCmd(env, services)

	case "onboarding":
		cmd.OnboardingCmd(env, services)

	case "sandbox":
		cmd.SandboxCmd(env, services)

	case "webhooks":
		cmd.WebhooksCmd(env, services)

	case "face":
		cmd.FaceCmd(env, services)

	default:
		panic(fmt.Errorf("unknown command %s", cmdName))
	}
}
