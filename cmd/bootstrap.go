package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/alicebiometrics/onboarding-go/internal/rest"
	"github.com/alicebiometrics/onboarding-go/pkg/alice"
	"github.com/alicebiometrics/onboarding-go/pkg/auth"
	"github.com/alicebiometrics/onboarding-go/pkg/envtb"
	"github.com/alicebiometrics/onboarding-go/pkg/errtb"
	"github.com/alicebiometrics/onboarding-go/pkg/face"
	"github.com/alicebiometrics/onboarding-go/pkg/logtb"
	"github.com/alicebiometrics/onboarding-go/pkg/onboarding"
	"github.com/alicebiometrics/onboarding-go/pkg/sandbox"
	"github.com/alicebiometrics/onboarding-go/pkg/webhooks"
)

type Services struct {
	Auth       *auth.Client
	Onboarding *onboarding.Client
	Sandbox    *sandbox.Client
	Webhooks   *webhooks.Client
	Face       *face.Client
	Logger     *zap.Logger
}

func Bootstrap(ctx context.Context) (*Env, *Services, func()) {
	env := loadEnv()

	logger, flushLogger := logtb.NewLogger(logtb.Options{
		Format: env.LogFormat,
		Debug:  env.Config.Verbose,
	})

	errtb.Must0(env.Config.Validate())

	restClient := rest.NewClient(rest.Options{
		Timeout: env.Config.Timeout,
		Logger:  logger,
	})

	authClient := auth.NewClient(auth.Options{
		BaseURL:  env.Config.OnboardingURL,
		APIKey:   env.Config.APIKey,
		UseCache: env.Config.UseCache,
		Rest:     restClient,
		Logger:   logger,
	})

	services := &Services{
		Auth: authClient,
		Onboarding: onboarding.NewClient(onboarding.Options{
			Auth:      authClient,
			BaseURL:   env.Config.OnboardingURL,
			SendAgent: env.Config.SendAgent,
			Rest:      restClient,
		}),
		Sandbox: sandbox.NewClient(sandbox.Options{
			SandboxToken: env.Config.SandboxToken,
			BaseURL:      env.Config.SandboxURL,
			Rest:         restClient,
		}),
		Webhooks: webhooks.NewClient(webhooks.Options{
			Auth:      authClient,
			BaseURL:   env.Config.OnboardingURL,
			SendAgent: env.Config.SendAgent,
			Rest:      restClient,
		}),
		Face: face.NewClient(face.Options{
			APIKey:    env.Config.APIKey,
			BaseURL:   env.Config.FaceURL,
			SendAgent: env.Config.SendAgent,
			Rest:      restClient,
		}),
		Logger: logger,
	}

	cleanup := func() {
		flushLogger()
	}

	return env, services, cleanup
}

type Env struct {
	Config            alice.Config
	LogFormat         logtb.Format
	SelfiePath        string
	DocumentFrontPath string
	DocumentBackPath  string
	WebhookListenAddr string
	WebhookPostURL    string
	OutputDir         string
}

func loadEnv() *Env {
	envtb.LoadEnvFile(".env")

	return &Env{
		Config:            alice.FromEnv().Normalized(),
		LogFormat:         envtb.GetLogFormat("LOG_FORMAT", logtb.FormatPretty),
		SelfiePath:        envtb.GetString("ALICE_SELFIE_PATH", "media/selfie.mp4"),
		DocumentFrontPath: envtb.GetString("ALICE_DOCUMENT_FRONT_PATH", "media/document_front.jpg"),
		DocumentBackPath:  envtb.GetString("ALICE_DOCUMENT_BACK_PATH", "media/document_back.jpg"),
		WebhookListenAddr: envtb.GetString("WEBHOOK_LISTEN_ADDR", "localhost:9090"),
		WebhookPostURL:    envtb.GetString("WEBHOOK_POST_URL", "http://localhost:9090/webhook"),
		OutputDir:         envtb.GetString("ALICE_OUTPUT_DIR", "."),
	}
}
