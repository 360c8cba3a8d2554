package alice

import (
	"errors"
	"time"

	"go.uber.org/multierr"

	"github.com/alicebiometrics/onboarding-go/pkg/envtb"
)

const (
	DefaultOnboardingURL = "https://apis.alicebiometrics.com/onboarding"
	DefaultSandboxURL    = "https://apis.alicebiometrics.com/onboarding/sandbox"
	DefaultFaceURL       = "https://apis.alicebiometrics.com/face"

	DefaultTimeout = 10 * time.Second
)

// Config carries everything needed to build the service clients. Zero
// values fall back to production URLs and defaults through Normalized.
type Config struct {
	APIKey        string
	SandboxToken  string
	OnboardingURL string
	SandboxURL    string
	FaceURL       string
	Timeout       time.Duration
	SendAgent     bool
	UseCache      bool
	Verbose       bool
}

func DefaultConfig() Config {
	return Config{
		OnboardingURL: DefaultOnboardingURL,
		SandboxURL:    DefaultSandboxURL,
		FaceURL:       DefaultFaceURL,
		Timeout:       DefaultTimeout,
		SendAgent:     true,
	}
}

// FromEnv builds a Config from ALICE_* environment variables, falling back
// to the defaults. Call envtb.LoadEnvFile first to honor a .env file.
func FromEnv() Config {
	return Config{
		APIKey:        envtb.GetString("ALICE_API_KEY", ""),
		SandboxToken:  envtb.GetString("ALICE_SANDBOX_TOKEN", ""),
		OnboardingURL: envtb.GetString("ALICE_ONBOARDING_URL", DefaultOnboardingURL),
		SandboxURL:    envtb.GetString("ALICE_SANDBOX_URL", DefaultSandboxURL),
		FaceURL:       envtb.GetString("ALICE_FACE_URL", DefaultFaceURL),
		Timeout:       envtb.GetDuration("ALICE_TIMEOUT", "10s"),
		SendAgent:     envtb.GetBool("ALICE_SEND_AGENT", true),
		UseCache:      envtb.GetBool("ALICE_USE_CACHE", false),
		Verbose:       envtb.GetBool("ALICE_VERBOSE", false),
	}
}

// Normalized returns a copy with empty fields replaced by defaults.
func (c Config) Normalized() Config {
	if c.OnboardingURL == "" {
		c.OnboardingURL = DefaultOnboardingURL
	}
	if c.SandboxURL == "" {
		c.SandboxURL = DefaultSandboxURL
	}
	if c.FaceURL == "" {
		c.FaceURL = DefaultFaceURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var err error
	if c.APIKey == "" && c.SandboxToken == "" {
		err = multierr.Append(err, errors.New("either APIKey or SandboxToken must be set"))
	}
	if c.OnboardingURL == "" {
		err = multierr.Append(err, errors.New("OnboardingURL must not be empty"))
	}
	if c.SandboxURL == "" {
		err = multierr.Append(err, errors.New("SandboxURL must not be empty"))
	}
	if c.FaceURL == "" {
		err = multierr.Append(err, errors.New("FaceURL must not be empty"))
	}
	if c.Timeout < 0 {
		err = multierr.Append(err, errors.New("Timeout must not be negative"))
	}
	return err
}
