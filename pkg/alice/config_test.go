package alice

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, DefaultOnboardingURL, config.OnboardingURL)
	assert.Equal(t, DefaultSandboxURL, config.SandboxURL)
	assert.Equal(t, DefaultFaceURL, config.FaceURL)
	assert.Equal(t, DefaultTimeout, config.Timeout)
	assert.True(t, config.SendAgent)
	assert.False(t, config.UseCache)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ALICE_API_KEY", "key-from-env")
	t.Setenv("ALICE_ONBOARDING_URL", "https://staging.example.com/onboarding")
	t.Setenv("ALICE_TIMEOUT", "30s")
	t.Setenv("ALICE_USE_CACHE", "true")

	config := FromEnv()
	assert.Equal(t, "key-from-env", config.APIKey)
	assert.Equal(t, "https://staging.example.com/onboarding", config.OnboardingURL)
	assert.Equal(t, DefaultSandboxURL, config.SandboxURL)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.True(t, config.UseCache)
}

func TestNormalizedFillsEmptyFields(t *testing.T) {
	config := Config{APIKey: "key"}.Normalized()
	assert.Equal(t, DefaultOnboardingURL, config.OnboardingURL)
	assert.Equal(t, DefaultSandboxURL, config.SandboxURL)
	assert.Equal(t, DefaultFaceURL, config.FaceURL)
	assert.Equal(t, DefaultTimeout, config.Timeout)
	assert.Equal(t, "key", config.APIKey)
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.APIKey = "key"
	require.NoError(t, valid.Validate())

	sandboxOnly := DefaultConfig()
	sandboxOnly.SandboxToken = "token"
	require.NoError(t, sandboxOnly.Validate())
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	config := Config{Timeout: -time.Second}

	err := config.Validate()
	require.Error(t, err)

	problems := multierr.Errors(err)
	assert.Len(t, problems, 5)
	assert.True(t, strings.Contains(err.Error(), "APIKey"))
	assert.True(t, strings.Contains(err.Error(), "Timeout"))
}

func TestUserAgent(t *testing.T) {
	agent := UserAgent()
	assert.True(t, strings.HasPrefix(agent, "onboarding-go/"+Version))
	assert.Contains(t, agent, "go ")
}
