package llm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fift2939-create/ather1/internal/locale"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ATHAR_CONFIG", "ATHAR_LLM_PROVIDER", "ATHAR_LLM_MODEL", "ATHAR_LLM_ENDPOINT",
		"ATHAR_LLM_TIMEOUT_MS", "ATHAR_LLM_IDEAS_TIMEOUT_MS", "ATHAR_LLM_PROPOSAL_TIMEOUT_MS",
		"ATHAR_LLM_LOG_CALLS", "ATHAR_LANG", "ATHAR_API_KEY", "API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func missingPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.yaml")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig(missingPath(t))
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, locale.Arabic, cfg.Language)
	assert.Equal(t, "gemini-3-flash-preview", cfg.ModelFor(TaskIdeas))
	assert.Equal(t, "gemini-3-pro-preview", cfg.ModelFor(TaskProposal))
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.EffectiveEndpoint())
	assert.False(t, cfg.HasCredential())
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
provider: groq
api_key: from-file
language: en
tasks:
  proposal:
    model: custom-pro
    timeout_ms: 90000
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ProviderGroq, cfg.Provider)
	assert.Equal(t, "from-file", cfg.APIKey)
	assert.Equal(t, locale.English, cfg.Language)
	assert.Equal(t, "custom-pro", cfg.ModelFor(TaskProposal))
	assert.Equal(t, "llama-3.1-8b-instant", cfg.ModelFor(TaskIdeas))
	assert.Equal(t, 90000, cfg.TaskTimeout(TaskProposal))
	assert.Equal(t, 0.4, cfg.Tasks[TaskProposal].Temperature, "unset file fields keep defaults")

	t.Setenv("ATHAR_API_KEY", "from-env")
	t.Setenv("ATHAR_LLM_PROPOSAL_TIMEOUT_MS", "1000")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, 1000, cfg.TaskTimeout(TaskProposal))
}

func TestLoadConfig_ConfigPathFromEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: ollama\n"), 0o600))
	t.Setenv("ATHAR_CONFIG", path)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.True(t, cfg.HasCredential(), "ollama runs without a key")
}

func TestLoadConfig_APIKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "fallback")
	cfg, err := LoadConfig(missingPath(t))
	require.NoError(t, err)
	assert.Equal(t, "fallback", cfg.APIKey)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ATHAR_LLM_PROVIDER", "OpenRouter")
	t.Setenv("ATHAR_LLM_MODEL", "m1")
	t.Setenv("ATHAR_LLM_TIMEOUT_MS", "9000")
	t.Setenv("ATHAR_LLM_IDEAS_TIMEOUT_MS", "not-a-number")
	t.Setenv("ATHAR_LANG", "english")

	cfg, err := LoadConfig(missingPath(t))
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	assert.Equal(t, "m1", cfg.ModelFor(TaskIdeas))
	assert.Equal(t, "m1", cfg.ModelFor(TaskProposal))
	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 60000, cfg.TaskTimeout(TaskIdeas), "invalid override ignored")
	assert.Equal(t, locale.English, cfg.Language)
}

func TestLoadConfig_UnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("ATHAR_LLM_PROVIDER", "claude-in-a-box")
	_, err := LoadConfig(missingPath(t))
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [unclosed"), 0o600))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tasks = map[TaskType]TaskConfig{}
	cfg.TimeoutMs = 1234
	assert.Equal(t, 1234, cfg.TaskTimeout(TaskIdeas))
}

func TestRequireCredential(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.RequireCredential(locale.English)
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Equal(t, locale.English.Labels().SetupSteps, ce.Steps)
	assert.NotEmpty(t, ce.Title)

	arErr := cfg.RequireCredential(locale.Arabic)
	require.ErrorAs(t, arErr, &ce)
	assert.Equal(t, locale.Arabic.Labels().SetupSteps, ce.Steps)

	assert.NoError(t, cfg.WithAPIKey("  k  ").RequireCredential(locale.English))
	assert.Equal(t, "k", cfg.WithAPIKey("  k  ").APIKey)
}

func TestRedacted(t *testing.T) {
	cfg := DefaultConfig().WithAPIKey("secret")
	r := cfg.Redacted()
	assert.Equal(t, "********", r.APIKey)
	assert.Equal(t, "gemini-3-pro-preview", r.Tasks[TaskProposal].Model)
	assert.Equal(t, "secret", cfg.APIKey, "original untouched")
	assert.Empty(t, cfg.Tasks[TaskProposal].Model, "original task map untouched")
}
