package llm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fift2939-create/ather1/internal/locale"
)

// TaskType identifies the kind of drafting call being made.
type TaskType string

const (
	TaskIdeas    TaskType = "ideas"
	TaskProposal TaskType = "proposal"
)

// Provider names a generative AI backend.
type Provider string

const (
	ProviderGemini     Provider = "gemini"
	ProviderOpenAI     Provider = "openai"
	ProviderGroq       Provider = "groq"
	ProviderOpenRouter Provider = "openrouter"
	ProviderOllama     Provider = "ollama"
)

// Providers lists the supported backends.
func Providers() []Provider {
	return []Provider{ProviderGemini, ProviderOpenAI, ProviderGroq, ProviderOpenRouter, ProviderOllama}
}

// ParseProvider resolves a provider name, case-insensitively.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Providers() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
}

// NeedsCredential reports whether calls to the provider require an API key.
func (p Provider) NeedsCredential() bool {
	return p != ProviderOllama
}

// TaskConfig holds per-task generation parameters. Zero values fall back to
// the provider defaults.
type TaskConfig struct {
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
	TimeoutMs   int     `yaml:"timeout_ms"` // overrides global if > 0
}

// Config holds all configuration for the AI subsystem.
type Config struct {
	Provider  Provider                `yaml:"provider"`
	Endpoint  string                  `yaml:"endpoint"`
	APIKey    string                  `yaml:"api_key"`
	TimeoutMs int                     `yaml:"timeout_ms"`
	LogCalls  bool                    `yaml:"log_calls"`
	Language  locale.Language         `yaml:"language"`
	Tasks     map[TaskType]TaskConfig `yaml:"tasks"`
}

type providerDefaults struct {
	endpoint string
	models   map[TaskType]string
}

var defaultsByProvider = map[Provider]providerDefaults{
	ProviderGemini: {
		endpoint: "https://generativelanguage.googleapis.com/v1beta",
		models:   map[TaskType]string{TaskIdeas: "gemini-3-flash-preview", TaskProposal: "gemini-3-pro-preview"},
	},
	ProviderOpenAI: {
		endpoint: "https://api.openai.com/v1",
		models:   map[TaskType]string{TaskIdeas: "gpt-4o-mini", TaskProposal: "gpt-4o"},
	},
	ProviderGroq: {
		endpoint: "https://api.groq.com/openai/v1",
		models:   map[TaskType]string{TaskIdeas: "llama-3.1-8b-instant", TaskProposal: "llama-3.3-70b-versatile"},
	},
	ProviderOpenRouter: {
		endpoint: "https://openrouter.ai/api/v1",
		models:   map[TaskType]string{TaskIdeas: "google/gemini-2.5-flash", TaskProposal: "google/gemini-2.5-pro"},
	},
	ProviderOllama: {
		endpoint: "http://localhost:11434",
		models:   map[TaskType]string{TaskIdeas: "llama3.2", TaskProposal: "llama3.2"},
	},
}

// DefaultConfig returns a Config for the Gemini provider with no credential.
func DefaultConfig() Config {
	return Config{
		Provider:  ProviderGemini,
		TimeoutMs: 60000,
		Language:  locale.Default,
		Tasks: map[TaskType]TaskConfig{
			TaskIdeas:    {Temperature: 0.7, MaxTokens: 2048, TimeoutMs: 60000},
			TaskProposal: {Temperature: 0.4, MaxTokens: 16384, TimeoutMs: 180000},
		},
	}
}

// DefaultConfigPath is ~/.athar/config.yaml, or "" when the home directory
// cannot be resolved.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".athar", "config.yaml")
}

// LoadConfig layers defaults, the YAML file at path (ATHAR_CONFIG or the
// default path when empty; a missing file is not an error) and environment
// overrides, in that order.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("ATHAR_CONFIG")
	}
	if path == "" {
		path = DefaultConfigPath()
	}
	if path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if file.Provider != "" {
		cfg.Provider = file.Provider
	}
	if file.Endpoint != "" {
		cfg.Endpoint = file.Endpoint
	}
	if file.APIKey != "" {
		cfg.APIKey = file.APIKey
	}
	if file.TimeoutMs > 0 {
		cfg.TimeoutMs = file.TimeoutMs
	}
	if file.LogCalls {
		cfg.LogCalls = true
	}
	if file.Language != "" {
		cfg.Language = file.Language
	}
	for task, tc := range file.Tasks {
		merged := cfg.Tasks[task]
		if tc.Model != "" {
			merged.Model = tc.Model
		}
		if tc.Temperature > 0 {
			merged.Temperature = tc.Temperature
		}
		if tc.MaxTokens > 0 {
			merged.MaxTokens = tc.MaxTokens
		}
		if tc.TimeoutMs > 0 {
			merged.TimeoutMs = tc.TimeoutMs
		}
		cfg.Tasks[task] = merged
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("ATHAR_LLM_PROVIDER"); v != "" {
		p, err := ParseProvider(v)
		if err != nil {
			return err
		}
		cfg.Provider = p
	}
	if v := os.Getenv("ATHAR_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ATHAR_LLM_MODEL"); v != "" {
		for _, task := range []TaskType{TaskIdeas, TaskProposal} {
			tc := cfg.Tasks[task]
			tc.Model = v
			cfg.Tasks[task] = tc
		}
	}
	if v := os.Getenv("ATHAR_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ATHAR_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ATHAR_LANG"); v != "" {
		lang, err := locale.Parse(v)
		if err != nil {
			return err
		}
		cfg.Language = lang
	}

	applyTaskTimeoutEnv(cfg, TaskIdeas, "ATHAR_LLM_IDEAS_TIMEOUT_MS")
	applyTaskTimeoutEnv(cfg, TaskProposal, "ATHAR_LLM_PROPOSAL_TIMEOUT_MS")

	if v := os.Getenv("ATHAR_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("API_KEY"); v != "" {
		cfg.APIKey = v
	}
	return nil
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}

// Validate checks the provider and language names.
func (c Config) Validate() error {
	if _, err := ParseProvider(string(c.Provider)); err != nil {
		return err
	}
	if !c.Language.Valid() {
		return fmt.Errorf("%w: %q", locale.ErrUnsupported, c.Language)
	}
	return nil
}

// EffectiveEndpoint returns the configured endpoint or the provider default.
func (c Config) EffectiveEndpoint() string {
	if c.Endpoint != "" {
		return strings.TrimRight(c.Endpoint, "/")
	}
	return defaultsByProvider[c.Provider].endpoint
}

// ModelFor returns the model used for a task.
func (c Config) ModelFor(task TaskType) string {
	if tc, ok := c.Tasks[task]; ok && tc.Model != "" {
		return tc.Model
	}
	return defaultsByProvider[c.Provider].models[task]
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

// HasCredential reports whether the provider can be called.
func (c Config) HasCredential() bool {
	return !c.Provider.NeedsCredential() || strings.TrimSpace(c.APIKey) != ""
}

// RequireCredential returns a *ConfigurationError, with remediation steps in
// lang, when the provider needs a key and none is configured.
func (c Config) RequireCredential(lang locale.Language) error {
	if c.HasCredential() {
		return nil
	}
	labels := lang.Labels()
	return &ConfigurationError{
		Provider: c.Provider,
		Title:    labels.SetupRequired,
		Steps:    labels.SetupSteps,
		Err:      ErrMissingAPIKey,
	}
}

// WithAPIKey returns a copy of c using key as the credential.
func (c Config) WithAPIKey(key string) Config {
	c.APIKey = strings.TrimSpace(key)
	return c
}

// Redacted returns a copy safe to print or serve: the credential is
// replaced by a presence marker.
func (c Config) Redacted() Config {
	if c.APIKey != "" {
		c.APIKey = "********"
	}
	tasks := make(map[TaskType]TaskConfig, len(c.Tasks))
	for k, v := range c.Tasks {
		v.Model = c.ModelFor(k)
		tasks[k] = v
	}
	c.Tasks = tasks
	c.Endpoint = c.EffectiveEndpoint()
	return c
}
