// Package config loads runtime configuration from the process environment
// and handles the XDG configuration directory for stored credentials.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "tasktalk"

	// OAuthClientFile is the OAuth client credentials filename for the
	// Google Tasks backend.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Task-store backends.
const (
	BackendTodoist     = "todoist"
	BackendGoogleTasks = "googletasks"
)

// LLM providers.
const (
	ProviderGoogle = "googleai"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Config holds all runtime configuration. It is constructed once at startup
// and passed explicitly to every component that needs it.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Backend selects the task store: todoist (default) or googletasks.
	Backend string

	// TodoistToken is the Todoist API token.
	TodoistToken string

	// Provider selects the LLM provider: googleai (default), openai, ollama.
	Provider string

	// Model is the model name for the selected provider.
	Model string

	// APIKey is the LLM provider key. Unused by ollama.
	APIKey string

	// ServerURL is the Ollama server URL, optional.
	ServerURL string

	// LogLevel is the structured-log level; empty means warnings and up.
	LogLevel string
}

// Load builds a Config from the process environment. A .env file in the
// working directory is read first when present, matching how the keys are
// usually provisioned.
func Load() (*Config, error) {
	_ = godotenv.Load() // missing .env is fine

	cfg := &Config{
		Dir:          DefaultConfigDir(),
		Backend:      envOr("TASKTALK_BACKEND", BackendTodoist),
		TodoistToken: os.Getenv("TODOIST_API_KEY"),
		Provider:     envOr("TASKTALK_PROVIDER", ProviderGoogle),
		ServerURL:    os.Getenv("OLLAMA_HOST"),
		LogLevel:     os.Getenv("TASKTALK_LOG_LEVEL"),
	}
	cfg.Model = envOr("TASKTALK_MODEL", defaultModel(cfg.Provider))

	switch cfg.Provider {
	case ProviderGoogle:
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	case ProviderOpenAI:
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate reports fatal configuration gaps before the session starts.
func (c *Config) validate() error {
	switch c.Backend {
	case BackendTodoist:
		if c.TodoistToken == "" {
			return fmt.Errorf("TODOIST_API_KEY is required for the %s backend", BackendTodoist)
		}
	case BackendGoogleTasks:
		// Credential files are checked when the backend is constructed.
	default:
		return fmt.Errorf("unknown backend: %s", c.Backend)
	}

	switch c.Provider {
	case ProviderGoogle:
		if c.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the %s provider", ProviderGoogle)
		}
	case ProviderOpenAI:
		if c.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the %s provider", ProviderOpenAI)
		}
	case ProviderOllama:
		// Local server, no key.
	default:
		return fmt.Errorf("unknown LLM provider: %s", c.Provider)
	}
	return nil
}

func defaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o"
	case ProviderOllama:
		return "llama3"
	default:
		return "gemini-2.5-flash"
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}
