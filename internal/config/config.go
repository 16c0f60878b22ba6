package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/substrate-dev/sandbox-agent/internal/errors"
)

// Provider selects the provisioning client implementation.
type Provider string

const (
	// ProviderMock serves canned responses; the default, since no live
	// provisioning endpoint is required to run the agent.
	ProviderMock Provider = "mock"

	// ProviderHTTP talks to a real provisioning API over REST.
	ProviderHTTP Provider = "http"
)

// Environment variable names. A .env file in the working directory is
// loaded first when present.
const (
	EnvHostURL           = "SANDBOX_AGENT_HOST_URL"
	EnvAPIURL            = "SANDBOX_AGENT_API_URL"
	EnvAPIKey            = "SANDBOX_AGENT_API_KEY"
	EnvProvider          = "SANDBOX_AGENT_PROVIDER"
	EnvAPITimeout        = "SANDBOX_AGENT_API_TIMEOUT"
	EnvSessionTimeout    = "SANDBOX_AGENT_SESSION_TIMEOUT"
	EnvHeartbeatInterval = "SANDBOX_AGENT_HEARTBEAT_INTERVAL"
)

// Defaults for the messaging host and the provisioning API.
const (
	DefaultHostURL           = "http://localhost:8080"
	DefaultAPIURL            = "http://localhost:8090"
	DefaultAPITimeout        = 60 * time.Second
	DefaultSessionTimeout    = time.Hour
	DefaultHeartbeatInterval = 30 * time.Second
)

// Config holds the runtime configuration for the agent process.
type Config struct {
	// HostURL is the inter-agent messaging host endpoint.
	HostURL string

	// APIURL is the sandbox provisioning API endpoint.
	APIURL string

	// APIKey authenticates provisioning API requests when set.
	APIKey string

	// Provider selects mock or HTTP provisioning.
	Provider Provider

	// APITimeout bounds individual provisioning requests.
	APITimeout time.Duration

	// SessionTimeout bounds an inter-agent messaging session.
	SessionTimeout time.Duration

	// HeartbeatInterval is the agent directory refresh period.
	HeartbeatInterval time.Duration
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HostURL:           DefaultHostURL,
		APIURL:            DefaultAPIURL,
		Provider:          ProviderMock,
		APITimeout:        DefaultAPITimeout,
		SessionTimeout:    DefaultSessionTimeout,
		HeartbeatInterval: DefaultHeartbeatInterval,
	}
}

// Load builds a Config from the environment, starting from the defaults.
// A .env file in the working directory is honored when present; explicit
// environment variables win over it.
func Load() (*Config, error) {
	// godotenv does not overwrite variables that are already set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.ConfigError("failed to load .env file", err)
	}

	cfg := Default()

	if v := os.Getenv(EnvHostURL); v != "" {
		cfg.HostURL = v
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvProvider); v != "" {
		cfg.Provider = Provider(strings.ToLower(v))
	}

	var err error
	if cfg.APITimeout, err = durationFromEnv(EnvAPITimeout, cfg.APITimeout); err != nil {
		return nil, err
	}
	if cfg.SessionTimeout, err = durationFromEnv(EnvSessionTimeout, cfg.SessionTimeout); err != nil {
		return nil, err
	}
	if cfg.HeartbeatInterval, err = durationFromEnv(EnvHeartbeatInterval, cfg.HeartbeatInterval); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.ConfigError(fmt.Sprintf("invalid duration in %s: %q", key, v), err)
	}
	return d, nil
}

// Validate checks that the Config is usable.
func (c *Config) Validate() error {
	if err := validateURL("host url", c.HostURL); err != nil {
		return err
	}
	if err := validateURL("api url", c.APIURL); err != nil {
		return err
	}
	switch c.Provider {
	case ProviderMock, ProviderHTTP:
	default:
		return errors.ConfigError(fmt.Sprintf("unknown provider %q (must be mock or http)", c.Provider), nil)
	}
	if c.APITimeout <= 0 {
		return errors.ConfigError("api timeout must be positive", nil)
	}
	if c.SessionTimeout <= 0 {
		return errors.ConfigError("session timeout must be positive", nil)
	}
	if c.HeartbeatInterval <= 0 {
		return errors.ConfigError("heartbeat interval must be positive", nil)
	}
	return nil
}

func validateURL(what, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.ConfigError(fmt.Sprintf("invalid %s %q", what, raw), err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.ConfigError(fmt.Sprintf("invalid %s %q: scheme must be http or https", what, raw), nil)
	}
	if u.Host == "" {
		return errors.ConfigError(fmt.Sprintf("invalid %s %q: missing host", what, raw), nil)
	}
	return nil
}

// sandboxNameRegex validates sandbox names. Names must start with a
// lowercase letter or digit, followed by lowercase letters, digits,
// underscores, or hyphens. Maximum length is 63 characters.
var sandboxNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidateSandboxName checks if a sandbox name is valid.
func ValidateSandboxName(name string) error {
	if name == "" {
		return errors.InvalidArgument("sandbox name cannot be empty")
	}
	if !sandboxNameRegex.MatchString(name) {
		return errors.InvalidArgument(fmt.Sprintf(
			"invalid sandbox name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, underscores, or hyphens, and be at most 63 characters", name))
	}
	return nil
}
