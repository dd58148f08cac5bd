package pinecone

import (
	"os"
	"time"
)

// Default hosts for the two control-plane API generations.
const (
	// DefaultAPIHost is the fixed global control-plane host used by the
	// current API generation for index and collection lifecycle calls.
	DefaultAPIHost = "https://api.pinecone.io"

	// legacyControllerHostFormat is the environment-scoped controller host
	// template used by the legacy API generation. Only whoami still
	// addresses it.
	legacyControllerHostFormat = "https://controller.%s.pinecone.io"
)

// Config holds the process-wide settings for the Pinecone client.
//
// It is constructed once (typically from environment variables via
// NewConfigFromEnv) and treated as immutable afterwards. Per-call overrides
// are applied as a plain merge through CallOption values, never by mutating
// the Config.
//
// Example:
//
//	cfg := pinecone.DefaultConfig().
//	    WithAPIKey(os.Getenv("PINECONE_API_KEY")).
//	    WithEnvironment("us-east1-gcp")
type Config struct {
	// APIKey authenticates every request via the Api-Key header.
	APIKey string `yaml:"api_key" envconfig:"PINECONE_API_KEY"`

	// Environment is the legacy region string, e.g. "us-east1-gcp".
	// Only the legacy controller host (whoami) interpolates it.
	Environment string `yaml:"environment" envconfig:"PINECONE_ENVIRONMENT"`

	// ProjectName scopes legacy API generations. Unused by the current
	// generation; kept for compatibility.
	ProjectName string `yaml:"project_name" envconfig:"PINECONE_PROJECT_NAME"`

	// APIHost overrides the global control-plane host. Defaults to
	// DefaultAPIHost. Primarily useful for pointing tests at a local server.
	APIHost string `yaml:"api_host" envconfig:"PINECONE_CONTROLLER_HOST"`

	// Timeout is applied to the default HTTP client when none is injected.
	Timeout time.Duration `yaml:"timeout" envconfig:"PINECONE_TIMEOUT"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		APIHost: DefaultAPIHost,
		Timeout: 30 * time.Second,
	}
}

// NewConfigFromEnv reads the process-wide defaults from the environment:
// PINECONE_API_KEY, PINECONE_ENVIRONMENT, PINECONE_PROJECT_NAME and the
// optional PINECONE_CONTROLLER_HOST override.
func NewConfigFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.APIKey = os.Getenv("PINECONE_API_KEY")
	cfg.Environment = os.Getenv("PINECONE_ENVIRONMENT")
	cfg.ProjectName = os.Getenv("PINECONE_PROJECT_NAME")

	if host := os.Getenv("PINECONE_CONTROLLER_HOST"); host != "" {
		cfg.APIHost = host
	}

	return cfg
}

// Builder-style helpers (optional, ergonomic)
func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

func (c *Config) WithEnvironment(env string) *Config {
	c.Environment = env
	return c
}

func (c *Config) WithProjectName(name string) *Config {
	c.ProjectName = name
	return c
}

func (c *Config) WithAPIHost(host string) *Config {
	c.APIHost = host
	return c
}

func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

// Validate ensures required fields are present.
//
// Environment is deliberately not required here: only the legacy whoami
// operation needs it, and it checks at call time.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// resolvedConfig is the effective configuration of a single operation:
// the process-wide Config merged with any per-call overrides.
type resolvedConfig struct {
	apiKey      string
	environment string
	projectName string
	apiHost     string
}

// CallOption overrides one configuration field for a single operation.
type CallOption func(*resolvedConfig)

// WithCallAPIKey overrides the API key for one call.
func WithCallAPIKey(key string) CallOption {
	return func(rc *resolvedConfig) {
		if key != "" {
			rc.apiKey = key
		}
	}
}

// WithCallEnvironment overrides the legacy environment for one call.
func WithCallEnvironment(env string) CallOption {
	return func(rc *resolvedConfig) {
		if env != "" {
			rc.environment = env
		}
	}
}

// resolve merges per-call overrides over the process-wide defaults.
// The merge is recomputed on every operation; the Config itself is never
// mutated.
func (c *Client) resolve(opts ...CallOption) resolvedConfig {
	rc := resolvedConfig{
		apiKey:      c.cfg.APIKey,
		environment: c.cfg.Environment,
		projectName: c.cfg.ProjectName,
		apiHost:     c.cfg.APIHost,
	}
	if rc.apiHost == "" {
		rc.apiHost = DefaultAPIHost
	}

	for _, opt := range opts {
		opt(&rc)
	}

	return rc
}
