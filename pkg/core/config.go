package core

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// ProductionURL is the Binance REST API base URL.
	ProductionURL = "https://api.binance.com/"
	// SandboxURL is the Binance spot testnet base URL.
	SandboxURL = "https://testnet.binance.vision/"
)

// Config contains all configuration options for a client.
// It includes the endpoint, credentials, networking and logging settings.
type Config struct {
	// BaseURL overrides the URL selected by Sandbox when non-empty.
	BaseURL string `json:"base_url" validate:"omitempty,url"`
	Sandbox bool   `json:"sandbox"`

	APIKey    string `json:"api_key" validate:"omitempty,len=64"`
	SecretKey string `json:"secret_key" validate:"omitempty,len=64"`

	// Timeout is the maximum duration for HTTP requests. When set it is also
	// sent as recvWindow on signed requests. Zero disables both.
	Timeout time.Duration     `json:"timeout" validate:"min=0"`
	Headers map[string]string `json:"headers,omitempty"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=trace debug info warn error disabled"`
}

// DefaultConfig returns a Config pointing at the production API with no
// credentials, no timeout and info level logging.
func DefaultConfig() *Config {
	return &Config{
		Sandbox:  false,
		LogLevel: "info",
	}
}

var validate = validator.New()

// Validate checks the config. Failures are INVALID_ARGUMENT errors.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return NewError(ErrCodeInvalidArgument, fmt.Sprintf("invalid config: %v", err))
	}
	return nil
}

// ResolvedBaseURL returns BaseURL if set, otherwise the production or sandbox URL.
func (c *Config) ResolvedBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if c.Sandbox {
		return SandboxURL
	}
	return ProductionURL
}

// Credentials builds the immutable credentials value from the configured keys.
func (c *Config) Credentials() (Credentials, error) {
	return NewCredentials(c.APIKey, c.SecretKey)
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(apiKey, secretKey string) *Config {
	c.APIKey = apiKey
	c.SecretKey = secretKey
	return c
}

// WithSandbox enables or disables sandbox mode and returns the config for chaining.
func (c *Config) WithSandbox(sandbox bool) *Config {
	c.Sandbox = sandbox
	return c
}

// WithBaseURL sets an explicit base URL and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithHeader adds a default header and returns the config for chaining.
func (c *Config) WithHeader(key, value string) *Config {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	c.Headers[key] = value
	return c
}

// WithLogLevel sets the log level and returns the config for chaining.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}
