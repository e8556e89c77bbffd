package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvAPIKey    = "BINANCE_API_KEY"
	EnvSecretKey = "BINANCE_SECRET_KEY"
	EnvBaseURL   = "BINANCE_BASE_URL"
	EnvSandbox   = "BINANCE_SANDBOX"
	EnvTimeout   = "BINANCE_TIMEOUT"
	EnvLogLevel  = "BINANCE_LOG_LEVEL"
)

// LoadEnv loads the given dotenv files (".env" when none are given) and builds
// a Config from the environment. Missing files are ignored; variables already
// set in the process environment take precedence over file values.
// BINANCE_TIMEOUT accepts a Go duration ("5s") or plain milliseconds ("5000").
func LoadEnv(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	config := DefaultConfig()
	config.APIKey = os.Getenv(EnvAPIKey)
	config.SecretKey = os.Getenv(EnvSecretKey)
	config.BaseURL = os.Getenv(EnvBaseURL)

	if v := os.Getenv(EnvSandbox); v != "" {
		sandbox, err := strconv.ParseBool(v)
		if err != nil {
			return nil, NewFieldError(ErrCodeInvalidArgument, EnvSandbox, err.Error())
		}
		config.Sandbox = sandbox
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		timeout, err := parseTimeout(v)
		if err != nil {
			return nil, NewFieldError(ErrCodeInvalidArgument, EnvTimeout, err.Error())
		}
		config.Timeout = timeout
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		config.LogLevel = v
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func parseTimeout(v string) (time.Duration, error) {
	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(v)
}
