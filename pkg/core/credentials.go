package core

import "fmt"

// KeyLength is the length of a Binance API key and secret key.
const KeyLength = 64

const keyRule = "omitempty,len=64"

// Credentials holds API authentication credentials for an exchange.
// A Credentials value is immutable; either key may be empty.
type Credentials struct {
	apiKey    string
	secretKey string
}

// NewCredentials validates both keys and returns the credentials.
// Each key must be empty or exactly KeyLength characters long.
func NewCredentials(apiKey, secretKey string) (Credentials, error) {
	if err := validate.Var(apiKey, keyRule); err != nil {
		return Credentials{}, NewFieldError(ErrCodeInvalidArgument, "apiKey", "bad key format "+maskKey(apiKey))
	}
	if err := validate.Var(secretKey, keyRule); err != nil {
		return Credentials{}, NewFieldError(ErrCodeInvalidArgument, "secretKey", "bad key format "+maskKey(secretKey))
	}
	return Credentials{apiKey: apiKey, secretKey: secretKey}, nil
}

// APIKey returns the public API key identifier.
func (c Credentials) APIKey() string {
	return c.apiKey
}

// SecretKey returns the private key used for signing requests.
func (c Credentials) SecretKey() string {
	return c.secretKey
}

// HasAPIKey reports whether an API key is configured.
func (c Credentials) HasAPIKey() bool {
	return c.apiKey != ""
}

// RequireAPIKey returns a CREDENTIALS_REQUIRED error when no API key is configured.
func (c Credentials) RequireAPIKey() error {
	if c.apiKey == "" {
		return NewError(ErrCodeCredentialsRequired, "API key required")
	}
	return nil
}

// RequireSigned checks everything a signed endpoint needs: an API key and a secret key.
func (c Credentials) RequireSigned() error {
	if err := c.RequireAPIKey(); err != nil {
		return err
	}
	if c.secretKey == "" {
		return NewError(ErrCodeCredentialsRequired, "secret key required")
	}
	return nil
}

func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{APIKey:%s, SecretKey:%s}", maskKey(c.apiKey), maskKey(c.secretKey))
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
