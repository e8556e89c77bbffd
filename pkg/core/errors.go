package core

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Error is a synchronous call-site failure raised before any request is sent.
type Error struct {
	// Code categorizes the failure.
	Code ErrorCode `json:"code"`
	// Field names the offending parameter, if any.
	Field string `json:"field,omitempty"`
	// Message is the human-readable description.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the sentinel matching the error code.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates an Error without a field.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewFieldError creates an Error naming the offending field.
func NewFieldError(code ErrorCode, field, message string) *Error {
	return &Error{Code: code, Field: field, Message: message}
}

// ErrorType classifies a transport failure by what the HTTP layer reported.
type ErrorType int

// Error type constants. They are derived from the HTTP status or the network
// error only; Binance error codes are carried verbatim and never interpreted.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeNetwork indicates a network connectivity issue.
	ErrorTypeNetwork
	// ErrorTypeTimeout indicates the request exceeded its deadline.
	ErrorTypeTimeout
	// ErrorTypeRateLimit indicates an HTTP 418 or 429.
	ErrorTypeRateLimit
	// ErrorTypeAuthentication indicates an HTTP 401 or 403.
	ErrorTypeAuthentication
	// ErrorTypeBadRequest indicates an HTTP 400.
	ErrorTypeBadRequest
	// ErrorTypeNotFound indicates an HTTP 404.
	ErrorTypeNotFound
	// ErrorTypeServerError indicates an HTTP 5xx.
	ErrorTypeServerError
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"NETWORK",
		"TIMEOUT",
		"RATE_LIMIT",
		"AUTHENTICATION",
		"BAD_REQUEST",
		"NOT_FOUND",
		"SERVER_ERROR",
	}[t]
}

// ErrorTypeFromStatus maps an HTTP status code to an ErrorType.
func ErrorTypeFromStatus(statusCode int) ErrorType {
	switch {
	case statusCode >= 500:
		return ErrorTypeServerError
	case statusCode == 429 || statusCode == 418:
		return ErrorTypeRateLimit
	case statusCode == 401 || statusCode == 403:
		return ErrorTypeAuthentication
	case statusCode == 400:
		return ErrorTypeBadRequest
	case statusCode == 404:
		return ErrorTypeNotFound
	default:
		return ErrorTypeUnknown
	}
}

// ExchangeError represents a failed HTTP exchange with the API.
// It wraps either a network error (StatusCode 0) or a non-2xx response.
type ExchangeError struct {
	// Type categorizes the failure for programmatic handling.
	Type ErrorType `json:"type"`
	// StatusCode is the HTTP status code, or 0 when no response arrived.
	StatusCode int `json:"status_code"`
	// Code is the Binance error code from the response body, if present.
	Code int `json:"code,omitempty"`
	// Message is the Binance error message or the raw body.
	Message string `json:"message"`
	// Exchange identifies which exchange returned this error.
	Exchange string `json:"exchange"`
	// Timestamp is when the error occurred.
	Timestamp time.Time `json:"timestamp"`

	cause error
}

// Error implements the error interface for ExchangeError.
func (e *ExchangeError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("[%s] %s (%d/%d): %s",
			e.Exchange, e.Type, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (%d): %s",
		e.Exchange, e.Type, e.StatusCode, e.Message)
}

// Unwrap exposes both ErrTransport and the underlying network error, if any.
func (e *ExchangeError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrTransport, e.cause}
	}
	return []error{ErrTransport}
}

// NewExchangeError creates an ExchangeError for a non-2xx response.
// The timestamp is automatically set to the current time.
func NewExchangeError(exchange string, statusCode, code int, message string) *ExchangeError {
	return &ExchangeError{
		Type:       ErrorTypeFromStatus(statusCode),
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Exchange:   exchange,
		Timestamp:  time.Now(),
	}
}

// NewNetworkError creates an ExchangeError for a request that got no response.
func NewNetworkError(exchange string, cause error) *ExchangeError {
	errType := ErrorTypeNetwork
	if isTimeout(cause) {
		errType = ErrorTypeTimeout
	}
	return &ExchangeError{
		Type:      errType,
		Message:   cause.Error(),
		Exchange:  exchange,
		Timestamp: time.Now(),
		cause:     cause,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// IsNetworkError returns true if the error is a network connectivity issue.
func IsNetworkError(err error) bool {
	return hasErrorType(err, ErrorTypeNetwork)
}

// IsTimeoutError returns true if the request exceeded its deadline.
func IsTimeoutError(err error) bool {
	return hasErrorType(err, ErrorTypeTimeout)
}

// IsRateLimitError returns true if the API rejected the request for exceeding limits.
func IsRateLimitError(err error) bool {
	return hasErrorType(err, ErrorTypeRateLimit)
}

// IsAuthenticationError returns true if the API rejected the credentials.
func IsAuthenticationError(err error) bool {
	return hasErrorType(err, ErrorTypeAuthentication)
}

func hasErrorType(err error, t ErrorType) bool {
	var exErr *ExchangeError
	if errors.As(err, &exErr) {
		return exErr.Type == t
	}
	return false
}
