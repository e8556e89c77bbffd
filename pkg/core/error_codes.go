package core

import "errors"

// ErrorCode represents a machine-readable failure category.
// Error codes provide a stable way to branch on failures without string matching.
type ErrorCode string

// Error code constants cover every failure a client call can produce.
const (
	// ErrCodeInvalidArgument indicates malformed call-site input.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeMissingRequiredField indicates a required parameter is absent or blank.
	ErrCodeMissingRequiredField ErrorCode = "MISSING_REQUIRED_FIELD"
	// ErrCodeWrongType indicates a parameter does not have the expected scalar type.
	ErrCodeWrongType ErrorCode = "WRONG_TYPE"
	// ErrCodeInvalidEnumValue indicates a parameter is outside its allowed token set.
	ErrCodeInvalidEnumValue ErrorCode = "INVALID_ENUM_VALUE"
	// ErrCodeCredentialsRequired indicates the call needs an API key or secret key.
	ErrCodeCredentialsRequired ErrorCode = "CREDENTIALS_REQUIRED"
	// ErrCodeTransport indicates the HTTP exchange with the API failed.
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"
)

// Sentinel errors, one per error code. Every error produced by this module
// matches exactly one of them under errors.Is.
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrWrongType            = errors.New("wrong type")
	ErrInvalidEnumValue     = errors.New("invalid enum value")
	ErrCredentialsRequired  = errors.New("credentials required")
	ErrTransport            = errors.New("transport error")
)

func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeMissingRequiredField:
		return ErrMissingRequiredField
	case ErrCodeWrongType:
		return ErrWrongType
	case ErrCodeInvalidEnumValue:
		return ErrInvalidEnumValue
	case ErrCodeCredentialsRequired:
		return ErrCredentialsRequired
	case ErrCodeTransport:
		return ErrTransport
	default:
		return nil
	}
}

// IsErrorCode checks if the error matches the specified error code.
// It inspects both *Error and *ExchangeError values anywhere in the chain.
func IsErrorCode(err error, code ErrorCode) bool {
	var callErr *Error
	if errors.As(err, &callErr) {
		return callErr.Code == code
	}
	var exErr *ExchangeError
	if errors.As(err, &exErr) {
		return code == ErrCodeTransport
	}
	return false
}
