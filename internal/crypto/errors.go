package crypto

import (
	"errors"
	"fmt"
)

// Error represents a structured error from the crypto package
type Error interface {
	error
	Code() ErrorCode
	Unwrap() error
}

type ErrorCode string

const (
	ErrCodeParse          ErrorCode = "parse_error"
	ErrCodeMalformedInput ErrorCode = "malformed_input"
	ErrCodeIO             ErrorCode = "io_error"
	ErrCodeEncoding       ErrorCode = "encoding_error"
)

// CryptoError represents a structured error from the crypto package
type CryptoError struct {

	// code is the error code
	code ErrorCode

	// message is a human-readable error message
	message string

	// wrapped is the optional underlying error
	wrapped error
}

func (e *CryptoError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *CryptoError) Code() ErrorCode { return e.code }
func (e *CryptoError) Unwrap() error   { return e.wrapped }

// NewParseError creates a parse error.
// Use this when the input is not valid JSON: syntax errors, invalid UTF-8,
// empty documents or trailing data after the top-level value.
//
// The returned error will have code ErrCodeParse.
func NewParseError(msg string) error {
	return &CryptoError{code: ErrCodeParse, message: msg}
}

// WrapParseError wraps an existing error as a parse error.
//
// The returned error will have code ErrCodeParse.
func WrapParseError(err error, msg string) error {
	return &CryptoError{code: ErrCodeParse, message: msg, wrapped: err}
}

// NewMalformedInputError creates a malformed input error.
// Use this for documents that are valid JSON but cannot be canonicalized:
// duplicate object names, non-finite numbers or unsupported value types.
// Digest mismatches and badly formatted digests are also reported with this code.
//
// The returned error will have code ErrCodeMalformedInput.
func NewMalformedInputError(msg string) error {
	return &CryptoError{code: ErrCodeMalformedInput, message: msg}
}

// WrapMalformedInputError wraps an existing error as a malformed input error.
//
// The returned error will have code ErrCodeMalformedInput.
func WrapMalformedInputError(err error, msg string) error {
	return &CryptoError{code: ErrCodeMalformedInput, message: msg, wrapped: err}
}

// NewIOError creates an I/O error.
// Use this when a document cannot be read or exceeds the configured size limit.
//
// The returned error will have code ErrCodeIO.
func NewIOError(msg string) error {
	return &CryptoError{code: ErrCodeIO, message: msg}
}

// WrapIOError wraps an existing error as an I/O error.
//
// The returned error will have code ErrCodeIO.
func WrapIOError(err error, msg string) error {
	return &CryptoError{code: ErrCodeIO, message: msg, wrapped: err}
}

// NewEncodingError creates an encoding error.
// These indicate a broken internal contract (e.g. the encoder produced bytes that are not valid JSON)
// and should not occur.
//
// The returned error will have code ErrCodeEncoding.
func NewEncodingError(msg string) error {
	return &CryptoError{code: ErrCodeEncoding, message: msg}
}

// WrapEncodingError wraps an existing error as an encoding error.
//
// The returned error will have code ErrCodeEncoding.
func WrapEncodingError(err error, msg string) error {
	return &CryptoError{code: ErrCodeEncoding, message: msg, wrapped: err}
}

// CodeOf returns the code of the first CryptoError in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	var cryptoErr *CryptoError
	if errors.As(err, &cryptoErr) {
		return cryptoErr.Code()
	}
	return ""
}
