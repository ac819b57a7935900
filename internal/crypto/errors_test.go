package crypto

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

// check to ensure error code handling has not been broken
func TestCryptoError_Code(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode ErrorCode
	}{
		{"parse", NewParseError("test"), ErrCodeParse},
		{"parse_wrapped", WrapParseError(io.ErrUnexpectedEOF, "test"), ErrCodeParse},
		{"malformed_input", NewMalformedInputError("test"), ErrCodeMalformedInput},
		{"malformed_input_wrapped", WrapMalformedInputError(io.EOF, "test"), ErrCodeMalformedInput},
		{"io", NewIOError("test"), ErrCodeIO},
		{"io_wrapped", WrapIOError(io.EOF, "test"), ErrCodeIO},
		{"encoding", NewEncodingError("test"), ErrCodeEncoding},
		{"encoding_wrapped", WrapEncodingError(io.EOF, "test"), ErrCodeEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cryptoErr *CryptoError
			if !errors.As(tt.err, &cryptoErr) {
				t.Fatal("error is not a CryptoError")
			}
			if cryptoErr.Code() != tt.wantCode {
				t.Errorf("Code() = %q, want %q", cryptoErr.Code(), tt.wantCode)
			}
		})
	}
}

func TestCryptoError_Unwrap(t *testing.T) {
	err := WrapIOError(io.ErrUnexpectedEOF, "failed to read document")
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("errors.Is() did not find the wrapped error")
	}
	if got, want := err.Error(), "failed to read document: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("proof.json: %w", NewMalformedInputError("duplicate object name"))
	if got := CodeOf(wrapped); got != ErrCodeMalformedInput {
		t.Errorf("CodeOf() = %q, want %q", got, ErrCodeMalformedInput)
	}
	if got := CodeOf(io.EOF); got != "" {
		t.Errorf("CodeOf() = %q, want empty code for a plain error", got)
	}
	if got := CodeOf(nil); got != "" {
		t.Errorf("CodeOf(nil) = %q, want empty code", got)
	}
}
