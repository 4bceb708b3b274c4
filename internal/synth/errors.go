package synth

import (
	"errors"
	"fmt"
)

// TransferErrorCode categorizes boundary transfer failures.
type TransferErrorCode string

const (
	// ErrCodeEncodeFailed indicates the request tree could not be encoded.
	ErrCodeEncodeFailed TransferErrorCode = "ENCODE_FAILED"

	// ErrCodeEngineFailed indicates the engine call itself failed.
	ErrCodeEngineFailed TransferErrorCode = "ENGINE_FAILED"

	// ErrCodeDecodeFailed indicates the engine's reply was malformed.
	ErrCodeDecodeFailed TransferErrorCode = "DECODE_FAILED"

	// ErrCodeLogFailed indicates the transfer could not be recorded.
	ErrCodeLogFailed TransferErrorCode = "LOG_FAILED"
)

// TransferError is a fatal boundary transfer failure. Construction and
// transfer are deterministic and idempotent for identical inputs, so a
// caller may retry safely, but this layer never retries on its own.
type TransferError struct {
	Code    TransferErrorCode
	Token   string // session token of the failed transfer
	Message string
	Err     error // underlying cause, optional
}

// Error implements the error interface.
func (e *TransferError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (session=%s): %v", e.Code, e.Message, e.Token, e.Err)
	}
	return fmt.Sprintf("%s: %s (session=%s)", e.Code, e.Message, e.Token)
}

// Unwrap returns the underlying cause.
func (e *TransferError) Unwrap() error {
	return e.Err
}

// IsTransferError reports whether err is (or wraps) a TransferError with
// the given code.
func IsTransferError(err error, code TransferErrorCode) bool {
	var te *TransferError
	if errors.As(err, &te) {
		return te.Code == code
	}
	return false
}

func transferErr(code TransferErrorCode, token, message string, err error) *TransferError {
	return &TransferError{Code: code, Token: token, Message: message, Err: err}
}
