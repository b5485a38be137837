// Package errors provides the error taxonomy shared by the analysis pipeline
// and the RPC boundary.
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	ErrCodeGeneration    ErrorCode = "GENERATION_ERROR"
	ErrCodeExtraction    ErrorCode = "EXTRACTION_ERROR"
	ErrCodeNoMatch       ErrorCode = "NO_MATCH"
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeTimeout       ErrorCode = "TIMEOUT_ERROR"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// Message prefixes used by the RPC boundary when an error reaches it untyped.
const (
	MsgNoConfiguration = "No endpoint configuration available"
	MsgNoMatch         = "No matching endpoint found"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Details)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithMetadata attaches a diagnostic value and returns the same error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

func newError(code ErrorCode, message, details string, retryable bool, cause error) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

func detailsOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// ==========================
// 2. Error Constructors
// ==========================

// NewConfigurationError reports a missing, empty or unparseable catalog or
// model configuration.
func NewConfigurationError(details string, err error) *StandardError {
	if details == "" {
		details = detailsOf(err)
	}
	return newError(ErrCodeConfiguration, MsgNoConfiguration, details, true, err)
}

// NewGenerationError reports a failed language model call.
func NewGenerationError(provider string, err error) *StandardError {
	return newError(ErrCodeGeneration,
		fmt.Sprintf("Model provider '%s' failed", provider),
		detailsOf(err), true, err)
}

// NewEmptyGenerationError reports a model call that returned no text.
func NewEmptyGenerationError(provider string) *StandardError {
	return newError(ErrCodeGeneration,
		fmt.Sprintf("Model provider '%s' returned an empty response", provider),
		"", true, nil)
}

// NewExtractionError reports model output that holds no usable JSON or answer.
// raw is kept in Metadata for diagnosis.
func NewExtractionError(details, raw string, err error) *StandardError {
	return newError(ErrCodeExtraction, "Failed to extract a usable answer from model output", details, true, err).
		WithMetadata("raw", raw)
}

// NewNoMatchError reports that no catalog endpoint matched the model answer.
func NewNoMatchError(answer string) *StandardError {
	return newError(ErrCodeNoMatch, MsgNoMatch, fmt.Sprintf("answer: %q", answer), true, nil).
		WithMetadata("answer", answer)
}

// NewValidationError reports malformed input. It is never retried.
func NewValidationError(field, details string) *StandardError {
	return newError(ErrCodeValidation,
		fmt.Sprintf("Invalid %s", field),
		details, false, nil)
}

// NewSchemaValidationError reports a document with the wrong shape. Model
// output may differ on the next attempt, so it stays retryable.
func NewSchemaValidationError(subject, details string) *StandardError {
	return newError(ErrCodeValidation, fmt.Sprintf("%s failed validation", subject), details, true, nil)
}

func NewTimeoutError(stage string, err error) *StandardError {
	return newError(ErrCodeTimeout,
		fmt.Sprintf("Stage '%s' timed out", stage),
		detailsOf(err), true, err)
}

func NewInternalError(err error) *StandardError {
	return newError(ErrCodeInternal, "Unexpected error", detailsOf(err), false, err)
}

// ==========================
// 3. Utility Functions
// ==========================

// AsStandard returns the first StandardError in err's chain.
func AsStandard(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// Code returns the code of the first StandardError in err's chain, or
// ErrCodeInternal.
func Code(err error) ErrorCode {
	if stdErr, ok := AsStandard(err); ok {
		return stdErr.Code
	}
	return ErrCodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	stdErr, ok := AsStandard(err)
	return ok && stdErr.Code == code
}

// IsRetryable reports whether a stage failure is worth another attempt.
// Untyped errors are treated as transient; caller cancellation never is.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.Canceled) {
		return false
	}
	if stdErr, ok := AsStandard(err); ok {
		return stdErr.Retryable
	}
	return true
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "CONFIGURATION"):
		return "CONFIGURATION"
	case strings.Contains(codeStr, "GENERATION") || strings.Contains(codeStr, "EXTRACTION"):
		return "MODEL"
	case strings.Contains(codeStr, "MATCH"):
		return "RESOLUTION"
	case strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	case strings.Contains(codeStr, "TIMEOUT"):
		return "TIMEOUT"
	default:
		return "INTERNAL"
	}
}
