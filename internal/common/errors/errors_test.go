package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ==========================
// Status mapping
// ==========================

func TestToStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected codes.Code
	}{
		{"configuration", NewConfigurationError("catalog is empty", nil), codes.FailedPrecondition},
		{"wrapped configuration", fmt.Errorf("load-config: %w", NewConfigurationError("", stderrors.New("dial"))), codes.FailedPrecondition},
		{"no match", NewNoMatchError("book flight"), codes.NotFound},
		{"identity validation", NewValidationError("identity", "bad"), codes.InvalidArgument},
		{"model output validation", NewSchemaValidationError("Model output", "endpoints is required"), codes.Internal},
		{"generation", NewGenerationError("ollama", stderrors.New("connection refused")), codes.Internal},
		{"extraction", NewExtractionError("no JSON", "raw", nil), codes.Internal},
		{"untyped no config text", stderrors.New(MsgNoConfiguration + " for user"), codes.FailedPrecondition},
		{"untyped no match text", stderrors.New(MsgNoMatch), codes.NotFound},
		{"untyped other", stderrors.New("boom"), codes.Internal},
		{"canceled", context.Canceled, codes.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ToStatus(tt.err)
			assert.Equal(t, tt.expected, st.Code())
			assert.Equal(t, tt.err.Error(), st.Message(), "original message is kept")
		})
	}
}

func TestToStatus_PassesThroughStatusErrors(t *testing.T) {
	st := ToStatus(status.Error(codes.Unauthenticated, "who"))
	assert.Equal(t, codes.Unauthenticated, st.Code())
	assert.Equal(t, "who", st.Message())
}

func TestHandleRequestError(t *testing.T) {
	log := &recordingLogger{}
	h := NewErrorHandler(log)

	err := h.HandleRequestError(NewNoMatchError("x"), map[string]interface{}{"requestId": "r1"})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	require.Len(t, log.entries, 1)
	assert.Equal(t, "r1", log.entries[0]["requestId"])
	assert.Equal(t, string(ErrCodeNoMatch), log.entries[0]["errorCode"])
	assert.Equal(t, "RESOLUTION", log.entries[0]["errorCategory"])
}

// ==========================
// Classification
// ==========================

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.True(t, IsRetryable(stderrors.New("transient")))
	assert.False(t, IsRetryable(context.Canceled))
	assert.False(t, IsRetryable(NewValidationError("sentence", "empty")))
	assert.True(t, IsRetryable(NewGenerationError("claude", stderrors.New("503"))))
	assert.True(t, IsRetryable(fmt.Errorf("wrapped: %w", NewNoMatchError("x"))))
	assert.False(t, IsRetryable(NewInternalError(stderrors.New("bug"))))
}

func TestStandardError_Unwrap(t *testing.T) {
	cause := stderrors.New("dial tcp: refused")
	err := NewGenerationError("ollama", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Model provider 'ollama' failed: dial tcp: refused", err.Error())
	assert.Equal(t, ErrCodeGeneration, Code(fmt.Errorf("stage: %w", err)))
	assert.Equal(t, ErrCodeInternal, Code(cause))
}

type recordingLogger struct {
	entries []map[string]interface{}
}

func (r *recordingLogger) Error(_ string, fields map[string]interface{}) {
	r.entries = append(r.entries, fields)
}
