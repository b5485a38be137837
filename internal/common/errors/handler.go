package errors

import (
	"context"
	stderrors "errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorHandler turns pipeline failures into terminal RPC statuses.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleRequestError logs err with fields and returns the status error that
// should terminate the stream.
func (h *ErrorHandler) HandleRequestError(err error, fields map[string]interface{}) error {
	stdErr := normalizeError(err)
	st := ToStatus(err)

	logFields := map[string]interface{}{
		"errorCode":     string(stdErr.Code),
		"errorCategory": GetErrorCategory(stdErr.Code),
		"grpcCode":      st.Code().String(),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
	}
	for k, v := range fields {
		logFields[k] = v
	}
	h.logger.Error("Request failed", logFields)

	return st.Err()
}

// ToStatus maps an error onto a gRPC status carrying the original message.
// Typed errors are mapped by code; untyped errors fall back to message matching.
func ToStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	if st, ok := status.FromError(err); ok && st.Code() != codes.Unknown {
		return st
	}

	msg := err.Error()
	if stdErr, ok := AsStandard(err); ok {
		switch stdErr.Code {
		case ErrCodeConfiguration:
			return status.New(codes.FailedPrecondition, msg)
		case ErrCodeNoMatch:
			return status.New(codes.NotFound, msg)
		case ErrCodeValidation:
			if !stdErr.Retryable {
				return status.New(codes.InvalidArgument, msg)
			}
		}
		return status.New(codes.Internal, msg)
	}

	switch {
	case stderrors.Is(err, context.Canceled):
		return status.New(codes.Canceled, msg)
	case strings.Contains(msg, MsgNoConfiguration):
		return status.New(codes.FailedPrecondition, msg)
	case strings.Contains(msg, MsgNoMatch):
		return status.New(codes.NotFound, msg)
	default:
		return status.New(codes.Internal, msg)
	}
}

func normalizeError(err error) *StandardError {
	if stdErr, ok := AsStandard(err); ok {
		return stdErr
	}
	return NewInternalError(err)
}
