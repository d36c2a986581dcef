package api

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/solatis/railplanner/internal/input"
)

// statusFromError maps service errors onto gRPC codes.
// Validation errors map to INVALID_ARGUMENT.
// Database errors map to UNAVAILABLE.
// Context timeouts map to DEADLINE_EXCEEDED.
func statusFromError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errBadRequest), input.IsInputError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case strings.Contains(err.Error(), "database error"):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
