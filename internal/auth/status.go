package auth

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-clinic-service/pkg/i18n"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Status builds a gRPC status whose message is localized for the caller.
func Status(ctx context.Context, code codes.Code, err error) error {
	return status.Error(code, i18n.Message(GetLanguage(ctx), err))
}

// ToStatus maps session errors to their codes. Localized domain errors
// that reach it are treated as invalid input, anything else as internal.
func ToStatus(ctx context.Context, err error) error {
	var localized *i18n.Error
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return Status(ctx, codes.Unauthenticated, err)
	case errors.Is(err, ErrPermissionDenied):
		return Status(ctx, codes.PermissionDenied, err)
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrInvalidPassword), errors.Is(err, ErrUserDeactivated):
		return Status(ctx, codes.Unauthenticated, err)
	case errors.As(err, &localized):
		return Status(ctx, codes.InvalidArgument, err)
	}
	return status.Error(codes.Internal, err.Error())
}
