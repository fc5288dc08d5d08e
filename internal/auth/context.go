package auth

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-clinic-service/internal/model"
	"github.com/fekuna/omnipos-clinic-service/pkg/i18n"
	"github.com/fekuna/omnipos-clinic-service/pkg/middleware"
	"google.golang.org/grpc/metadata"
)

// GetSessionToken returns the token the interceptor stored, falling back to
// the raw authorization metadata.
func GetSessionToken(ctx context.Context) string {
	if val, ok := ctx.Value(middleware.SessionTokenKey).(string); ok {
		return val
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get("authorization"); len(val) > 0 {
			return strings.TrimSpace(strings.TrimPrefix(val[0], "Bearer "))
		}
	}
	return ""
}

// GetLanguage returns the caller's language, German when none was sent.
func GetLanguage(ctx context.Context) string {
	if val, ok := ctx.Value(middleware.LanguageKey).(string); ok && val != "" {
		return val
	}
	return i18n.DefaultLanguage
}

// RequireSession resolves the caller's session.
func RequireSession(ctx context.Context, uc UseCase) (*model.Session, error) {
	token := GetSessionToken(ctx)
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	return uc.CurrentSession(ctx, token)
}

// RequirePermission resolves the caller's session and checks one capability.
func RequirePermission(ctx context.Context, uc UseCase, permission model.Permission) (*model.Session, error) {
	session, err := RequireSession(ctx, uc)
	if err != nil {
		return nil, err
	}
	if !session.HasPermission(permission) {
		return nil, ErrPermissionDenied
	}
	return session, nil
}
