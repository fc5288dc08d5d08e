package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type contextKey string

const (
	SessionTokenKey contextKey = "session_token"
	LanguageKey     contextKey = "language"
)

// ContextInterceptor lifts the session token and preferred language out of
// the incoming metadata so handlers can read them from the context.
func ContextInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if ok {
			if val := md.Get("authorization"); len(val) > 0 {
				token := strings.TrimSpace(strings.TrimPrefix(val[0], "Bearer "))
				ctx = context.WithValue(ctx, SessionTokenKey, token)
			}
			if val := md.Get("accept-language"); len(val) > 0 {
				ctx = context.WithValue(ctx, LanguageKey, primaryLanguage(val[0]))
			}
		}
		return handler(ctx, req)
	}
}

// primaryLanguage reduces "en-US,en;q=0.9" to "en".
func primaryLanguage(header string) string {
	lang := strings.TrimSpace(strings.Split(header, ",")[0])
	lang = strings.Split(lang, ";")[0]
	lang = strings.Split(lang, "-")[0]
	return strings.ToLower(lang)
}
