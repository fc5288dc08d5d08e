package middleware

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestContextInterceptor(t *testing.T) {
	md := metadata.Pairs("authorization", "Bearer abc-123", "accept-language", "en-US,en;q=0.9")
	ctx := metadata.NewIncomingContext(context.Background(), md)

	var gotToken, gotLang interface{}
	_, err := ContextInterceptor()(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req interface{}) (interface{}, error) {
		gotToken = ctx.Value(SessionTokenKey)
		gotLang = ctx.Value(LanguageKey)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if gotToken != "abc-123" {
		t.Errorf("token = %v", gotToken)
	}
	if gotLang != "en" {
		t.Errorf("language = %v", gotLang)
	}
}

func TestPrimaryLanguage(t *testing.T) {
	cases := map[string]string{
		"de-DE":             "de",
		"EN-gb":             "en",
		"fr;q=0.8":          "fr",
		"de-DE,de;q=0.9,en": "de",
	}
	for in, want := range cases {
		if got := primaryLanguage(in); got != want {
			t.Errorf("primaryLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}
