package i18n

import (
	"errors"
	"fmt"
	"testing"
)

func TestLocalize(t *testing.T) {
	tests := []struct {
		lang string
		id   string
		data map[string]any
		want string
	}{
		{"de", "auth.invalid_password", nil, "Ungültiges Passwort"},
		{"en", "auth.invalid_password", nil, "Invalid password"},
		{"de", "inventory.low_stock_alert", map[string]any{"Current": 3, "Min": 10}, "Bestand unter Mindestmenge (3/10)"},
		// unknown language falls back to German
		{"fr", "order.not_found", nil, "Bestellung nicht gefunden"},
		// unknown id falls back to the id
		{"de", "__nope__", nil, "__nope__"},
	}
	for _, tt := range tests {
		if got := Localize(tt.lang, tt.id, tt.data); got != tt.want {
			t.Errorf("Localize(%q, %q) = %q, want %q", tt.lang, tt.id, got, tt.want)
		}
	}
}

func TestErrorWithMatchesSentinel(t *testing.T) {
	sentinel := NewError("sync.connection_error")
	err := fmt.Errorf("test connection: %w", sentinel.With(map[string]any{"Reason": "timeout"}))

	if !errors.Is(err, sentinel) {
		t.Fatal("templated error should match its sentinel")
	}
	if got := Message("de", err); got != "Verbindungsfehler: timeout" {
		t.Errorf("Message = %q", got)
	}
	if got := Message("en", err); got != "Connection error: timeout" {
		t.Errorf("Message = %q", got)
	}
	if got := Message("de", errors.New("plain")); got != "plain" {
		t.Errorf("Message = %q", got)
	}
}
