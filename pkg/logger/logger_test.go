package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZapLoggerFallsBackToInfoOnBadLevel(t *testing.T) {
	log := NewZapLogger(&ZapLoggerConfig{Encoding: "json", Level: "loud"})
	if log == nil {
		t.Fatal("expected logger")
	}
	zl := log.(*zapLogger)
	if zl.log.Core().Enabled(zap.DebugLevel) {
		t.Error("debug should be disabled when level falls back to info")
	}
	if !zl.log.Core().Enabled(zap.InfoLevel) {
		t.Error("info should be enabled")
	}
}

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := Wrap(zap.New(core)).With(zap.String("component", "inventory"))

	log.Info("stock updated", zap.String("item_id", "1"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["component"] != "inventory" || ctx["item_id"] != "1" {
		t.Errorf("unexpected fields: %v", ctx)
	}
}
