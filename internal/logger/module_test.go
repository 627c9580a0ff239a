package logger

import (
	"log/slog"
	"testing"

	"go.uber.org/fx"
)

func TestModuleProvidesLogger(t *testing.T) {
	var log *slog.Logger
	app := fx.New(
		Module,
		fx.Populate(&log),
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		t.Fatalf("fx graph failed: %v", err)
	}
	if log == nil {
		t.Fatal("expected logger to be populated")
	}
}
