package logx

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedMasking() (*maskingCore, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := &maskingCore{
		Core:         core,
		sensitive:    defaultSensitiveKeys(),
		maskPattern:  defaultMaskPattern(),
		replaceValue: "[REDACTED]",
	}
	return m, logs
}

func TestMaskingCore_RedactsSensitiveFields(t *testing.T) {
	m, logs := newObservedMasking()
	logger := zap.New(m).Sugar()

	logger.Infow("FOUND",
		"address", "So1anaAddr11111111111111111111111",
		"private_key", "5Kd3NBUAdUnhyzenEwVLy9pBKxSwXvE9FMPyR4UKZvpe6E3AgLr",
	)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["private_key"] != "[REDACTED]" {
		t.Fatalf("private_key not redacted: %v", fields["private_key"])
	}
	if fields["address"] == "[REDACTED]" {
		t.Fatalf("address must stay visible")
	}
}

func TestMaskingCore_MasksKeyRunsInMessages(t *testing.T) {
	m, logs := newObservedMasking()
	logger := zap.New(m).Sugar()

	logger.Info("leaked 5Kd3NBUAdUnhyzenEwVLy9pBKxSwXvE9FMPyR4UKZvpe6E3AgLr in message")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].Message; got != "leaked [REDACTED] in message" {
		t.Fatalf("message not masked: %q", got)
	}
}
