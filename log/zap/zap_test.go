package zap

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unkn0wn-root/bytekit"
)

func TestFieldsSortedAndErrorsNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := ZapLogger{L: zap.New(core)}

	l.Warn("host capability failed", bytekit.Fields{"op": "digest", "host": "portable", "err": errors.New("boom")})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel || e.Message != "host capability failed" {
		t.Fatalf("unexpected entry: %v %q", e.Level, e.Message)
	}
	var got []string
	for _, f := range e.Context {
		got = append(got, f.Key)
	}
	if want := []string{"err", "host", "op"}; len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatalf("field order = %v, want %v", got, want)
	}
	if e.Context[0].Type != zapcore.ErrorType {
		t.Fatalf("err field type = %v, want ErrorType", e.Context[0].Type)
	}
	if e.ContextMap()["err"] != "boom" {
		t.Fatalf("err field = %v", e.ContextMap()["err"])
	}
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := ZapLogger{L: zap.New(core)}
	l.Debug("d", nil)
	l.Info("i", nil)
	l.Error("e", bytekit.Fields{})

	want := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.ErrorLevel}
	entries := logs.All()
	if len(entries) != len(want) {
		t.Fatalf("want %d entries, got %d", len(want), len(entries))
	}
	for i, e := range entries {
		if e.Level != want[i] {
			t.Fatalf("entry %d level = %v, want %v", i, e.Level, want[i])
		}
		if len(e.Context) != 0 {
			t.Fatalf("entry %d has fields %v", i, e.Context)
		}
	}
}

func TestWithKit(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	bytekit.New(bytekit.Options{Logger: ZapLogger{L: zap.New(core)}})
	if logs.FilterMessage("bytekit ready").Len() != 1 {
		t.Fatalf("kit did not log through the adapter")
	}
}
