package xlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestNopHandler_Enabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestNopHandler_Handle(t *testing.T) {
	h := nopHandler{}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
}

func TestGetDefaultSilent(t *testing.T) {
	l := Get()
	if l == nil {
		t.Fatal("Get() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSet(t *testing.T) {
	orig := Get()
	t.Cleanup(func() { Set(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Set(custom)

	if got := Get(); got != custom {
		t.Error("Get() did not return the custom logger set via Set")
	}

	Get().Info("test message")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected log output to contain 'test message', got: %s", buf.String())
	}
}

func TestSetNilRestoresSilent(t *testing.T) {
	orig := Get()
	t.Cleanup(func() { Set(orig) })

	Set(slog.Default())
	Set(nil)

	l := Get()
	if l == nil {
		t.Fatal("Set(nil) should install a nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("Set(nil) should produce a disabled logger")
	}
}

func TestConcurrentAccess(t *testing.T) {
	orig := Get()
	t.Cleanup(func() { Set(orig) })

	var wg sync.WaitGroup
	const goroutines = 64
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Get().Debug("concurrent read")
		}()
	}
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Set(slog.Default())
			Set(nil)
		}()
	}
	wg.Wait()
}
