package render_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/monstasat/vg/render"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	render.SetLogger(nil)
	l := render.Logger()
	if l == nil {
		t.Fatal("Logger() should never return nil")
	}
	if l.Enabled(nil, slog.LevelError) {
		t.Error("the default logger should report every level disabled")
	}
}

func TestSetLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, nil))
	render.SetLogger(custom)
	defer render.SetLogger(nil)

	if render.Logger() != custom {
		t.Error("Logger() should return the logger installed by SetLogger")
	}
	render.Logger().Info("hello")
	if buf.Len() == 0 {
		t.Error("the installed logger should have received the log record")
	}
}

func TestSetLoggerNilRestoresSilentDefault(t *testing.T) {
	var buf bytes.Buffer
	render.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	render.SetLogger(nil)
	render.Logger().Info("should not be written")
	if buf.Len() != 0 {
		t.Error("SetLogger(nil) should restore the silent default logger")
	}
}
