package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.Level())
	}

	if logger.config.caller {
		t.Error("expected caller disabled by default")
	}

	if logger.Format() != FormatJSON {
		t.Errorf("expected default format json, got %v", logger.Format())
	}
}

func TestLogger_Zero_DiscardsMessages(t *testing.T) {
	t.Parallel()

	var logger Logger

	logger.Info("nothing")
	logger.With(slog.String("k", "v")).Error("still nothing")

	if logger.Level() != DefaultLevel {
		t.Errorf("expected %v, got %v", DefaultLevel, logger.Level())
	}

	var buf bytes.Buffer

	wrapped := logger.Wrap(WithOutput(&buf), WithTimeLayout("none"))
	wrapped.Info("now visible")

	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("wrapped zero logger did not write: %q", buf.String())
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		logFunc func(Logger, string, ...slog.Attr)
		min     Level
		logged  bool
	}{
		{"trace at trace", (Logger).Trace, LevelTrace, true},
		{"trace at debug", (Logger).Trace, LevelDebug, false},
		{"debug at debug", (Logger).Debug, LevelDebug, true},
		{"debug at info", (Logger).Debug, LevelInfo, false},
		{"info at info", (Logger).Info, LevelInfo, true},
		{"info at warn", (Logger).Info, LevelWarn, false},
		{"warn at warn", (Logger).Warn, LevelWarn, true},
		{"warn at error", (Logger).Warn, LevelError, false},
		{"error at error", (Logger).Error, LevelError, true},
		{"error at trace", (Logger).Error, LevelTrace, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := Make(&buf, WithLevel(tt.min))
			tt.logFunc(logger, "message")

			if got := buf.Len() > 0; got != tt.logged {
				t.Errorf("logged = %v, want %v (%q)", got, tt.logged, buf.String())
			}
		})
	}
}

func TestLogger_Make_WithFormat_SetsOutputFormat(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := Make(&buf, WithFormat(FormatJSON))
		logger.Trace("hidden")
		logger.Info("test message", slog.String("key", "value"))

		var result map[string]any
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("failed to parse JSON output: %v", err)
		}

		if result["msg"] != "test message" {
			t.Errorf("expected msg=test message, got %v", result["msg"])
		}

		if result["key"] != "value" {
			t.Errorf("expected key=value, got %v", result["key"])
		}

		if result["level"] != "INFO" {
			t.Errorf("expected level=INFO, got %v", result["level"])
		}
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := Make(&buf, WithFormat(FormatText), WithPretty(false))
		logger.Info("test message", slog.String("key", "value"))

		output := buf.String()
		if !strings.Contains(output, "test message") {
			t.Error("message not found in text output")
		}

		if !strings.Contains(output, "key=value") {
			t.Error("key=value not found in text output")
		}
	})

	t.Run("pretty", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := Make(&buf,
			WithFormat(FormatText),
			WithPretty(true),
			WithLevel(LevelTrace),
			WithTimeLayout("none"))
		logger.With(slog.String("expr", "1+1")).
			Trace("reduced", slog.Int("steps", 1))

		output := buf.String()
		for _, want := range []string{"TRACE", "reduced", "expr", "1+1", "steps"} {
			if !strings.Contains(output, want) {
				t.Errorf("pretty output missing %q: %q", want, output)
			}
		}
	})
}

func TestLogger_Make_WithCaller_IncludesSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	Make(&buf, WithCaller(true)).Info("test message")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("caller info not attributed to test file: %s", buf.String())
	}

	buf.Reset()
	Make(&buf, WithCaller(false)).Info("test message")

	if strings.Contains(buf.String(), "source") {
		t.Error("caller info included when disabled")
	}
}

func TestLogger_Wrap_DoesNotAffectOriginal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	base := Make(&buf, WithLevel(LevelWarn))
	derived := base.Wrap(WithLevel(LevelDebug))

	base.Info("from base")
	derived.Info("from derived")

	output := buf.String()
	if strings.Contains(output, "from base") {
		t.Error("base logger level changed by Wrap")
	}

	if !strings.Contains(output, "from derived") {
		t.Error("derived logger did not apply level option")
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	t.Parallel()

	var (
		buf bytes.Buffer
		mu  sync.Mutex
		wg  sync.WaitGroup
	)

	logger := Make(writerFunc(func(p []byte) (int, error) {
		mu.Lock()
		defer mu.Unlock()

		return buf.Write(p)
	}))

	for i := range 16 {
		wg.Go(func() {
			logger.Info("concurrent", slog.Int("i", i))
		})
	}

	wg.Wait()

	if n := strings.Count(buf.String(), "\n"); n != 16 {
		t.Errorf("expected 16 records, got %d", n)
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
