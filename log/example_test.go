package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/calc/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout, log.WithTimeLayout("none"))
	logger.Info("evaluated", slog.String("result", "11"))
	// Output:
	// {"level":"INFO","msg":"evaluated","result":"11"}
}

func Example_levels() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelWarn),
		log.WithTimeLayout("none"))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message", slog.String("key", "value"))
	// Output:
	// {"level":"WARN","msg":"warning message","key":"value"}
}

func Example_withAttributes() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelTrace),
		log.WithTimeLayout("none"))
	logger = logger.With(slog.String("expr", "2^3"))

	logger.Trace("reduce", slog.String("op", "^"))
	// Output:
	// {"level":"TRACE","msg":"reduce","expr":"2^3","op":"^"}
}
