// Package cli contains the command line interface for calc.
//
// # Usage
//
//	calc [flags] <expr>...            evaluate once
//	calc [flags]                      interactive terminal or line loop
//	calc explain [-f text|json|yaml] <expr>...
//	calc init [--force]
//
// Arguments are joined without separators, so "calc 3 + 4" and "calc 3+4"
// are equivalent. An expression beginning with a sign must follow "--":
//
//	calc eval -- -5+3
//
// # Configuration
//
// Flag defaults may be overridden by config.json and config.yaml in the
// user configuration directory (for example ~/.config/calc). The YAML file
// maps flag names, with hyphens or underscores, to values:
//
//	log-level: debug
//	step_limit: 1000
//
// "calc init" writes the current flag values to config.yaml.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text output
//
// Evaluation steps are logged at the trace level.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o calc .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/calc/pprof)
package cli
