// Package cmd implements the calc subcommands.
//
// [Eval] evaluates an expression given as arguments, reads expressions line
// by line from a non-terminal standard input, or starts the interactive
// terminal. [Explain] prints the canonical form and each evaluation step of
// an expression. [Init] writes the current flag values to the configuration
// file.
//
// Commands receive their [kong.Context], evaluation options, and I/O streams
// through the [context.Context] passed to Run. See [WithContext],
// [WithOptions], and [WithStreams].
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
