// Package log provides the process-wide logging facade of stencil.
//
// A [Logger] prints plain-text messages filtered by a severity threshold,
// optionally buffering them (dry run), with two independently gated
// channels for benchmarks and template parse-tree (AST) diagnostics.
//
// # Configuration
//
// Behavior is derived from a [Configuration] applied with [Logger.Setup]:
//
//	logger := log.New(log.Configuration{Verbose: true})
//	logger.Info("rendering")      // printed
//	logger.Verbose("using cache") // printed
//
// Setup fully replaces previously derived state; calling it again with a
// different configuration leaves no residual flags.
//
// # Levels
//
// Severities are ordered [LevelErrors] < [LevelWarnings] < [LevelInfo] <
// [LevelVerbose]. A message is emitted when its severity is at most the
// threshold. Quiet mode selects [LevelErrors], so only errors remain.
//
// # Dry Run
//
// With DryRun set, permitted messages are appended to an in-memory stack
// instead of being printed. [Logger.Messages] returns a copy of the stack.
// [Logger.Output] always prints, and is how callers surface the stack.
//
// # Template Workers
//
// A logger configured with [RoleTemplateWorker] additionally writes the
// unformatted text of every [Logger.Error] to its error output, which the
// parent process reads.
//
// # Process-Wide Handle
//
// The package keeps one default logger reachable through [Default] and
// the package-level functions, and loggers can be carried explicitly with
// [WithContext] and [FromContext]. [Logger.Handler] bridges [log/slog]
// records into a logger.
//
// A Logger performs no locking.
package log
