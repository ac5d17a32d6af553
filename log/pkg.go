package log

import "context"

// defaultLog is the process-wide logger used by the package-level functions.
//
//nolint:gochecknoglobals
var defaultLog = Make()

// Default returns the process-wide logger.
func Default() *Logger { return defaultLog }

// SetDefault replaces the process-wide logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLog = l
	}
}

// Setup applies cfg to the process-wide logger.
func Setup(cfg Configuration) { defaultLog.Setup(cfg) }

// Config replaces the output options of the process-wide logger, keeping its
// derived state and buffered messages.
func Config(opts ...Option) { defaultLog.sink = apply(defaultLog.sink, opts...) }

// Error emits an error using the process-wide logger.
func Error(message any) { defaultLog.Error(message) }

// Warning emits a warning using the process-wide logger.
func Warning(message any) { defaultLog.Warning(message) }

// ASTWarning emits an AST warning using the process-wide logger.
func ASTWarning(message any) { defaultLog.ASTWarning(message) }

// ASTError emits an AST error using the process-wide logger.
func ASTError(message any) { defaultLog.ASTError(message) }

// Verbose emits a verbose message using the process-wide logger.
func Verbose(message any) { defaultLog.Verbose(message) }

// Info emits an info message using the process-wide logger.
func Info(message any) { defaultLog.Info(message) }

// Benchmark emits a benchmark message using the process-wide logger.
func Benchmark(message any) { defaultLog.Benchmark(message) }

// Output prints unconditionally using the process-wide logger.
func Output(message any) { defaultLog.Output(message) }

type contextKey struct{}

// WithContext returns a copy of ctx carrying l.
func WithContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx by [WithContext], or
// [Default] if there is none.
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*Logger); ok && l != nil {
			return l
		}
	}

	return defaultLog
}
