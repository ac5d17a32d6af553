package log

import (
	"fmt"
	"io"
	"slices"
)

// Severity prefixes prepended to formatted messages.
const (
	prefixError      = "error: "
	prefixWarning    = "warning: "
	prefixASTWarning = "ast warning: "
	prefixASTError   = "ast error: "
)

// Logger is the process-wide logging facade.
//
// Its derived state is replaced as a whole by [Logger.Setup]. A Logger is
// not safe for concurrent use; callers must serialize access.
type Logger struct {
	sink

	messages      []string
	level         Level
	role          Role
	logBenchmarks bool
	logAST        bool
	stackMessages bool
}

// Make creates a [Logger] that has not been set up. Its threshold is
// [DefaultLevel] and the benchmark and AST channels are disabled.
//
// Output defaults to [os.Stdout] and [os.Stderr]; see [WithOutput] and
// [WithErrorOutput].
func Make(opts ...Option) *Logger {
	return &Logger{
		sink:  makeSink(opts...),
		level: DefaultLevel,
	}
}

// New creates a [Logger] and applies cfg with [Logger.Setup].
func New(cfg Configuration, opts ...Option) *Logger {
	l := Make(opts...)
	l.Setup(cfg)

	return l
}

// Setup derives the logger state from cfg, fully replacing any state
// derived from a previous configuration. Buffered messages are kept.
func (l *Logger) Setup(cfg Configuration) {
	l.stackMessages = cfg.DryRun
	l.level = cfg.level()
	l.logBenchmarks = (cfg.Verbose || cfg.LogBenchmark) && !cfg.Quiet
	l.logAST = cfg.LogAST && !cfg.Quiet
	l.role = cfg.Role
}

// Level returns the current severity threshold.
func (l *Logger) Level() Level { return l.level }

// Role returns the configured process role.
func (l *Logger) Role() Role { return l.role }

// LogBenchmarks reports whether benchmark messages are emitted.
func (l *Logger) LogBenchmarks() bool { return l.logBenchmarks }

// LogAST reports whether the AST channel is enabled.
func (l *Logger) LogAST() bool { return l.logAST }

// StackMessages reports whether emitted messages are buffered.
func (l *Logger) StackMessages() bool { return l.stackMessages }

// Messages returns a copy of the buffered messages in emission order.
func (l *Logger) Messages() []string { return slices.Clone(l.messages) }

// Error emits "error: <message>" at [LevelErrors], which is never filtered.
//
// When running as a [RoleTemplateWorker], the unformatted message is also
// written as a line to the error output regardless of buffering, so the
// parent process can collect it.
func (l *Logger) Error(message any) {
	msg := text(message)

	l.log(LevelErrors, prefixError, msg)

	if l.role == RoleTemplateWorker {
		fmt.Fprintln(l.errorOutput, msg)
	}
}

// Warning emits "warning: <message>" at [LevelWarnings].
func (l *Logger) Warning(message any) {
	l.log(LevelWarnings, prefixWarning, text(message))
}

// ASTWarning emits "ast warning: <message>" at [LevelWarnings] when the AST
// channel is enabled.
func (l *Logger) ASTWarning(message any) {
	if !l.logAST {
		return
	}

	l.log(LevelWarnings, prefixASTWarning, text(message))
}

// ASTError emits "ast error: <message>" at [LevelErrors] when the AST
// channel is enabled.
func (l *Logger) ASTError(message any) {
	if !l.logAST {
		return
	}

	l.log(LevelErrors, prefixASTError, text(message))
}

// Verbose emits the message at [LevelVerbose].
func (l *Logger) Verbose(message any) {
	l.log(LevelVerbose, "", text(message))
}

// Info emits the message at [LevelInfo].
func (l *Logger) Info(message any) {
	l.log(LevelInfo, "", text(message))
}

// Benchmark emits the message when benchmarks are enabled.
// It is buffered or printed like any other message but ignores the
// severity threshold.
func (l *Logger) Benchmark(message any) {
	if !l.logBenchmarks {
		return
	}

	l.emit("", text(message))
}

// Forward emits a message that another logger already filtered and
// prefixed, such as one buffered by a template worker. It is buffered or
// printed like any other message but ignores the threshold and channel
// gates.
func (l *Logger) Forward(message any) {
	l.emit("", text(message))
}

// Output prints the message unconditionally, bypassing the threshold and
// buffering.
func (l *Logger) Output(message any) {
	l.print(l.output, "", text(message))
}

// log emits prefix+msg when severity passes the current threshold.
func (l *Logger) log(severity Level, prefix, msg string) {
	if !l.level.Enables(severity) {
		return
	}

	l.emit(prefix, msg)
}

// emit buffers or prints prefix+msg.
func (l *Logger) emit(prefix, msg string) {
	if l.stackMessages {
		l.messages = append(l.messages, prefix+msg)

		return
	}

	l.print(l.output, prefix, msg)
}

func (l *Logger) print(w io.Writer, prefix, msg string) {
	if l.pretty && prefix != "" {
		prefix = stylePrefix(prefix)
	}

	fmt.Fprintln(w, prefix+msg)
}

// text converts a message value to its display text.
// Errors and Stringers are formatted by fmt, which prints "<nil>" for a nil
// receiver that panics.
func text(v any) string {
	if m, ok := v.(string); ok {
		return m
	}

	return fmt.Sprint(v)
}
