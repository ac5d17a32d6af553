package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/stencil/log"
)

type logConfig struct {
	DryRun       bool   `help:"Render without writing any file and print a report."`
	Quiet        bool   `help:"Print errors only. Overrides --verbose."              short:"q"`
	Verbose      bool   `help:"Print verbose messages."                              short:"v"`
	LogBenchmark bool   `help:"Print parse and render times."`
	LogAST       bool   `help:"Print template diagnostics."                          name:"log-ast"`
	Pretty       bool   `default:"true"                                              help:"Colorize message prefixes." negatable:""`
	Role         string `default:"main"  enum:"main,worker" hidden:""                help:"Process role."`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) configuration() log.Configuration {
	return log.Configuration{
		DryRun:       f.DryRun,
		Quiet:        f.Quiet,
		Verbose:      f.Verbose,
		LogBenchmark: f.LogBenchmark,
		LogAST:       f.LogAST,
		Role:         log.ParseRole(f.Role),
	}
}

// start builds the logger from the parsed flags and installs it as the
// process default, the [slog] default and the logger of the returned
// context.
//
// A template worker prints nothing on stdout besides its result, so its
// printed messages are discarded. Buffered messages travel in the result and
// errors still reach stderr.
func (f *logConfig) start(
	ctx context.Context,
	stdout, stderr io.Writer,
) context.Context {
	cfg := f.configuration()

	opts := []log.Option{
		log.WithOutput(stdout),
		log.WithErrorOutput(stderr),
		log.WithPretty(f.Pretty),
	}

	if cfg.Role == log.RoleTemplateWorker {
		opts = append(opts, log.WithOutput(io.Discard), log.WithPretty(false))
	}

	logger := log.New(cfg, opts...)

	log.SetDefault(logger)
	slog.SetDefault(slog.New(logger.Handler()))

	slog.DebugContext(ctx, "logger initialized",
		slog.String("level", logger.Level().String()),
		slog.String("role", logger.Role().String()),
		slog.Bool("dry-run", logger.StackMessages()),
		slog.Bool("benchmark", logger.LogBenchmarks()),
		slog.Bool("ast", logger.LogAST()),
	)

	return log.WithContext(ctx, logger)
}

// scan performs an early pass over command-line arguments to apply the
// verbosity and output flags to the default logger before Kong begins
// parsing, so that parse errors are reported the way the user asked.
func (f *logConfig) scan(args []string) {
	var cfg log.Configuration

	pretty := true

	for _, arg := range args {
		if arg == "--" {
			break
		}

		name, value, assigned := strings.Cut(arg, "=")

		switch name {
		case "--quiet", "-q":
			cfg.Quiet = !assigned || value == "true"

		case "--verbose", "-v":
			cfg.Verbose = !assigned || value == "true"

		case "--role":
			if assigned {
				cfg.Role = log.ParseRole(value)
			}

		case "--pretty":
			pretty = !assigned || value == "true"

		case "--no-pretty":
			pretty = assigned && value == "false"
		}
	}

	log.Setup(cfg)
	log.Config(log.WithPretty(pretty))
}
