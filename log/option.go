package log

import (
	"io"
	"os"
	"time"
)

// sink holds the destinations and presentation settings of a Logger.
// It is configured with functional options and never derived from a
// [Configuration].
type sink struct {
	output      io.Writer
	errorOutput io.Writer
	now         func() time.Time
	pretty      bool
}

// Option applies a configuration option to sink.
type Option func(sink) sink

// apply applies multiple options to a sink.
func apply(s sink, opts ...Option) sink {
	for _, opt := range opts {
		s = opt(s)
	}

	return s
}

// makeSink creates a sink writing to the standard streams, overridden by
// any provided options.
func makeSink(opts ...Option) sink {
	return apply(sink{
		output:      os.Stdout,
		errorOutput: os.Stderr,
		now:         time.Now,
	}, opts...)
}

// WithOutput returns a functional option that sets the writer receiving
// printed messages. If a nil writer is provided, [io.Discard] is used.
func WithOutput(w io.Writer) Option {
	return func(s sink) sink {
		if w == nil {
			w = io.Discard
		}

		s.output = w

		return s
	}
}

// WithErrorOutput returns a functional option that sets the writer
// receiving the unformatted error text of a template worker.
// If a nil writer is provided, [io.Discard] is used.
func WithErrorOutput(w io.Writer) Option {
	return func(s sink) sink {
		if w == nil {
			w = io.Discard
		}

		s.errorOutput = w

		return s
	}
}

// WithPretty returns a functional option that controls whether severity
// prefixes are colorized when printed. Buffered messages are never styled.
func WithPretty(enable bool) Option {
	return func(s sink) sink {
		s.pretty = enable

		return s
	}
}

// WithClock returns a functional option that sets the time source used by
// the benchmark helpers. A nil function selects [time.Now].
func WithClock(now func() time.Time) Option {
	return func(s sink) sink {
		if now == nil {
			now = time.Now
		}

		s.now = now

		return s
	}
}
