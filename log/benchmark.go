package log

import "time"

// Since emits a benchmark message "<label>: <elapsed>" measured from start.
func (l *Logger) Since(label string, start time.Time) {
	if !l.logBenchmarks {
		return
	}

	l.Benchmark(label + ": " + l.now().Sub(start).String())
}

// Measure starts timing label and returns a function that emits the
// elapsed time as a benchmark message when called.
//
//	defer logger.Measure("parse")()
func (l *Logger) Measure(label string) (stop func()) {
	if !l.logBenchmarks {
		return func() {}
	}

	start := l.now()

	return func() { l.Since(label, start) }
}
