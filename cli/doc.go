// Package cli contains the command line interface for stencil.
//
// # Usage
//
//	stencil [flags] TEMPLATE...
//	stencil render --data values.yaml --output out/ page.tmpl nav.tmpl
//	stencil --dry-run --log-ast page.tmpl
//	stencil init
//
// Template names that are not existing files are looked up in the
// directories given with --template-path and then in STENCIL_PATH, trying
// the ".tmpl" extension when a name has none.
//
// # Logging Options
//
//   - --quiet, -q: print errors only
//   - --verbose, -v: print verbose messages
//   - --log-benchmark: print parse and render times
//   - --log-ast: print template diagnostics
//   - --dry-run: write nothing; print rendered content and all messages as
//     a JSON or YAML report
//   - --[no-]pretty: colorize message prefixes
//
// # Configuration
//
// Flag defaults are read from config.yaml in the user configuration
// directory, or from the file named by STENCIL_CONFIG. Keys are flag names
// with hyphens or underscores:
//
//	verbose: true
//	log_ast: true
//
// "stencil init" writes the current flag values to that file.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag, as in
// "go build -tags pprof .":
//
//   - --pprof-mode, -p: enable profiling (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: profile output directory
package cli
