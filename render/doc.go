// Package render parses and executes [text/template] files against YAML
// data.
//
// # Search Path
//
// Templates are located with [Resolve] over a search path built by
// [SearchPath], which prefixes command-line directories onto the
// STENCIL_PATH list.
//
// # Diagnostics
//
// [Engine.Inspect] walks the parse trees of a template set and returns
// [Diagnostic] values for undefined template invocations, root fields
// missing from the data and empty templates. [Engine.Report] emits them on
// the AST channel of the engine's logger, which is silent unless enabled.
//
// # Functions
//
// Besides the standard template functions, templates may call:
//
//	expr   evaluate an expr-lang expression: {{ expr "len(items) > 2" . }}
//	fail   abort execution with a message:   {{ fail "unsupported" }}
//	join   join list items with a separator: {{ join ", " .items }}
//	lower, upper, trim
//
// Parse and execution times are reported on the benchmark channel.
package render
