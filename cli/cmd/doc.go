// Package cmd implements the stencil commands.
//
// Each command is a [kong] command struct with a Run method taking a
// [context.Context]. The context carries the [kong.Context] (see
// [WithContext]) and the [log.Logger] configured from the logging flags.
//
// [log.Logger]: github.com/ardnew/stencil/log.Logger
package cmd
