// Package worker renders templates in isolated subprocesses.
//
// A [Runner] re-executes the stencil binary with the hidden exec command,
// the template worker role, the dry-run flag and the channel flags of the
// parent logger. The child buffers its messages and writes a JSON [Result]
// holding the rendered content and those messages to standard output. Error
// messages are also written as plain lines to standard error, which the
// parent reports when the worker fails.
package worker
