package worker

import (
	"encoding/json"
	"io"

	"github.com/ardnew/stencil/log"
)

// Result is what a worker writes to standard output: the rendered content
// and the messages its logger buffered while rendering.
type Result struct {
	Content  string   `json:"content"`
	Messages []string `json:"messages,omitempty"`
}

// WriteResult encodes content and the messages buffered by logger to w.
func WriteResult(w io.Writer, content []byte, logger *log.Logger) error {
	return json.NewEncoder(w).Encode(Result{
		Content:  string(content),
		Messages: logger.Messages(),
	})
}

// ChannelFlags returns the global flags that reproduce the threshold and
// channel gates of logger in a worker process.
func ChannelFlags(logger *log.Logger) []string {
	var flags []string

	switch logger.Level() {
	case log.LevelErrors:
		flags = append(flags, "--quiet")
	case log.LevelVerbose:
		flags = append(flags, "--verbose")
	}

	if logger.LogBenchmarks() {
		flags = append(flags, "--log-benchmark")
	}

	if logger.LogAST() {
		flags = append(flags, "--log-ast")
	}

	return flags
}
