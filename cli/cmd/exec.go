package cmd

import (
	"bytes"
	"context"

	"github.com/ardnew/stencil/log"
	"github.com/ardnew/stencil/render"
	"github.com/ardnew/stencil/worker"
)

// Exec renders a single template file to standard output.
//
// It is the entry point of a template worker process spawned by
// "render --isolate". In that role the content is written as a
// [worker.Result] carrying the buffered messages. Errors are reported by the
// caller on stderr.
type Exec struct {
	Template string `arg:""                                 help:"Template file" name:"template"`
	Data     string `help:"YAML data file or '-' for stdin" placeholder:"FILE"   short:"d"`
	Strict   bool   `help:"Fail on map keys missing from the data"`
}

// Run executes the exec command.
func (e *Exec) Run(ctx context.Context) error {
	logger := log.FromContext(ctx)

	data, err := render.ReadDataFile(e.Data)
	if err != nil {
		return err
	}

	var buf bytes.Buffer

	err = render.NewEngine(logger, engineOptions(e.Strict)...).
		Render(ctx, e.Template, data, &buf)
	if err != nil {
		return err
	}

	if logger.Role() == log.RoleTemplateWorker {
		return worker.WriteResult(stdoutFrom(ctx), buf.Bytes(), logger)
	}

	_, err = buf.WriteTo(stdoutFrom(ctx))

	return err
}
