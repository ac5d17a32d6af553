package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/stencil/log"
	"github.com/ardnew/stencil/pkg"
	"github.com/ardnew/stencil/render"
	"github.com/ardnew/stencil/worker"
)

// Render renders templates to files or standard output.
//
// In dry-run mode nothing is written. The rendered content and every
// buffered message are printed as a single report instead.
type Render struct {
	Templates    []string `arg:""                                                              help:"Template files or names on the search path" name:"template"`
	Data         string   `help:"YAML data file or '-' for stdin"                                                                       placeholder:"FILE" short:"d"`
	Output       string   `help:"Write rendered files to directory instead of stdout"                                                    placeholder:"DIR"  short:"o" type:"path"`
	TemplatePath []string `help:"Directories searched for templates before STENCIL_PATH"                                                 placeholder:"DIR"  short:"t" type:"path"`
	Isolate      bool     `help:"Render each template in a separate worker process"`
	Strict       bool     `help:"Fail on map keys missing from the data"`
	Report       string   `default:"yaml" enum:"json,yaml"                                     help:"Dry-run report format"`
}

// Report is printed by a dry run in place of the rendered files.
type Report struct {
	// Outputs maps output names to the content that would be written.
	Outputs map[string]string `json:"outputs" yaml:"outputs"`
	// Messages are the log messages buffered during the run.
	Messages []string `json:"messages" yaml:"messages"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger := log.FromContext(ctx)

	if r.Isolate && r.Data == stdinSource {
		return ErrIsolateStdin
	}

	files, err := r.resolve()
	if err != nil {
		return ErrRender.Wrap(err)
	}

	if err := outputNames(files); err != nil {
		return err
	}

	data, err := r.data()
	if err != nil {
		return ErrRender.Wrap(err)
	}

	engine := render.NewEngine(logger, engineOptions(r.Strict)...)
	runner := worker.NewRunner(logger)

	report := Report{Outputs: make(map[string]string, len(files))}

	for _, file := range files {
		var content []byte

		if r.Isolate {
			content, err = runner.Run(ctx, worker.Job{
				Template: file,
				Data:     r.Data,
				Flags:    strictFlags(r.Strict),
			})
		} else {
			var buf bytes.Buffer

			err = engine.Render(ctx, file, data, &buf)
			content = buf.Bytes()
		}

		if err != nil {
			return ErrRender.With(slog.String("template", file)).Wrap(err)
		}

		err = r.write(logger, render.Name(file), content, report.Outputs)
		if err != nil {
			return err
		}
	}

	if !logger.StackMessages() {
		return nil
	}

	report.Messages = logger.Messages()
	if report.Messages == nil {
		report.Messages = []string{}
	}

	return r.print(logger, report)
}

// resolve locates every template on the search path.
func (r *Render) resolve() ([]string, error) {
	path := render.SearchPath(r.TemplatePath, os.Getenv(render.PathEnv))

	files := make([]string, 0, len(r.Templates))

	for _, name := range r.Templates {
		file, err := render.Resolve(name, path)
		if err != nil {
			return nil, err
		}

		files = append(files, file)
	}

	return uniqueFiles(files), nil
}

// outputNames reports the first two files that render to the same output
// name, which would otherwise overwrite each other.
func outputNames(files []string) error {
	seen := make(map[string]string, len(files))

	for _, file := range files {
		name := render.Name(file)

		if prev, ok := seen[name]; ok {
			return ErrDuplicateOutput.With(
				slog.String("first", prev),
				slog.String("second", file),
			).Wrap(pkg.Text(name))
		}

		seen[name] = file
	}

	return nil
}

// data returns the data for in-process rendering. Workers read the data
// file themselves.
func (r *Render) data() (map[string]any, error) {
	if r.Isolate {
		return nil, nil
	}

	return render.ReadDataFile(r.Data)
}

// write records, prints or saves the content rendered for name.
func (r *Render) write(
	logger *log.Logger,
	name string,
	content []byte,
	outputs map[string]string,
) error {
	if logger.StackMessages() {
		outputs[name] = string(content)

		logger.Info("would write " + r.destination(name))

		return nil
	}

	if r.Output == "" {
		logger.Output(strings.TrimSuffix(string(content), "\n"))

		return nil
	}

	dest := r.destination(name)

	err := os.MkdirAll(r.Output, pkg.DirMode)
	if err == nil {
		err = os.WriteFile(dest, content, 0o644)
	}

	if err != nil {
		return ErrWriteOutput.With(slog.String("file", dest)).Wrap(err)
	}

	logger.Info("wrote " + dest)

	return nil
}

func (r *Render) destination(name string) string {
	if r.Output == "" {
		return "<stdout>"
	}

	return filepath.Join(r.Output, name)
}

// print writes the dry-run report in the selected format.
func (r *Render) print(logger *log.Logger, report Report) error {
	var (
		buf []byte
		err error
	)

	switch r.Report {
	case "json":
		buf, err = json.MarshalIndent(report, "", "  ")
		if err != nil {
			return ErrReport.Wrap(pkg.ErrJSONMarshal.Wrap(err))
		}

	case "yaml", "":
		buf, err = yaml.MarshalWithOptions(report, yaml.Indent(2))
		if err != nil {
			return ErrReport.Wrap(pkg.ErrYAMLMarshal.Wrap(err))
		}

	default:
		return ErrReport.Wrap(pkg.ErrInvalidFormat.Wrap(pkg.Text(r.Report)))
	}

	logger.Output(strings.TrimSuffix(string(buf), "\n"))

	return nil
}

func engineOptions(strict bool) []render.Option {
	if strict {
		return []render.Option{render.WithMissingKey(render.MissingKeyError)}
	}

	return nil
}

func strictFlags(strict bool) []string {
	if strict {
		return []string{"--strict"}
	}

	return nil
}
