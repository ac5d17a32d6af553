package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/ardnew/stencil/log"
	"github.com/ardnew/stencil/pkg"
)

// MissingKey selects how template execution treats a map key absent from
// the data. See [template.Template.Option].
type MissingKey string

const (
	MissingKeyDefault MissingKey = "default"
	MissingKeyZero    MissingKey = "zero"
	MissingKeyError   MissingKey = "error"
)

// config holds the configuration options for an Engine.
type config struct {
	funcs      template.FuncMap
	missingKey MissingKey
}

// Option applies a configuration option to config.
type Option func(config) config

// WithFuncs returns a functional option that adds funcs to the functions
// available to templates. Later options override earlier ones and the
// built-in functions.
func WithFuncs(funcs template.FuncMap) Option {
	return func(c config) config {
		merged := make(template.FuncMap, len(c.funcs)+len(funcs))
		for k, v := range c.funcs {
			merged[k] = v
		}

		for k, v := range funcs {
			merged[k] = v
		}

		c.funcs = merged

		return c
	}
}

// WithMissingKey returns a functional option that sets the missing key
// policy used during execution.
func WithMissingKey(policy MissingKey) Option {
	return func(c config) config {
		c.missingKey = policy

		return c
	}
}

// Engine parses, inspects and executes templates, reporting its progress
// through a [log.Logger].
type Engine struct {
	config

	logger   *log.Logger
	programs programCache
}

// Template is a parsed template set rooted at the named template.
type Template struct {
	*template.Template
}

// NewEngine returns an Engine reporting to logger. A nil logger selects
// [log.Default].
func NewEngine(logger *log.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = log.Default()
	}

	cfg := config{missingKey: MissingKeyDefault}
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return &Engine{
		config:   cfg,
		logger:   logger,
		programs: make(programCache),
	}
}

// Parse parses text as a template set named name.
func (e *Engine) Parse(name, text string) (*Template, error) {
	defer e.logger.Measure("parse " + name)()

	funcs := e.builtins()
	for k, v := range e.funcs {
		funcs[k] = v
	}

	t, err := template.New(name).
		Funcs(funcs).
		Option("missingkey=" + string(e.missingKey)).
		Parse(text)
	if err != nil {
		return nil, pkg.ErrParse.Wrap(err)
	}

	e.logger.Verbose(fmt.Sprintf("parsed %s (%d templates)", name, len(defined(t))))

	return &Template{Template: t}, nil
}

// Execute applies t to data, writing the result to w.
func (e *Engine) Execute(ctx context.Context, t *Template, data any, w io.Writer) error {
	err := ctx.Err()
	if err != nil {
		return err
	}

	defer e.logger.Measure("render " + t.Name())()

	err = t.Execute(w, data)
	if err != nil {
		return pkg.ErrExecute.Wrap(err)
	}

	return nil
}

// Render reads the template file at path, parses it, reports its
// diagnostics on the AST channel and executes it with data.
func (e *Engine) Render(ctx context.Context, path string, data any, w io.Writer) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return pkg.ErrTemplateNotFound.Wrap(err)
	}

	e.logger.Verbose("rendering " + path)

	t, err := e.Parse(Name(path), string(buf))
	if err != nil {
		return err
	}

	e.Report(e.Inspect(t, data))

	return e.Execute(ctx, t, data, w)
}

// Name returns the template name of the file at path: its base name
// without the [Ext] extension.
func Name(path string) string {
	return strings.TrimSuffix(filepath.Base(path), Ext)
}
