package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/stencil/pkg"
)

// builtins returns the functions available to every template.
func (e *Engine) builtins() template.FuncMap {
	return template.FuncMap{
		"expr":  e.eval,
		"fail":  fail,
		"join":  join,
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"trim":  strings.TrimSpace,
	}
}

// eval compiles source with expr-lang and runs it against env.
// Compiled programs are cached by source.
func (e *Engine) eval(source string, env any) (any, error) {
	program, ok := e.programs[source]
	if !ok {
		var err error

		program, err = expr.Compile(source)
		if err != nil {
			return nil, pkg.ErrExpr.Wrap(err)
		}

		e.programs[source] = program
	}

	if env == nil {
		env = map[string]any{}
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return nil, pkg.ErrExpr.Wrap(err)
	}

	return out, nil
}

// fail aborts template execution with message.
func fail(message string) (string, error) {
	return "", pkg.Text(message)
}

// join concatenates the display text of items separated by sep.
func join(sep string, items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}

	return strings.Join(parts, sep)
}

// programCache maps expression sources to compiled programs.
type programCache map[string]*vm.Program
