package render

import (
	"fmt"
	"slices"
	"strconv"
	"text/template"
	"text/template/parse"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/stencil/log"
)

// Diagnostic is a finding about a template parse tree.
type Diagnostic struct {
	// Severity is [log.LevelErrors] or [log.LevelWarnings].
	Severity log.Level
	// Location is "name:line:col" when known.
	Location string
	Message  string
}

func (d Diagnostic) String() string {
	if d.Location == "" {
		return d.Message
	}

	return d.Location + ": " + d.Message
}

// Inspect walks the parse trees of t and reports:
//   - template invocations naming a template that is not defined,
//   - field chains on the data root of the root template whose first key is
//     absent from data, when data is a map,
//   - a root template that produces no output.
func (e *Engine) Inspect(t *Template, data any) []Diagnostic {
	names := defined(t.Template)
	keys, _ := data.(map[string]any)

	var diags []Diagnostic

	for _, tt := range t.Templates() {
		if tt.Tree == nil || tt.Root == nil {
			continue
		}

		// Dot is the data root only in the root template.
		w := walker{
			tree:        tt.Tree,
			names:       names,
			keys:        keys,
			checkFields: keys != nil && tt.Name() == t.Name(),
		}
		w.walk(tt.Root)
		diags = append(diags, w.diags...)
	}

	if root := t.Tree; root == nil || root.Root == nil || parse.IsEmptyTree(root.Root) {
		diags = append(diags, Diagnostic{
			Severity: log.LevelWarnings,
			Location: t.Name(),
			Message:  "template is empty",
		})
	}

	return diags
}

// Report emits diags on the AST channel of the engine logger.
func (e *Engine) Report(diags []Diagnostic) {
	for _, d := range diags {
		if d.Severity == log.LevelErrors {
			e.logger.ASTError(d)
		} else {
			e.logger.ASTWarning(d)
		}
	}
}

type walker struct {
	tree        *parse.Tree
	names       []string
	keys        map[string]any
	diags       []Diagnostic
	checkFields bool
}

func (w *walker) report(sev log.Level, n parse.Node, format string, args ...any) {
	loc, _ := w.tree.ErrorContext(n)

	w.diags = append(w.diags, Diagnostic{
		Severity: sev,
		Location: loc,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (w *walker) walk(n parse.Node) {
	switch n := n.(type) {
	case nil:

	case *parse.ListNode:
		if n == nil {
			return
		}

		for _, c := range n.Nodes {
			w.walk(c)
		}

	case *parse.ActionNode:
		w.pipe(n.Pipe)

	case *parse.IfNode:
		w.branch(&n.BranchNode, false)

	case *parse.RangeNode:
		w.branch(&n.BranchNode, true)

	case *parse.WithNode:
		w.branch(&n.BranchNode, true)

	case *parse.TemplateNode:
		if !slices.Contains(w.names, n.Name) {
			w.report(log.LevelErrors, n, "template %s is not defined%s",
				strconv.Quote(n.Name), suggest(n.Name, w.names))
		}

		w.pipe(n.Pipe)
	}
}

// branch walks a conditional node. When rebind is set, dot is rebound
// inside the list, so field checks are suspended there.
func (w *walker) branch(n *parse.BranchNode, rebind bool) {
	w.pipe(n.Pipe)

	check := w.checkFields
	if rebind {
		w.checkFields = false
	}

	w.walk(n.List)
	w.checkFields = check

	w.walk(n.ElseList)
}

func (w *walker) pipe(p *parse.PipeNode) {
	if p == nil {
		return
	}

	for _, cmd := range p.Cmds {
		for _, arg := range cmd.Args {
			w.arg(arg)
		}
	}
}

func (w *walker) arg(n parse.Node) {
	switch n := n.(type) {
	case *parse.FieldNode:
		if !w.checkFields || len(n.Ident) == 0 {
			return
		}

		if _, ok := w.keys[n.Ident[0]]; !ok {
			w.report(log.LevelWarnings, n, "field %s not present in data",
				strconv.Quote(n.Ident[0]))
		}

	case *parse.PipeNode:
		w.pipe(n)
	}
}

// suggest returns a " (did you mean ...?)" hint naming the best fuzzy match
// for name among candidates, or the empty string.
func suggest(name string, candidates []string) string {
	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		return ""
	}

	return " (did you mean " + strconv.Quote(matches[0].Str) + "?)"
}

// defined returns the sorted names of templates in the set of t that have a
// parse tree.
func defined(t *template.Template) []string {
	var names []string

	for _, tt := range t.Templates() {
		if tt.Tree != nil {
			names = append(names, tt.Name())
		}
	}

	slices.Sort(names)

	return names
}
