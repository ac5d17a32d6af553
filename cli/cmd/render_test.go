package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/stencil/log"
	"github.com/ardnew/stencil/pkg"
)

// fixture writes the named files under a new temporary directory.
func fixture(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, name)

		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

func newTestContext(cfg log.Configuration) (context.Context, *log.Logger, *bytes.Buffer) {
	var out bytes.Buffer

	logger := log.New(cfg, log.WithOutput(&out), log.WithErrorOutput(new(bytes.Buffer)))

	return log.WithContext(context.Background(), logger), logger, &out
}

func TestRender_Stdout(t *testing.T) {
	t.Parallel()

	dir := fixture(t, map[string]string{
		"a.tmpl":    "A {{.x}}\n",
		"b.tmpl":    "B {{.x}}",
		"data.yaml": "x: 1\n",
	})

	ctx, _, out := newTestContext(log.Configuration{})

	r := &Render{
		Templates: []string{filepath.Join(dir, "a.tmpl"), filepath.Join(dir, "b.tmpl")},
		Data:      filepath.Join(dir, "data.yaml"),
	}

	if err := r.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := out.String(), "A 1\nB 1\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_OutputDir(t *testing.T) {
	t.Parallel()

	dir := fixture(t, map[string]string{"page.html.tmpl": "<p>{{.x}}</p>"})
	dest := filepath.Join(t.TempDir(), "site")

	ctx, _, out := newTestContext(log.Configuration{})

	r := &Render{
		Templates:    []string{"page.html"},
		TemplatePath: []string{dir},
		Output:       dest,
	}

	if err := r.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dest, "page.html"))
	if err != nil {
		t.Fatal(err)
	}

	if string(got) != "<p><no value></p>" {
		t.Errorf("unexpected content %q", got)
	}

	if want := "wrote " + filepath.Join(dest, "page.html") + "\n"; out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestRender_Duplicates(t *testing.T) {
	t.Parallel()

	dir := fixture(t, map[string]string{"a.tmpl": "once"})
	link := filepath.Join(dir, "link.tmpl")

	if err := os.Symlink(filepath.Join(dir, "a.tmpl"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	ctx, _, out := newTestContext(log.Configuration{})

	r := &Render{Templates: []string{filepath.Join(dir, "a.tmpl"), link, "a"}, TemplatePath: []string{dir}}

	if err := r.Run(ctx); err != nil {
		t.Fatal(err)
	}

	if out.String() != "once\n" {
		t.Errorf("expected one rendering, got %q", out.String())
	}
}

func TestRender_DryRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		decode func([]byte, any) error
	}{
		{"yaml", yaml.Unmarshal},
		{"json", json.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			dir := fixture(t, map[string]string{"a.tmpl": "hello {{.who}}"})
			dest := filepath.Join(t.TempDir(), "out")

			ctx, logger, out := newTestContext(log.Configuration{DryRun: true, LogAST: true})

			r := &Render{
				Templates: []string{filepath.Join(dir, "a.tmpl")},
				Output:    dest,
				Report:    tt.format,
			}

			if err := r.Run(ctx); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if _, err := os.Stat(dest); !os.IsNotExist(err) {
				t.Errorf("expected no output directory, got %v", err)
			}

			var report Report
			if err := tt.decode(out.Bytes(), &report); err != nil {
				t.Fatalf("decode report: %v\n%s", err, out)
			}

			if got := report.Outputs["a"]; got != "hello <no value>" {
				t.Errorf("unexpected output %q", got)
			}

			if !slices.Contains(report.Messages, "would write "+filepath.Join(dest, "a")) {
				t.Errorf("expected write message, got %q", report.Messages)
			}

			if !slices.ContainsFunc(report.Messages, func(m string) bool {
				return strings.HasPrefix(m, "ast warning: a:1:")
			}) {
				t.Errorf("expected AST warning in report, got %q", report.Messages)
			}

			if !slices.Equal(report.Messages, logger.Messages()) {
				t.Errorf("report messages differ from buffered messages")
			}
		})
	}
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	dir := fixture(t, map[string]string{
		"strict.tmpl": "{{.absent}}",
		"x/same.tmpl": "x",
		"y/same.tmpl": "y",
	})

	tests := []struct {
		name   string
		render Render
		want   []error
	}{
		{
			name:   "not_found",
			render: Render{Templates: []string{"missing"}, TemplatePath: []string{dir}},
			want:   []error{ErrRender, pkg.ErrTemplateNotFound},
		},
		{
			name: "strict",
			render: Render{
				Templates: []string{filepath.Join(dir, "strict.tmpl")},
				Strict:    true,
			},
			want: []error{ErrRender, pkg.ErrExecute},
		},
		{
			name: "bad_data",
			render: Render{
				Templates:    []string{"strict"},
				TemplatePath: []string{dir},
				Data:         filepath.Join(dir, "nope.yaml"),
			},
			want: []error{ErrRender, pkg.ErrReadData},
		},
		{
			name: "duplicate_output",
			render: Render{
				Templates: []string{
					filepath.Join(dir, "x", "same.tmpl"),
					filepath.Join(dir, "y", "same"),
				},
			},
			want: []error{ErrDuplicateOutput, pkg.Text("same")},
		},
		{
			name:   "isolate_stdin",
			render: Render{Templates: []string{"strict"}, Data: "-", Isolate: true},
			want:   []error{ErrIsolateStdin},
		},
		{
			name: "report_format",
			render: Render{
				Templates: []string{filepath.Join(dir, "strict.tmpl")},
				Report:    "toml",
			},
			want: []error{ErrReport, pkg.ErrInvalidFormat},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, _, _ := newTestContext(log.Configuration{DryRun: true})

			err := tt.render.Run(ctx)

			for _, want := range tt.want {
				if !errors.Is(err, want) {
					t.Errorf("expected %v in %v", want, err)
				}
			}
		})
	}
}
