package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/stencil/log"
	"github.com/ardnew/stencil/pkg"
	"github.com/ardnew/stencil/worker"
)

func newKongContext(t *testing.T, stdout io.Writer, vars kong.Vars) *kong.Context {
	t.Helper()

	var cli struct{}

	parser, err := kong.New(&cli, kong.Writers(stdout, io.Discard), vars)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	return ktx
}

func TestExec(t *testing.T) {
	t.Parallel()

	dir := fixture(t, map[string]string{
		"a.tmpl":    "{{.greeting}}, {{.who}}{{.missing}}\n",
		"data.yaml": "greeting: hi\nwho: there\n",
	})

	newExecContext := func(t *testing.T, cfg log.Configuration) (context.Context, *bytes.Buffer, *bytes.Buffer) {
		t.Helper()

		var stdout, logged bytes.Buffer

		ctx := WithContext(context.Background(), newKongContext(t, &stdout, kong.Vars{}))
		ctx = log.WithContext(ctx, log.New(cfg, log.WithOutput(&logged)))

		return ctx, &stdout, &logged
	}

	e := &Exec{Template: filepath.Join(dir, "a.tmpl"), Data: filepath.Join(dir, "data.yaml")}

	t.Run("main", func(t *testing.T) {
		t.Parallel()

		ctx, stdout, logged := newExecContext(t, log.Configuration{Verbose: true})

		if err := e.Run(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := stdout.String(); got != "hi, there<no value>\n" {
			t.Errorf("unexpected content %q", got)
		}

		if bytes.Contains(logged.Bytes(), []byte("hi, there")) {
			t.Error("rendered content written to the logger")
		}
	})

	t.Run("worker", func(t *testing.T) {
		t.Parallel()

		ctx, stdout, logged := newExecContext(t, log.Configuration{
			DryRun: true,
			LogAST: true,
			Role:   log.RoleTemplateWorker,
		})

		if err := e.Run(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var res worker.Result
		if err := json.Unmarshal(stdout.Bytes(), &res); err != nil {
			t.Fatalf("expected a worker result, got %q: %v", stdout.String(), err)
		}

		if res.Content != "hi, there<no value>\n" {
			t.Errorf("unexpected content %q", res.Content)
		}

		if !slices.ContainsFunc(res.Messages, func(m string) bool {
			return strings.HasPrefix(m, "ast warning: a:1:")
		}) {
			t.Errorf("expected buffered AST warning in result, got %q", res.Messages)
		}

		if logged.Len() != 0 {
			t.Errorf("expected nothing printed, got %q", logged.String())
		}
	})
}

func TestExec_Error(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer

	ctx := WithContext(context.Background(), newKongContext(t, &stdout, kong.Vars{}))
	ctx = log.WithContext(ctx, log.New(log.Configuration{Quiet: true}, log.WithOutput(io.Discard)))

	e := &Exec{Template: filepath.Join(t.TempDir(), "missing.tmpl")}

	if err := e.Run(ctx); !errors.Is(err, pkg.ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}

	if stdout.Len() != 0 {
		t.Errorf("expected no content, got %q", stdout.String())
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	ctx := log.WithContext(context.Background(), log.New(log.Configuration{Quiet: true}, log.WithOutput(&out)))

	if err := (Version{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	if want := pkg.Name + " " + pkg.Version + "\n"; out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}
