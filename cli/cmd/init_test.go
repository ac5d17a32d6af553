package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/stencil/log"
)

// TestInitRun tests the Init.Run command.
func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		setup   func(t *testing.T, path string) // setup function to prepare test
		wantErr error
	}{
		{
			name: "create_new_config",
		},
		{
			name:  "overwrite_existing_with_force",
			force: true,
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o600); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name: "fail_without_force",
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o600); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: ErrFileExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.setup != nil {
				tt.setup(t, confPath)
			}

			var cli struct {
				Verbose  bool
				Name     string
				Dirs     []string
				Secret   string `hidden:""`
				PprofDir string `default:"/tmp"`

				Init Init `cmd:""`
			}

			parser, err := kong.New(&cli, kong.Vars{
				ConfigIdentifier: confPath,
			})
			if err != nil {
				t.Fatal(err)
			}

			ktx, err := parser.Parse([]string{"--verbose", "--dirs=a,b", "--secret=s", "init"})
			if err != nil {
				t.Fatal(err)
			}

			ctx := WithContext(context.Background(), ktx)
			ctx = log.WithContext(ctx, log.New(log.Configuration{Quiet: true}))

			err = (&Init{Force: tt.force}).Run(ctx)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, ErrWriteConfig) {
					t.Errorf("Init.Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Init.Run() error = %v", err)
			}

			content, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			var values map[string]any
			if err := yaml.Unmarshal(content, &values); err != nil {
				t.Fatalf("generated config is not valid YAML: %v\n%s", err, content)
			}

			if values["verbose"] != true {
				t.Errorf("expected verbose: true, got %v", values["verbose"])
			}

			dirs, _ := values["dirs"].([]any)
			if len(dirs) != 2 || dirs[0] != "a" || dirs[1] != "b" {
				t.Errorf("expected dirs [a b], got %v", values["dirs"])
			}

			for _, key := range []string{"name", "secret", "help", "pprof-dir"} {
				if _, ok := values[key]; ok {
					t.Errorf("unexpected key %q in config", key)
				}
			}
		})
	}
}
