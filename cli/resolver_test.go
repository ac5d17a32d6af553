package cli

import (
	"slices"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/stencil/log"
)

func flagNamed(name string) *kong.Flag {
	return &kong.Flag{Value: &kong.Value{Name: name}}
}

func TestLoad(t *testing.T) {
	input := strings.Join([]string{
		"verbose: true",
		"log_ast: true",
		"jobs: 3",
		"ratio: 0.5",
		"template-path: [a, 2]",
	}, "\n")

	res, err := load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"verbose", true},
		{"log-ast", true},
		{"jobs", "3"},
		{"ratio", "0.5"},
		{"quiet", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := res.Resolve(nil, nil, flagNamed(tt.flag))
			if err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Errorf("expected %v (%T), got %v (%T)", tt.want, tt.want, got, got)
			}
		})
	}

	got, _ := res.Resolve(nil, nil, flagNamed("template-path"))

	list, _ := got.([]any)
	if !slices.Equal(list, []any{"a", "2"}) {
		t.Errorf("expected list [a 2], got %#v", got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })

	logger := log.New(log.Configuration{DryRun: true})
	log.SetDefault(logger)

	for _, input := range []string{"", "- a\n- b\n"} {
		res, err := load(strings.NewReader(input))
		if err != nil {
			t.Errorf("%q: unexpected error: %v", input, err)
		}

		if c, ok := res.(config); !ok || len(c) != 0 {
			t.Errorf("%q: expected empty config, got %#v", input, res)
		}

		if err := res.Validate(nil); err != nil {
			t.Errorf("%q: unexpected validation error: %v", input, err)
		}
	}

	msgs := logger.Messages()
	if len(msgs) != 1 || !strings.HasPrefix(msgs[0], "warning: ignoring configuration: ") {
		t.Errorf("expected one warning for the sequence, got %q", msgs)
	}
}
