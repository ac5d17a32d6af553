package cli

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/stencil/log"
)

// load is a [kong.ConfigurationLoader] that reads flag values from a YAML
// mapping.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(load, "/path/to/config.yaml")
//
// Keys are flag names. Hyphens may be written as underscores:
//
//	verbose: true
//	log_ast: true
//	template-path:
//	  - ~/templates
//
// Command-line flags override config file values. A file that is not a
// YAML mapping is ignored with a warning.
func load(r io.Reader) (kong.Resolver, error) {
	var values map[string]any

	err := yaml.NewDecoder(r).Decode(&values)
	if err != nil && !errors.Is(err, io.EOF) {
		log.Warning("ignoring configuration: " + err.Error())

		return config{}, nil
	}

	return makeConfig(values), nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// makeConfig converts decoded YAML values to the forms Kong decodes flags
// from. Kong requires numbers as strings for parsing.
func makeConfig(values map[string]any) config {
	c := make(config, len(values))

	for key, value := range values {
		c[key] = native(value)
	}

	return c
}

func native(value any) any {
	switch v := value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)

	case uint64:
		return strconv.FormatUint(v, 10)

	case int:
		return strconv.Itoa(v)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = native(e)
		}

		return out

	default:
		return v
	}
}

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-ast") but YAML keys may use
	// underscores. Try both forms.
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}
