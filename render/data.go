package render

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/stencil/pkg"
)

// ReadData decodes a YAML document into the map passed to templates.
// Empty input yields an empty map.
func ReadData(r io.Reader) (map[string]any, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrReadData.Wrap(err)
	}

	data := make(map[string]any)

	if len(bytes.TrimSpace(buf)) == 0 {
		return data, nil
	}

	var doc any

	err = yaml.Unmarshal(buf, &doc)
	if err != nil {
		return nil, pkg.ErrReadData.Wrap(err)
	}

	switch v := doc.(type) {
	case nil:
		return data, nil

	case map[string]any:
		return v, nil

	default:
		return nil, pkg.ErrReadData.Wrapf("top-level value is %T, not a mapping", v)
	}
}

// ReadDataFile decodes the YAML file at path. An empty path yields an empty
// map and "-" reads standard input.
func ReadDataFile(path string) (map[string]any, error) {
	switch path {
	case "":
		return make(map[string]any), nil

	case "-":
		return ReadData(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, pkg.ErrReadData.Wrap(err)
	}
	defer file.Close()

	data, err := ReadData(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return data, nil
}
