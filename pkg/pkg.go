//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of the stencil module embedded at build
// time. It is printed by the CLI when users invoke the version subcommand.
var Version = strings.TrimSpace(version)

const (
	// Name is the canonical command and module identifier used across the
	// project. It identifies the main process, appears in help text and
	// forms the default config paths.
	Name = "stencil"
	// Description is a short, human-readable summary of the project used in
	// help output and documentation.
	Description = "Template renderer with dry-run reporting"
	// EnvPrefix prefixes the environment variables read by stencil.
	EnvPrefix = "STENCIL_"
)
