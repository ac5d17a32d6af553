package cmd

import (
	"context"

	"github.com/ardnew/stencil/log"
	"github.com/ardnew/stencil/pkg"
)

// Version prints the program version.
type Version struct{}

// Run executes the version command.
func (Version) Run(ctx context.Context) error {
	log.FromContext(ctx).Output(pkg.Name + " " + pkg.Version)

	return nil
}
