package main

import (
	"context"
	"os"

	"github.com/ardnew/stencil/cli"
	"github.com/ardnew/stencil/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error(err)

		// A failed dry run never prints its report; show what was buffered.
		if l := log.Default(); l.StackMessages() {
			for _, msg := range l.Messages() {
				l.Output(msg)
			}
		}

		os.Exit(1)
	}
}
