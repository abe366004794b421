package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// Set by the linker
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func versionCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the version",
		Action: func(c *cli.Context) error {
			return versionCommand(ui)
		},
	}
}

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "sentcomp version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}
