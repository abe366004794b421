package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "sentcomp: %v\n", err)
}

var storeFlag = &cli.StringFlag{
	Name:     "store",
	Aliases:  []string{"s"},
	Usage:    "example store: a .db/.sqlite file, or a JSON lines file",
	EnvVars:  []string{"SENTCOMP_STORE"},
	Required: true,
}

var tableFlag = &cli.StringFlag{
	Name:    "table",
	Aliases: []string{"t"},
	Usage:   "JSON file extending the normalization table",
	EnvVars: []string{"SENTCOMP_TABLE"},
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:                 "sentcomp",
		Usage:                "label sentence compression corpora with KEEP/DELETE per token",
		Version:              fmt.Sprintf("%s (commit: %s)", BuildTag, BuildCommit),
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			convertCmd(ui),
			showCmd(ui),
			statCmd(ui),
			exportCmd(ui),
			browseCmd(ui),
			tableCmd(ui),
			normalizeCmd(ui),
			versionCmd(ui),
		},
	}
}
