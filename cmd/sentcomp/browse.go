package main

import (
	"fmt"

	"github.com/revelaction/sentcomp/browse"
	"github.com/revelaction/sentcomp/render"
	"github.com/urfave/cli/v2"
)

func browseCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "inspect the stored examples interactively",
		Flags: []cli.Flag{
			storeFlag,
			formatFlag,
			&cli.BoolFlag{Name: "no-color", Usage: "mark deleted tokens with brackets instead of color"},
		},
		Action: func(c *cli.Context) error {
			return browseCommand(c.String("store"), c.String("format"), c.Bool("no-color"), ui)
		},
	}
}

func browseCommand(store, format string, noColor bool, ui UI) error {
	if !render.IsSupported(format) {
		return fmt.Errorf("unsupported format %q", format)
	}

	repo, err := NewExampleRepository(store)
	if err != nil {
		return err
	}
	defer repo.Close()

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = !noColor
	r.HasPrefix = true
	r.Format = format

	// now present the REPL
	return browse.NewHandler(repo, r, ui.Out).Run()
}
