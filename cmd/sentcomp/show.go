package main

import (
	"fmt"
	"strconv"

	"github.com/revelaction/sentcomp/render"
	"github.com/revelaction/sentcomp/storage"
	"github.com/urfave/cli/v2"
)

type ShowOptions struct {
	Store    string
	Format   string
	NoColor  bool
	NoPrefix bool
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"f"},
	Usage:   "output format: text, compressed, table or conll",
	Value:   render.Defaultformat,
}

func showCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "list the stored examples, or show one",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			storeFlag,
			formatFlag,
			&cli.BoolFlag{Name: "no-color", Usage: "mark deleted tokens with brackets instead of color"},
			&cli.BoolFlag{Name: "no-prefix", Usage: "do not print the example id"},
		},
		Action: func(c *cli.Context) error {
			opts := ShowOptions{
				Store:    c.String("store"),
				Format:   c.String("format"),
				NoColor:  c.Bool("no-color"),
				NoPrefix: c.Bool("no-prefix"),
			}
			return showCommand(opts, c.Args().First(), ui)
		},
	}
}

func showCommand(opts ShowOptions, arg string, ui UI) error {
	if !render.IsSupported(opts.Format) {
		return fmt.Errorf("unsupported format %q", opts.Format)
	}

	repo, err := NewExampleRepository(opts.Store)
	if err != nil {
		return err
	}
	defer repo.Close()

	if arg == "" {
		return listExamples(repo, ui)
	}

	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid example id %q", arg)
	}

	ex, err := repo.Read(id)
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = !opts.NoColor
	r.HasPrefix = !opts.NoPrefix
	r.Format = opts.Format
	r.Example(ex)
	return nil
}

func listExamples(repo storage.ExampleReader, ui UI) error {
	examples, err := repo.List()
	if err != nil {
		return err
	}

	for _, ex := range examples {
		fmt.Fprintf(ui.Out, "📖 %d %s\n", ex.Id, ex.Sentence)
	}

	return nil
}
