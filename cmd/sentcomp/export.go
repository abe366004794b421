package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/sentcomp/render"
	"github.com/urfave/cli/v2"
)

type ExportOptions struct {
	Store      string
	Format     string
	Out        string
	NoProgress bool
}

func exportCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write all stored examples as training data",
		Flags: []cli.Flag{
			storeFlag,
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "json, conll, text, compressed or table", Value: "conll"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output `FILE` (default: standard output)"},
			&cli.BoolFlag{Name: "no-progress", Usage: "do not show a progress bar"},
		},
		Action: func(c *cli.Context) error {
			opts := ExportOptions{
				Store:      c.String("store"),
				Format:     c.String("format"),
				Out:        c.String("out"),
				NoProgress: c.Bool("no-progress"),
			}
			return exportCommand(opts, ui)
		},
	}
}

func exportCommand(opts ExportOptions, ui UI) error {
	if opts.Format != "json" && !render.IsSupported(opts.Format) {
		return fmt.Errorf("unsupported format %q", opts.Format)
	}

	repo, err := NewExampleRepository(opts.Store)
	if err != nil {
		return err
	}
	defer repo.Close()

	var w io.Writer = ui.Out
	if opts.Out != "" {
		f, err := os.Create(opts.Out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", opts.Out, err)
		}
		defer f.Close()
		w = f
	}

	list, err := repo.List()
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.Out = w
	r.Format = opts.Format
	jr := render.NewJSONRenderer(w)

	// the bar shares the terminal with the output unless a file is written
	showBar := !opts.NoProgress && opts.Out != ""
	var bar *uiprogress.Bar
	if showBar {
		uiprogress.Start()
		bar = uiprogress.AddBar(len(list))
		bar.AppendCompleted()
		bar.PrependElapsed()
		defer uiprogress.Stop()
	}

	for _, meta := range list {
		ex, err := repo.Read(meta.Id)
		if err != nil {
			return fmt.Errorf("failed to read example %d: %w", meta.Id, err)
		}

		if opts.Format == "json" {
			if err := jr.Render(ex); err != nil {
				return err
			}
		} else {
			r.Example(ex)
		}

		if bar != nil {
			bar.Incr()
		}
	}

	if opts.Out != "" {
		fmt.Fprintf(ui.Out, "Successfully exported %d examples from %s to %s\n", len(list), opts.Store, opts.Out)
	}
	return nil
}
