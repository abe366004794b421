package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/sentcomp/label"
	"github.com/revelaction/sentcomp/record"
	sent "github.com/revelaction/sentcomp/sentence"
	"github.com/urfave/cli/v2"
)

type ConvertOptions struct {
	Corpus     string
	Store      string
	Table      string
	Limit      int
	SkipErrors bool
	NoProgress bool
}

func convertCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "label the records of a corpus file and write them to a store",
		ArgsUsage: "<compression-data.json[.gz]>",
		Flags: []cli.Flag{
			storeFlag,
			tableFlag,
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "stop after `N` examples (0: all)"},
			&cli.BoolFlag{Name: "skip-errors", Usage: "report records that can not be labeled and continue"},
			&cli.BoolFlag{Name: "no-progress", Usage: "do not show a progress bar"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("convert needs exactly one corpus file")
			}

			opts := ConvertOptions{
				Corpus:     c.Args().First(),
				Store:      c.String("store"),
				Table:      c.String("table"),
				Limit:      c.Int("limit"),
				SkipErrors: c.Bool("skip-errors"),
				NoProgress: c.Bool("no-progress"),
			}
			return convertCommand(opts, ui)
		},
	}
}

// progressReader reports the bytes read from the corpus file to a bar, in
// KiB.
type progressReader struct {
	r    io.Reader
	n    int64
	onKB func(kb int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.n += int64(n)
	p.onKB(int(p.n / 1024))
	return n, err
}

func convertCommand(opts ConvertOptions, ui UI) error {
	n, err := newNormalizer(opts.Table)
	if err != nil {
		return err
	}

	f, err := os.Open(opts.Corpus)
	if err != nil {
		return err
	}
	defer f.Close()

	var src io.Reader = f
	if !opts.NoProgress {
		info, err := f.Stat()
		if err != nil {
			return err
		}

		uiprogress.Start()
		bar := uiprogress.AddBar(int(info.Size()/1024) + 1)
		bar.AppendCompleted()
		bar.PrependElapsed()
		defer uiprogress.Stop()

		src = &progressReader{r: f, onKB: func(kb int) { bar.Set(kb) }}
	}

	rd, err := record.NewAutoReader(src)
	if err != nil {
		return fmt.Errorf("corpus %s: %w", opts.Corpus, err)
	}
	defer rd.Close()

	repo, err := NewExampleRepository(opts.Store)
	if err != nil {
		return err
	}

	count, skipped := 0, 0
	procOpts := label.Options{
		Limit:   opts.Limit,
		Discard: true,
		OnExample: func(ex sent.Example) error {
			if err := repo.Write(ex); err != nil {
				return err
			}
			count++
			return nil
		},
	}

	if opts.SkipErrors {
		procOpts.OnError = func(err error) error {
			skipped++
			fmt.Fprintf(ui.Err, "⚠  %s\n", err)
			return nil
		}
	}

	_, err = label.NewProcessor(n).ProcessAll(rd, procOpts)
	if closeErr := repo.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Successfully converted %d examples (%d skipped) from %s to %s\n", count, skipped, opts.Corpus, opts.Store)
	return nil
}
