package main

import (
	"fmt"
	"sort"

	"github.com/revelaction/sentcomp/stat"
	"github.com/urfave/cli/v2"
)

func statCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "stat",
		Usage: "print label counts of a store",
		Flags: []cli.Flag{
			storeFlag,
			&cli.BoolFlag{Name: "dist", Usage: "also print the number of examples per sentence length"},
		},
		Action: func(c *cli.Context) error {
			return statCommand(c.String("store"), c.Bool("dist"), ui)
		},
	}
}

func statCommand(store string, dist bool, ui UI) error {
	repo, err := NewExampleRepository(store)
	if err != nil {
		return err
	}
	defer repo.Close()

	if !dist {
		stats, err := repo.Stats()
		if err != nil {
			return err
		}

		ratio := 0.0
		if stats.NumTokens > 0 {
			ratio = float64(stats.NumKept) / float64(stats.NumTokens)
		}

		fmt.Fprintf(ui.Out, "Num examples %d, num tokens %d, kept %d (%.2f), unmatched %d\n",
			stats.NumExamples, stats.NumTokens, stats.NumKept, ratio, stats.NumUnmatched)
		return nil
	}

	list, err := repo.List()
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	for _, meta := range list {
		ex, err := repo.Read(meta.Id)
		if err != nil {
			return err
		}
		hdl.Add(ex)
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num examples %d, num tokens %d, kept %d (%.2f), unmatched %d\n",
		stats.NumExamples, stats.NumTokens, stats.NumKept, stats.KeepRatio, stats.NumUnmatched)
	fmt.Fprintf(ui.Out, "Fully matched examples %d, num tokens per example %d\n", stats.NumFullyMatched, stats.TokensPerExampleMean)

	lengths := make([]int, 0, len(stats.TokensPerExampleDis))
	for l := range stats.TokensPerExampleDis {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	for _, l := range lengths {
		fmt.Fprintf(ui.Out, "%4d %d\n", l, stats.TokensPerExampleDis[l])
	}

	return nil
}
