package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/revelaction/sentcomp/align"
	"github.com/urfave/cli/v2"
)

func normalizeCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Usage:     "print the tokens of a compression, and the labels of a sentence if given",
		ArgsUsage: "<compression>",
		Flags: []cli.Flag{
			tableFlag,
			&cli.StringFlag{Name: "forms", Usage: "space separated sentence tokens"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("normalize needs exactly one compression argument")
			}
			return normalizeCommand(c.Args().First(), c.String("forms"), c.String("table"), ui)
		},
	}
}

func normalizeCommand(compression, sentence, table string, ui UI) error {
	n, err := newNormalizer(table)
	if err != nil {
		return err
	}

	forms := strings.Fields(strings.ToLower(sentence))
	tokens := n.Tokens(compression, forms)

	for _, t := range tokens {
		fmt.Fprintf(ui.Out, "%q\n", t)
	}

	if len(forms) == 0 {
		return nil
	}

	labels, err := align.Labels(forms, tokens)
	if err != nil {
		return err
	}

	fmt.Fprintln(ui.Out)
	for i, l := range labels {
		fmt.Fprintf(ui.Out, "%20q %s\n", forms[i], l)
	}

	return nil
}
