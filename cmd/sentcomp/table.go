package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func tableCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "table",
		Usage: "print the normalization table as JSON, a starting point for --table files",
		Flags: []cli.Flag{tableFlag},
		Action: func(c *cli.Context) error {
			return tableCommand(c.String("table"), ui)
		},
	}
}

func tableCommand(path string, ui UI) error {
	table, err := loadTable(path)
	if err != nil {
		return err
	}

	data, err := table.MarshalIndent()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(ui.Out, "%s\n", data)
	return err
}
