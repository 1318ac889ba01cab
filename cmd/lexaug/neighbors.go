package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/cognicore/lexaug/pkg/lexaug/config"
)

func neighborsCommand(s *config.Settings, ui UI) *cli.Command {
	return &cli.Command{
		Name:      "neighbors",
		Usage:     "print the neighbors a provider returns for a lemma",
		ArgsUsage: "LEMMA",
		Flags:     embeddingFlags(s),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("neighbors takes exactly one lemma")
			}
			logger, err := newLogger(c, ui)
			if err != nil {
				return err
			}
			engine, cleanup, err := buildEngine(c.Context, c, s, logger, nil)
			if err != nil {
				return err
			}
			defer cleanup()

			neighbors, err := engine.Neighbors(c.Context, c.StringSlice("train"), c.Args().First())
			if err != nil {
				return err
			}
			for _, n := range neighbors {
				fmt.Fprintf(ui.Out, "%s\t%.4f\n", n.Word, n.Score)
			}
			return nil
		},
	}
}
