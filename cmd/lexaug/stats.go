package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/cognicore/lexaug/pkg/lexaug/analytics"
	"github.com/cognicore/lexaug/pkg/lexaug/config"
	"github.com/cognicore/lexaug/pkg/lexaug/record"
)

func statsCommand(s *config.Settings, ui UI) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "report how well --source covers --data before augmenting",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data", Required: true, Usage: "corpus to augment"},
			&cli.StringSliceFlag{Name: "source", Required: true, Usage: "corpus to draw alternatives from (repeatable)"},
			&cli.BoolFlag{Name: "morph", Value: s.Morph, Usage: "match morphological tags"},
			&cli.BoolFlag{Name: "lemma", Value: s.Lemma, Usage: "match lemmas (with --morph)"},
			&cli.IntFlag{Name: "limit", Value: 10, Usage: "missing paths and ambiguous lemmas to list"},
			&cli.Float64Flag{Name: "min-entropy", Value: 0.5, Usage: "category entropy above which a lemma is ambiguous"},
		},
		Action: func(c *cli.Context) error {
			opts := record.ReadOptions{Morph: c.Bool("morph")}
			data, err := record.ReadFile(c.String("data"), opts)
			if err != nil {
				return fmt.Errorf("read data: %w", err)
			}
			var sources []record.Record
			for _, path := range c.StringSlice("source") {
				corpus, err := record.ReadFile(path, opts)
				if err != nil {
					return fmt.Errorf("read sources: %w", err)
				}
				sources = append(sources, corpus.Records...)
			}

			analyzer := analytics.NewAnalyzer()
			analyzer.Process(sources)
			stats := analyzer.Snapshot()
			cov := analytics.MeasureCoverage(data.Records, sources, c.Bool("morph"), c.Bool("lemma"))
			limit := c.Int("limit")

			fmt.Fprintf(ui.Out, "sources: %d records, %d categories, %d category/morph paths, %d lemmas\n",
				stats.TotalRecords, len(stats.Categories), len(stats.Paths), len(stats.LemmaCats))
			fmt.Fprintf(ui.Out, "data: %d records, %d primary, %d fallback, %d missing\n",
				cov.Records, cov.Primary, cov.Fallback, cov.Missing)

			for i, p := range cov.Paths {
				if i == limit {
					break
				}
				fmt.Fprintf(ui.Out, "missing\t%s\t%s\t%s\t%d\n", p.Category, p.Morph, p.Lemma, p.Count)
			}
			for i, l := range stats.AmbiguousLemmas(c.Float64("min-entropy")) {
				if i == limit {
					break
				}
				fmt.Fprintf(ui.Out, "ambiguous\t%s\t%d categories\t%.3f\n", l.Lemma, l.Categories, l.Entropy)
			}
			return nil
		},
	}
}
