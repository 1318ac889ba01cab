package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/cognicore/lexaug/pkg/lexaug"
	"github.com/cognicore/lexaug/pkg/lexaug/config"
)

func augmentCommand(s *config.Settings, ui UI) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "data", Required: true, Usage: "corpus to augment"},
		&cli.StringSliceFlag{Name: "source", Required: true, Usage: "corpus to draw alternatives from (repeatable)"},
		&cli.StringFlag{Name: "out", Value: "-", Usage: "output file, - for stdout"},
		&cli.BoolFlag{Name: "morph", Value: s.Morph, Usage: "match morphological tags"},
		&cli.BoolFlag{Name: "lemma", Value: s.Lemma, Usage: "match lemmas (with --morph)"},
		&cli.IntFlag{Name: "fields", Value: s.Fields, Usage: "output columns, 3 or 4 (default follows --morph)"},
		&cli.Uint64Flag{Name: "seed", Value: s.Seed, Usage: "sampling seed, 0 for random"},
		&cli.BoolFlag{Name: "progress", Usage: "show a progress bar (file output only)"},
	}

	return &cli.Command{
		Name:  "augment",
		Usage: "replace every token of --data with an alternative from --source",
		Flags: append(flags, embeddingFlags(s)...),
		Action: func(c *cli.Context) error {
			logger, err := newLogger(c, ui)
			if err != nil {
				return err
			}

			job := lexaug.Job{
				DataPath:    c.String("data"),
				SourcePaths: c.StringSlice("source"),
				TrainPaths:  c.StringSlice("train"),
			}
			if out := c.String("out"); out != "-" {
				job.OutPath = out
			} else {
				job.Out = ui.Out
			}

			var progress func(done, total int)
			if c.Bool("progress") && job.OutPath != "" {
				var bar *uiprogress.Bar
				progress = func(done, total int) {
					if bar == nil {
						bar = uiprogress.AddBar(total).AppendCompleted().PrependElapsed()
					}
					bar.Set(done)
				}
				uiprogress.Start()
				defer uiprogress.Stop()
			}

			engine, cleanup, err := buildEngine(c.Context, c, s, logger, progress)
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := engine.Run(c.Context, job)
			if err != nil {
				return err
			}
			if job.OutPath != "" {
				fmt.Fprintf(ui.Err, "run %s: %d records (%s), %d primary, %d fallback, %d widened\n",
					report.RunID, report.Stats.Records, report.Mode,
					report.Stats.Primary, report.Stats.Fallback, report.Stats.Widened)
			}
			return nil
		},
	}
}
