package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/cognicore/lexaug/pkg/lexaug/config"
)

// UI contains the output streams of the command.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(ui.Err, "lexaug: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(settings, ui).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(ui.Err, "lexaug: %v\n", err)
		os.Exit(1)
	}
}

func newApp(s *config.Settings, ui UI) *cli.App {
	return &cli.App{
		Name:      "lexaug",
		Usage:     "augment annotated corpora with same-category alternatives",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: s.LogLevel, Usage: "debug, info, warn or error"},
		},
		Commands: []*cli.Command{
			augmentCommand(s, ui),
			neighborsCommand(s, ui),
			statsCommand(s, ui),
			cacheCommand(ui),
		},
	}
}

func newLogger(c *cli.Context, ui UI) (*slog.Logger, error) {
	level, err := config.ParseLevel(c.String("log-level"))
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(ui.Err, &slog.HandlerOptions{Level: level})), nil
}

// embeddingFlags are shared by the commands that build a provider.
func embeddingFlags(s *config.Settings) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "embeddings",
			Value: s.Embeddings,
			Usage: "neighbor provider: " + strings.Join(config.EmbeddingKinds, ", "),
		},
		&cli.StringFlag{Name: "vectors", Value: s.VectorsPath, Usage: "pretrained vector file"},
		&cli.StringFlag{Name: "lexicon", Value: s.LexiconPath, Usage: "synonym lexicon YAML"},
		&cli.StringSliceFlag{Name: "train", Usage: "training corpus (repeatable)"},
		&cli.StringFlag{Name: "stoplist", Value: s.StoplistPath, Usage: "stop lemmas YAML, removed from training sentences"},
		&cli.Float64Flag{Name: "auto-stop-df", Value: s.AutoStopDF, Usage: "also stop lemmas in more than this percent of sentences"},
		&cli.StringFlag{Name: "cache", Value: s.CachePath, Usage: "SQLite cache of trained vectors"},
		&cli.IntFlag{Name: "topk", Value: s.TopK, Usage: "neighbors per lemma"},
	}
}
