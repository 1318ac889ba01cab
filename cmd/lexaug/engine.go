package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/cognicore/lexaug/pkg/lexaug"
	"github.com/cognicore/lexaug/pkg/lexaug/config"
	"github.com/cognicore/lexaug/pkg/lexaug/vecstore/sqlite"
)

// buildEngine applies command-line flags over the environment settings and
// opens the data files and cache they name.
func buildEngine(ctx context.Context, c *cli.Context, s *config.Settings, logger *slog.Logger, progress func(done, total int)) (*lexaug.Lexaug, func(), error) {
	opts := lexaug.OptionsFromSettings(s)
	opts.Logger = logger
	opts.Progress = progress

	opts.Embeddings = c.String("embeddings")
	opts.VectorsPath = c.String("vectors")
	opts.TopK = c.Int("topk")
	opts.PMI.TopK = opts.TopK
	opts.AutoStopDF = c.Float64("auto-stop-df")
	if c.Command.Name == "augment" {
		opts.Morph = c.Bool("morph")
		opts.Lemma = c.Bool("lemma")
		opts.Fields = c.Int("fields")
		opts.Seed = c.Uint64("seed")
	}

	check := config.Settings{
		LogLevel:   s.LogLevel,
		Embeddings: opts.Embeddings,
		Fields:     opts.Fields,
		TopK:       opts.TopK,
		AutoStopDF: opts.AutoStopDF,
	}
	if err := check.Validate(); err != nil {
		return nil, nil, err
	}

	loader := config.Loader{
		StoplistPath: c.String("stoplist"),
		LexiconPath:  c.String("lexicon"),
	}
	comp, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}
	opts.Stoplist = comp.Stoplist
	opts.Lexicon = comp.Lexicon

	cleanup := func() {}
	if path := c.String("cache"); path != "" {
		cache, err := sqlite.OpenSQLite(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("open cache: %w", err)
		}
		opts.Cache = cache
		cleanup = func() {
			if err := cache.Close(); err != nil {
				logger.Warn("close cache", "error", err)
			}
		}
	}

	return lexaug.New(opts), cleanup, nil
}
