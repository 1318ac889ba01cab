// Package word2vec trains skip-gram vectors over lemma sentences and serves
// them as a vectors.Provider.
package word2vec

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ynqa/wego/pkg/model/modelutil/vector"
	"github.com/ynqa/wego/pkg/model/word2vec"

	"github.com/cognicore/lexaug/pkg/lexaug/internalerr"
	"github.com/cognicore/lexaug/pkg/lexaug/vecstore"
	"github.com/cognicore/lexaug/pkg/lexaug/vectors"
)

// Options holds training hyperparameters
type Options struct {
	Dim        int // vector dimension
	Window     int // context window
	Negative   int // negative samples per positive
	MinCount   int // words seen fewer times are dropped
	Iter       int // training epochs
	Goroutines int
	TopK       int // neighbors returned by Nearest

	// Cache, when set, is consulted before training and filled after.
	Cache  vecstore.Store
	Logger *slog.Logger
}

// DefaultOptions returns the usual word2vec defaults.
func DefaultOptions() Options {
	return Options{
		Dim:        100,
		Window:     5,
		Negative:   5,
		MinCount:   5,
		Iter:       5,
		Goroutines: 4,
		TopK:       vectors.DefaultTopK,
	}
}

func (o Options) validate() error {
	if o.Dim <= 0 || o.Window <= 0 || o.Iter <= 0 || o.MinCount < 0 || o.Negative < 0 {
		return fmt.Errorf("word2vec options %+v: %w", o.hyper(), internalerr.ErrInvalidConfig)
	}
	return nil
}

// hyper is the subset of options that shapes the trained vectors.
type hyper struct {
	Dim, Window, Negative, MinCount, Iter int
}

func (o Options) hyper() hyper {
	return hyper{Dim: o.Dim, Window: o.Window, Negative: o.Negative, MinCount: o.MinCount, Iter: o.Iter}
}

// Train fits vectors on sentences and returns a searchable space.
// Each sentence is a sequence of lemmas.
func Train(ctx context.Context, sentences [][]string, opts Options) (*vectors.Space, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var fp string
	if opts.Cache != nil {
		fp = Fingerprint(sentences, opts)
		t, ok, err := opts.Cache.Get(ctx, fp)
		if err != nil {
			return nil, fmt.Errorf("vector cache: %w", err)
		}
		if ok {
			log.Info("word2vec cache hit", slog.String("fingerprint", fp), slog.Int("words", t.Len()))
			return vectors.NewSpace(t, opts.TopK)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := train(sentences, opts)
	if err != nil {
		return nil, err
	}
	log.Info("word2vec trained",
		slog.Int("sentences", len(sentences)),
		slog.Int("words", t.Len()),
		slog.Int("dim", t.Dim))

	if opts.Cache != nil {
		if err := opts.Cache.Put(ctx, fp, t); err != nil {
			return nil, fmt.Errorf("vector cache: %w", err)
		}
	}

	return vectors.NewSpace(t, opts.TopK)
}

func train(sentences [][]string, opts Options) (*vectors.Table, error) {
	goroutines := opts.Goroutines
	if goroutines <= 0 {
		goroutines = 1
	}

	model, err := word2vec.NewForOptions(word2vec.Options{
		BatchSize:          1024,
		Dim:                opts.Dim,
		DocInMemory:        true,
		Goroutines:         goroutines,
		Initlr:             0.025,
		Iter:               opts.Iter,
		LogBatch:           100000,
		MaxCount:           -1,
		MaxDepth:           100,
		MinCount:           opts.MinCount,
		MinLR:              0.025 * 1.0e-4,
		ModelType:          "skipgram",
		NegativeSampleSize: opts.Negative,
		OptimizerType:      "ns",
		SubsampleThreshold: 1.0e-3,
		ToLower:            false,
		UpdateLRBatch:      100000,
		Verbose:            false,
		Window:             opts.Window,
	})
	if err != nil {
		return nil, fmt.Errorf("word2vec init: %w", err)
	}

	if err := model.Train(bytes.NewReader(corpusText(sentences))); err != nil {
		return nil, fmt.Errorf("word2vec train: %w", err)
	}

	var buf bytes.Buffer
	if err := model.Save(&buf, vector.Agg); err != nil {
		return nil, fmt.Errorf("word2vec save: %w", err)
	}
	return vectors.ParseText(&buf)
}

// corpusText lays out one sentence per line.
func corpusText(sentences [][]string) []byte {
	var b strings.Builder
	for _, s := range sentences {
		if len(s) == 0 {
			continue
		}
		b.WriteString(strings.Join(s, " "))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Fingerprint identifies a corpus and hyperparameter combination.
func Fingerprint(sentences [][]string, opts Options) string {
	h := md5.New()
	fmt.Fprintf(h, "%+v\n", opts.hyper())
	io.WriteString(h, string(corpusText(sentences)))
	return hex.EncodeToString(h.Sum(nil))
}
