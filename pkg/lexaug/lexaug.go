// Package lexaug augments annotated corpora by replacing every token with an
// alternative drawn from source corpora that shares its part of speech and,
// optionally, its morphological tag and lemma.
package lexaug

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	mrand "math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/lexaug/pkg/lexaug/augment"
	"github.com/cognicore/lexaug/pkg/lexaug/config"
	"github.com/cognicore/lexaug/pkg/lexaug/ingest"
	"github.com/cognicore/lexaug/pkg/lexaug/internalerr"
	"github.com/cognicore/lexaug/pkg/lexaug/lexicon"
	"github.com/cognicore/lexaug/pkg/lexaug/pmi"
	"github.com/cognicore/lexaug/pkg/lexaug/record"
	"github.com/cognicore/lexaug/pkg/lexaug/stoplist"
	"github.com/cognicore/lexaug/pkg/lexaug/vecstore"
	"github.com/cognicore/lexaug/pkg/lexaug/vectors"
	"github.com/cognicore/lexaug/pkg/lexaug/vectors/word2vec"
)

// Lexaug is the augmentation facade
type Lexaug struct {
	opts   Options
	logger *slog.Logger

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Options configures a Lexaug instance
type Options struct {
	Morph bool
	Lemma bool

	// Embeddings names the provider widening lemma lookups; one of the
	// config.Embeddings* kinds. Empty disables embeddings.
	Embeddings  string
	VectorsPath string           // pretrained vector file
	Lexicon     *lexicon.Lexicon // curated provider
	TopK        int

	// Training input for word2vec and pmi. Stoplist may be nil.
	Stoplist   *stoplist.Manager
	AutoStopDF float64
	Word2Vec   word2vec.Options
	PMI        pmi.Config
	Cache      vecstore.Store // optional, owned by the caller

	// Fields is the output arity, 3 or 4. 0 picks 4 in morph mode, 3 otherwise.
	Fields int

	// Seed of the sampling source; 0 picks a random seed.
	Seed uint64

	Logger   *slog.Logger
	Progress func(done, total int)
}

// DefaultOptions returns options with default hyperparameters and no embeddings.
func DefaultOptions() Options {
	return Options{
		TopK:     vectors.DefaultTopK,
		Word2Vec: word2vec.DefaultOptions(),
		PMI:      pmi.DefaultConfig(),
	}
}

// OptionsFromSettings maps environment settings onto Options. Data files
// named by the settings are not loaded.
func OptionsFromSettings(s *config.Settings) Options {
	opts := DefaultOptions()
	opts.Morph = s.Morph
	opts.Lemma = s.Lemma
	opts.Embeddings = s.Embeddings
	opts.VectorsPath = s.VectorsPath
	opts.TopK = s.TopK
	opts.AutoStopDF = s.AutoStopDF
	opts.Fields = s.Fields
	opts.Seed = s.Seed
	opts.Word2Vec.Dim = s.Word2Vec.Dim
	opts.Word2Vec.Window = s.Word2Vec.Window
	opts.Word2Vec.Negative = s.Word2Vec.Negative
	opts.Word2Vec.MinCount = s.Word2Vec.MinCount
	opts.Word2Vec.Iter = s.Word2Vec.Iter
	opts.Word2Vec.Goroutines = s.Word2Vec.Goroutines
	opts.PMI.TopK = s.TopK
	return opts
}

// New creates a Lexaug instance
func New(opts Options) *Lexaug {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.TopK <= 0 {
		opts.TopK = vectors.DefaultTopK
	}
	return &Lexaug{
		opts:    opts,
		logger:  logger,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Job names the files of one run.
type Job struct {
	DataPath    string
	SourcePaths []string

	// TrainPaths are corpora for word2vec or pmi training. When empty the
	// sources and the data are used.
	TrainPaths []string

	// Output goes to OutPath, or to Out when OutPath is empty.
	OutPath string
	Out     io.Writer
}

// Report summarizes a finished run
type Report struct {
	RunID    string
	Mode     augment.Mode
	Provider string
	Fields   int
	Stats    augment.Stats
	Stopped  []string // lemmas removed from training sentences
	Duration time.Duration
}

func (l *Lexaug) newRunID() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ulid.MustNew(ulid.Now(), l.entropy).String()
}

// Run reads the corpora of job, augments the data and writes the result.
func (l *Lexaug) Run(ctx context.Context, job Job) (Report, error) {
	start := time.Now()
	report := Report{RunID: l.newRunID()}
	logger := l.logger.With("run", report.RunID)

	if job.DataPath == "" || len(job.SourcePaths) == 0 {
		return report, fmt.Errorf("job needs data and at least one source: %w", internalerr.ErrInvalidInput)
	}
	if job.OutPath == "" && job.Out == nil {
		return report, fmt.Errorf("job has no output: %w", internalerr.ErrInvalidInput)
	}

	cfg := augment.Config{
		UseMorph:      l.opts.Morph,
		UseLemma:      l.opts.Lemma,
		UseEmbeddings: l.opts.Embeddings != config.EmbeddingsNone,
		Rand:          l.sampler(),
		Logger:        logger,
		Progress:      l.opts.Progress,
	}
	report.Mode = augment.ModeOf(cfg)
	report.Fields = l.fields(logger)

	readOpts := record.ReadOptions{Morph: l.opts.Morph}
	data, err := record.ReadFile(job.DataPath, readOpts)
	if err != nil {
		return report, fmt.Errorf("read data: %w", err)
	}
	sources, err := readCorpora(job.SourcePaths, readOpts)
	if err != nil {
		return report, fmt.Errorf("read sources: %w", err)
	}
	logger.Info("corpora loaded",
		"mode", report.Mode.String(),
		"data_records", data.Len(),
		"source_records", sources.Len(),
		"source_files", len(job.SourcePaths))

	if report.Mode == augment.ModeEmbedding {
		training := func() (record.Corpus, error) {
			if len(job.TrainPaths) == 0 {
				return record.Concat(sources, data), nil
			}
			return readCorpora(job.TrainPaths, record.ReadOptions{})
		}
		provider, stopped, err := l.provider(ctx, logger, training)
		if err != nil {
			return report, err
		}
		cfg.Provider = provider
		report.Provider = l.opts.Embeddings
		report.Stopped = stopped
	} else if l.opts.Embeddings != config.EmbeddingsNone {
		logger.Warn("embeddings need morph and lemma mode, ignoring", "embeddings", l.opts.Embeddings)
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	aug, err := augment.New(data.Records, sources.Records, cfg)
	if err != nil {
		return report, err
	}
	out, err := aug.Run(data.Records)
	if err != nil {
		return report, err
	}
	report.Stats = aug.Stats()

	if err := l.write(job, out, report.Fields); err != nil {
		return report, fmt.Errorf("write output: %w", err)
	}

	report.Duration = time.Since(start)
	logger.Info("augmentation complete",
		"records", report.Stats.Records,
		"primary", report.Stats.Primary,
		"fallback", report.Stats.Fallback,
		"widened", report.Stats.Widened,
		"duration", report.Duration)

	return report, nil
}

// Neighbors builds the configured provider over the training corpora and
// returns the neighbors of word.
func (l *Lexaug) Neighbors(ctx context.Context, trainPaths []string, word string) ([]vectors.Neighbor, error) {
	if l.opts.Embeddings == config.EmbeddingsNone {
		return nil, fmt.Errorf("no embeddings configured: %w", internalerr.ErrInvalidConfig)
	}
	logger := l.logger.With("run", l.newRunID())
	provider, _, err := l.provider(ctx, logger, func() (record.Corpus, error) {
		return readCorpora(trainPaths, record.ReadOptions{})
	})
	if err != nil {
		return nil, err
	}
	return provider.Nearest(word)
}

func (l *Lexaug) sampler() *mrand.Rand {
	seed := l.opts.Seed
	if seed == 0 {
		seed = mrand.Uint64()
	}
	return mrand.New(mrand.NewPCG(seed, seed))
}

func (l *Lexaug) fields(logger *slog.Logger) int {
	switch {
	case l.opts.Fields == 0 && l.opts.Morph:
		return 4
	case l.opts.Fields == 0:
		return 3
	case l.opts.Fields == 4 && !l.opts.Morph:
		logger.Warn("writing 4 fields without morph mode, morph column will be empty")
	}
	return l.opts.Fields
}

// provider builds the configured embedding provider. training is only
// called for kinds that learn from a corpus.
func (l *Lexaug) provider(ctx context.Context, logger *slog.Logger, training func() (record.Corpus, error)) (vectors.Provider, []string, error) {
	switch l.opts.Embeddings {
	case config.EmbeddingsPretrained:
		if l.opts.VectorsPath == "" {
			return nil, nil, fmt.Errorf("pretrained embeddings need a vector file: %w", internalerr.ErrInvalidConfig)
		}
		space, err := vectors.LoadFile(l.opts.VectorsPath, l.opts.TopK)
		if err != nil {
			return nil, nil, fmt.Errorf("load vectors: %w", err)
		}
		logger.Info("pretrained vectors loaded", "words", space.Len(), "dim", space.Dim())
		return space, nil, nil

	case config.EmbeddingsLexicon:
		if l.opts.Lexicon == nil {
			return nil, nil, fmt.Errorf("lexicon embeddings need a lexicon file: %w", internalerr.ErrInvalidConfig)
		}
		stats := l.opts.Lexicon.Stats()
		logger.Info("lexicon loaded", "groups", stats.SynonymGroups, "related", stats.TotalRelated)
		return l.opts.Lexicon, nil, nil

	case config.EmbeddingsWord2Vec, config.EmbeddingsPMI:
		corpus, err := training()
		if err != nil {
			return nil, nil, fmt.Errorf("read training corpus: %w", err)
		}
		processed := ingest.NewPipeline(l.opts.Stoplist, l.opts.AutoStopDF).Process(corpus)
		logger.Info("training sentences ready",
			"sentences", len(processed.Sentences),
			"stopped", len(processed.Stopped))

		if l.opts.Embeddings == config.EmbeddingsPMI {
			cfg := l.opts.PMI
			cfg.TopK = l.opts.TopK
			model := pmi.Train(processed.Sentences, cfg)
			logger.Info("co-occurrence model trained", "lemmas", model.Len())
			return model, processed.Stopped, nil
		}

		w2v := l.opts.Word2Vec
		w2v.TopK = l.opts.TopK
		w2v.Cache = l.opts.Cache
		w2v.Logger = logger
		space, err := word2vec.Train(ctx, processed.Sentences, w2v)
		if err != nil {
			return nil, nil, fmt.Errorf("train word2vec: %w", err)
		}
		return space, processed.Stopped, nil

	default:
		return nil, nil, fmt.Errorf("unknown embeddings %q: %w", l.opts.Embeddings, internalerr.ErrInvalidConfig)
	}
}

func readCorpora(paths []string, opts record.ReadOptions) (record.Corpus, error) {
	corpora := make([]record.Corpus, 0, len(paths))
	for _, p := range paths {
		c, err := record.ReadFile(p, opts)
		if err != nil {
			return record.Corpus{}, err
		}
		corpora = append(corpora, c)
	}
	return record.Concat(corpora...), nil
}

func (l *Lexaug) write(job Job, recs []record.Record, fields int) (err error) {
	out := job.Out
	if job.OutPath != "" {
		f, ferr := os.Create(job.OutPath)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}

	w, err := record.NewWriter(out, fields)
	if err != nil {
		return err
	}
	return w.WriteAll(recs)
}
