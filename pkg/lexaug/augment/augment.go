// Package augment replaces each record of a dataset with an alternative
// sampled from a source corpus that shares its grammatical category and,
// depending on the mode, its morphological tag and lemma.
package augment

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/cognicore/lexaug/pkg/lexaug/alternatives"
	"github.com/cognicore/lexaug/pkg/lexaug/internalerr"
	"github.com/cognicore/lexaug/pkg/lexaug/record"
	"github.com/cognicore/lexaug/pkg/lexaug/vectors"
)

// Config selects the augmentation mode and its collaborators.
type Config struct {
	UseMorph      bool // narrow candidates by morphological tag
	UseLemma      bool // narrow by lemma; requires UseMorph
	UseEmbeddings bool // widen lemmas through Provider; requires UseMorph and UseLemma

	Provider vectors.Provider

	// Rand drives all sampling. Nil means a randomly seeded source.
	Rand *rand.Rand

	Logger *slog.Logger

	// Progress, when set, is called after each record.
	Progress func(done, total int)
}

// Mode is the selection strategy fixed for a run.
type Mode int

const (
	ModeFlat Mode = iota
	ModeMorph
	ModeMorphLemma
	ModeEmbedding
)

func (m Mode) String() string {
	switch m {
	case ModeFlat:
		return "flat"
	case ModeMorph:
		return "morph"
	case ModeMorphLemma:
		return "morph+lemma"
	case ModeEmbedding:
		return "morph+lemma+embeddings"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ModeOf returns the mode a configuration selects. Flags that have no
// meaning without their prerequisites are ignored.
func ModeOf(cfg Config) Mode {
	switch {
	case !cfg.UseMorph:
		return ModeFlat
	case !cfg.UseLemma:
		return ModeMorph
	case !cfg.UseEmbeddings:
		return ModeMorphLemma
	default:
		return ModeEmbedding
	}
}

// Stats counts where the chosen replacements came from.
type Stats struct {
	Records  int
	Primary  int // drawn from the source index
	Fallback int // drawn from the index over the data itself
	Widened  int // primary hits whose lemma came from an embedding neighbor
}

// Augmenter runs one augmentation mode over prebuilt indices.
type Augmenter struct {
	mode     Mode
	primary  *alternatives.Index
	fallback *alternatives.Index
	strategy strategy
	rnd      *rand.Rand
	logger   *slog.Logger
	progress func(done, total int)
	stats    Stats
}

// New indexes sources (primary) and data (fallback) and fixes the strategy.
func New(data, sources []record.Record, cfg Config) (*Augmenter, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	rnd := cfg.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	mode := ModeOf(cfg)
	if mode == ModeEmbedding && cfg.Provider == nil {
		return nil, fmt.Errorf("embeddings enabled without a provider: %w", internalerr.ErrInvalidConfig)
	}
	logIgnored(logger, cfg, mode)

	useMorph := mode != ModeFlat
	useLemma := mode == ModeMorphLemma || mode == ModeEmbedding

	a := &Augmenter{
		mode:     mode,
		primary:  alternatives.Build(sources, useMorph, useLemma),
		fallback: alternatives.Build(data, useMorph, useLemma),
		rnd:      rnd,
		logger:   logger,
		progress: cfg.Progress,
	}

	switch mode {
	case ModeFlat:
		a.strategy = flatStrategy{primary: a.primary}
	case ModeMorph:
		a.strategy = morphStrategy{primary: a.primary}
	case ModeMorphLemma:
		a.strategy = morphLemmaStrategy{primary: a.primary, fallback: a.fallback}
	case ModeEmbedding:
		a.strategy = embeddingStrategy{
			primary:  a.primary,
			fallback: a.fallback,
			provider: cfg.Provider,
			rnd:      rnd,
		}
	}

	logger.Debug("alternatives indexed",
		"mode", mode.String(),
		"primary_records", a.primary.Len(),
		"fallback_records", a.fallback.Len())

	return a, nil
}

func logIgnored(logger *slog.Logger, cfg Config, mode Mode) {
	if cfg.UseLemma && mode == ModeFlat {
		logger.Debug("lemma grouping ignored without morph")
	}
	if cfg.UseEmbeddings && mode != ModeEmbedding {
		logger.Debug("embeddings ignored without morph and lemma")
	}
	if cfg.Provider != nil && mode != ModeEmbedding {
		logger.Debug("embedding provider unused", "mode", mode.String())
	}
}

// Mode returns the selection strategy in use.
func (a *Augmenter) Mode() Mode {
	return a.mode
}

// Stats returns counters accumulated over all Run calls.
func (a *Augmenter) Stats() Stats {
	return a.stats
}

// Run returns one sampled replacement per input record, in input order.
// It stops at the first record without candidates.
func (a *Augmenter) Run(data []record.Record) ([]record.Record, error) {
	out := make([]record.Record, 0, len(data))
	for i, rec := range data {
		cands, hit, err := a.strategy.candidates(rec)
		if err != nil {
			return nil, a.wrap(i, rec, err)
		}

		out = append(out, cands[a.rnd.IntN(len(cands))])

		a.stats.Records++
		switch hit {
		case hitPrimary:
			a.stats.Primary++
		case hitWidened:
			a.stats.Primary++
			a.stats.Widened++
		case hitFallback:
			a.stats.Fallback++
		}

		if a.progress != nil {
			a.progress(i+1, len(data))
		}
	}

	a.logger.Debug("augmentation pass complete",
		"records", len(out),
		"primary", a.stats.Primary,
		"fallback", a.stats.Fallback,
		"widened", a.stats.Widened)

	return out, nil
}

func (a *Augmenter) wrap(i int, rec record.Record, err error) error {
	se := &SelectionError{
		Index:    i,
		Category: rec.Category,
		Lemma:    rec.Lemma,
		Err:      err,
	}
	if a.mode != ModeFlat {
		se.Morph = rec.Morph
	}
	switch {
	case a.mode == ModeFlat || a.mode == ModeMorph:
		se.Kind = internalerr.ErrConfigurationMismatch
	case isKeyNotFound(err):
		se.Kind = internalerr.ErrNoCandidates
	default:
		// provider failure
		return fmt.Errorf("record %d: %w", i, err)
	}
	return se
}

// Run builds an Augmenter over data and sources and runs it once over data.
func Run(data, sources []record.Record, cfg Config) ([]record.Record, error) {
	a, err := New(data, sources, cfg)
	if err != nil {
		return nil, err
	}
	return a.Run(data)
}
