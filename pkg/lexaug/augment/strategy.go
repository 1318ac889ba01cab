package augment

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/cognicore/lexaug/pkg/lexaug/alternatives"
	"github.com/cognicore/lexaug/pkg/lexaug/internalerr"
	"github.com/cognicore/lexaug/pkg/lexaug/record"
	"github.com/cognicore/lexaug/pkg/lexaug/vectors"
)

type hit int

const (
	hitPrimary hit = iota
	hitWidened
	hitFallback
)

// strategy yields the non-empty candidate set for one record.
type strategy interface {
	candidates(rec record.Record) ([]record.Record, hit, error)
}

type flatStrategy struct {
	primary *alternatives.Index
}

func (s flatStrategy) candidates(rec record.Record) ([]record.Record, hit, error) {
	cands, err := s.primary.Lookup(rec.Category)
	return cands, hitPrimary, err
}

type morphStrategy struct {
	primary *alternatives.Index
}

func (s morphStrategy) candidates(rec record.Record) ([]record.Record, hit, error) {
	cands, err := s.primary.Lookup(rec.Category, rec.Morph)
	return cands, hitPrimary, err
}

type morphLemmaStrategy struct {
	primary  *alternatives.Index
	fallback *alternatives.Index
}

func (s morphLemmaStrategy) candidates(rec record.Record) ([]record.Record, hit, error) {
	if cands, err := s.primary.Lookup(rec.Category, rec.Morph, rec.Lemma); err == nil {
		return cands, hitPrimary, nil
	}
	return lookupFallback(s.fallback, rec)
}

type embeddingStrategy struct {
	primary  *alternatives.Index
	fallback *alternatives.Index
	provider vectors.Provider
	rnd      *rand.Rand
}

func (s embeddingStrategy) candidates(rec record.Record) ([]record.Record, hit, error) {
	lemmas, err := s.lemmas(rec)
	if err != nil {
		return nil, 0, err
	}
	if len(lemmas) == 0 {
		return lookupFallback(s.fallback, rec)
	}

	// Lemmas are drawn unweighted; neighbor rank only decides membership.
	lemma := lemmas[s.rnd.IntN(len(lemmas))]
	cands, err := s.primary.Lookup(rec.Category, rec.Morph, lemma)
	if err != nil {
		return nil, 0, err
	}
	if lemma != rec.Lemma {
		return cands, hitWidened, nil
	}
	return cands, hitPrimary, nil
}

// lemmas returns the record's neighbors followed by its own lemma, restricted
// to lemmas indexed under the record's category and morph.
func (s embeddingStrategy) lemmas(rec record.Record) ([]string, error) {
	known := s.primary.Keys(rec.Category, rec.Morph)
	if len(known) == 0 {
		return nil, nil
	}
	indexed := make(map[string]bool, len(known))
	for _, k := range known {
		indexed[k] = true
	}

	neighbors, err := s.provider.Nearest(rec.Lemma)
	if err != nil && !errors.Is(err, internalerr.ErrUnknownWord) {
		return nil, fmt.Errorf("nearest %q: %w", rec.Lemma, err)
	}

	words := make([]string, 0, len(neighbors)+1)
	for _, n := range neighbors {
		words = append(words, n.Word)
	}
	words = append(words, rec.Lemma)

	var out []string
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if indexed[w] && !seen[w] {
			out = append(out, w)
			seen[w] = true
		}
	}
	return out, nil
}

func lookupFallback(fallback *alternatives.Index, rec record.Record) ([]record.Record, hit, error) {
	cands, err := fallback.Lookup(rec.Category, rec.Morph, rec.Lemma)
	if err != nil {
		return nil, 0, err
	}
	return cands, hitFallback, nil
}
