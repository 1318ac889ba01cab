package pmi

import (
	"fmt"
	"sort"

	"github.com/cognicore/lexaug/pkg/lexaug/internalerr"
	"github.com/cognicore/lexaug/pkg/lexaug/vectors"
)

// Model ranks the neighbors of a lemma by NPMI of sentence co-occurrence.
// It is a count-based stand-in for trained vectors on corpora too small
// for word2vec.
type Model struct {
	neighbors map[string][]vectors.Neighbor
	vocab     map[string]struct{}
}

var _ vectors.Provider = (*Model)(nil)

// Train counts co-occurrences over sentences and precomputes neighbor lists.
func Train(sentences [][]string, cfg Config) *Model {
	if cfg.TopK <= 0 {
		cfg.TopK = vectors.DefaultTopK
	}
	if cfg.MinPair <= 0 {
		cfg.MinPair = 1
	}

	counter := NewCounter()
	for _, s := range sentences {
		counter.AddSentence(s)
	}

	calc := NewCalculatorFromConfig(cfg)
	m := &Model{
		neighbors: make(map[string][]vectors.Neighbor),
		vocab:     make(map[string]struct{}),
	}
	for t, n := range counter.Nx {
		if n >= cfg.MinCount {
			m.vocab[t] = struct{}{}
		}
	}

	for pair, nAB := range counter.Nxy {
		if nAB < cfg.MinPair {
			continue
		}
		_, ok1 := m.vocab[pair.T1]
		_, ok2 := m.vocab[pair.T2]
		if !ok1 || !ok2 {
			continue
		}
		score := calc.NPMI(nAB, counter.Nx[pair.T1], counter.Nx[pair.T2], counter.N)
		m.neighbors[pair.T1] = append(m.neighbors[pair.T1], vectors.Neighbor{Word: pair.T2, Score: score})
		m.neighbors[pair.T2] = append(m.neighbors[pair.T2], vectors.Neighbor{Word: pair.T1, Score: score})
	}

	for t, list := range m.neighbors {
		sort.Slice(list, func(i, j int) bool {
			if list[i].Score != list[j].Score {
				return list[i].Score > list[j].Score
			}
			return list[i].Word < list[j].Word
		})
		if len(list) > cfg.TopK {
			list = list[:cfg.TopK]
		}
		m.neighbors[t] = list
	}

	return m
}

// Nearest returns the lemmas most associated with word.
func (m *Model) Nearest(word string) ([]vectors.Neighbor, error) {
	if _, ok := m.vocab[word]; !ok {
		return nil, fmt.Errorf("%q: %w", word, internalerr.ErrUnknownWord)
	}
	out := make([]vectors.Neighbor, len(m.neighbors[word]))
	copy(out, m.neighbors[word])
	return out, nil
}

// Len returns the number of lemmas that passed MinCount.
func (m *Model) Len() int {
	return len(m.vocab)
}
