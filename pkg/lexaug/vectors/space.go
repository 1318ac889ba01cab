package vectors

import (
	"bytes"
	"fmt"

	"github.com/ynqa/wego/pkg/embedding"
	"github.com/ynqa/wego/pkg/search"

	"github.com/cognicore/lexaug/pkg/lexaug/internalerr"
)

// Space answers Nearest by cosine similarity over a vector table.
type Space struct {
	searcher *search.Searcher
	vocab    map[string]struct{}
	dim      int
	topK     int
}

var _ Provider = (*Space)(nil)

// NewSpace indexes a table for neighbor search. topK <= 0 uses DefaultTopK.
func NewSpace(t *Table, topK int) (*Space, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	var buf bytes.Buffer
	if err := t.WriteText(&buf); err != nil {
		return nil, err
	}
	embs, err := embedding.Load(&buf)
	if err != nil {
		return nil, fmt.Errorf("load embeddings: %w", err)
	}
	searcher, err := search.New(embs...)
	if err != nil {
		return nil, fmt.Errorf("build searcher: %w", err)
	}

	vocab := make(map[string]struct{}, len(t.Words))
	for _, w := range t.Words {
		vocab[w] = struct{}{}
	}

	return &Space{
		searcher: searcher,
		vocab:    vocab,
		dim:      t.Dim,
		topK:     topK,
	}, nil
}

// Nearest returns up to topK words closest to word, most similar first.
func (s *Space) Nearest(word string) ([]Neighbor, error) {
	if _, ok := s.vocab[word]; !ok {
		return nil, fmt.Errorf("%q: %w", word, internalerr.ErrUnknownWord)
	}

	k := s.topK
	if k > len(s.vocab)-1 {
		k = len(s.vocab) - 1
	}
	if k <= 0 {
		return []Neighbor{}, nil
	}

	found, err := s.searcher.SearchInternal(word, k)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", word, err)
	}

	neighbors := make([]Neighbor, 0, len(found))
	for _, n := range found {
		if n.Word == "" || n.Word == word {
			continue
		}
		neighbors = append(neighbors, Neighbor{Word: n.Word, Score: n.Similarity})
	}
	return neighbors, nil
}

// Contains reports whether word has a vector.
func (s *Space) Contains(word string) bool {
	_, ok := s.vocab[word]
	return ok
}

// Len returns the vocabulary size.
func (s *Space) Len() int {
	return len(s.vocab)
}

// Dim returns the vector dimension.
func (s *Space) Dim() int {
	return s.dim
}
