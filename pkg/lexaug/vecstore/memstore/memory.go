package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cognicore/lexaug/pkg/lexaug/vecstore"
	"github.com/cognicore/lexaug/pkg/lexaug/vectors"
)

// Store is an in-memory implementation of vecstore.Store.
// Blobs are kept encoded so hits return fresh tables.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	blob  []byte
	words int
	dim   int
	at    time.Time
}

var _ vecstore.Store = (*Store)(nil)

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Close implements vecstore.Store.
func (s *Store) Close() error { return nil }

// Get returns the cached table for fingerprint.
func (s *Store) Get(ctx context.Context, fingerprint string) (*vectors.Table, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[fingerprint]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	t, err := vecstore.Decode(e.blob)
	if err != nil {
		return nil, false, err
	}
	return t, true, nil
}

// Put stores a table under fingerprint.
func (s *Store) Put(ctx context.Context, fingerprint string, t *vectors.Table) error {
	blob, err := vecstore.Encode(t)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[fingerprint] = entry{blob: blob, words: t.Len(), dim: t.Dim, at: s.now()}
	return nil
}

// Delete removes an entry. Missing entries are ignored.
func (s *Store) Delete(ctx context.Context, fingerprint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, fingerprint)
	return nil
}

// List returns all entries sorted by fingerprint.
func (s *Store) List(ctx context.Context) ([]vecstore.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]vecstore.Entry, 0, len(s.entries))
	for fp, e := range s.entries {
		out = append(out, vecstore.Entry{
			Fingerprint: fp,
			Words:       e.words,
			Dim:         e.dim,
			Bytes:       len(e.blob),
			CreatedAt:   e.at,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fingerprint < out[j].Fingerprint })
	return out, nil
}
