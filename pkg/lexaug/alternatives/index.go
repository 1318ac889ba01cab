// Package alternatives groups corpus records into a nested
// category -> morph -> lemma lookup structure used to sample replacements.
package alternatives

import (
	"fmt"

	"github.com/cognicore/lexaug/pkg/lexaug/internalerr"
	"github.com/cognicore/lexaug/pkg/lexaug/record"
)

// KeyFunc extracts the grouping key of one index level.
type KeyFunc func(record.Record) string

// Grouping keys, in index order.
var (
	ByCategory KeyFunc = func(r record.Record) string { return r.Category }
	ByMorph    KeyFunc = func(r record.Record) string { return r.Morph }
	ByLemma    KeyFunc = func(r record.Record) string { return r.Lemma }
)

var levelNames = []string{"category", "morph", "lemma"}

// Index is a read-only nested mapping from grouping keys to candidate sets.
type Index struct {
	root  *node
	depth int
	size  int
}

// node is one level of the mapping. Inner nodes have children,
// leaves hold the terminal candidate set.
type node struct {
	keys     []string // first-seen order
	children map[string]*node
	records  []record.Record
}

// Build groups corpus records by category, then by morph when useMorph is set,
// then by lemma when useMorph and useLemma are both set.
func Build(corpus []record.Record, useMorph, useLemma bool) *Index {
	levels := []KeyFunc{ByCategory}
	if useMorph {
		levels = append(levels, ByMorph)
		if useLemma {
			levels = append(levels, ByLemma)
		}
	}

	recs := corpus
	if !useMorph {
		// The flat grouping identifies a candidate by token, lemma and category only
		recs = make([]record.Record, len(corpus))
		for i, r := range corpus {
			r.Morph = ""
			recs[i] = r
		}
	}

	idx := &Index{depth: len(levels)}
	idx.root = group(recs, levels)
	idx.size = countRecords(idx.root)
	return idx
}

// group builds the mapping for records, applying one key func per level.
func group(recs []record.Record, levels []KeyFunc) *node {
	if len(levels) == 0 {
		return &node{records: uniqueRecords(recs)}
	}

	key := levels[0]
	n := &node{children: make(map[string]*node)}
	buckets := make(map[string][]record.Record)
	for _, r := range recs {
		k := key(r)
		if _, seen := buckets[k]; !seen {
			n.keys = append(n.keys, k)
		}
		buckets[k] = append(buckets[k], r)
	}
	for _, k := range n.keys {
		n.children[k] = group(buckets[k], levels[1:])
	}
	return n
}

// uniqueRecords collapses duplicates, keeping first occurrences in order.
func uniqueRecords(recs []record.Record) []record.Record {
	seen := make(map[record.Record]struct{}, len(recs))
	out := make([]record.Record, 0, len(recs))
	for _, r := range recs {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

func countRecords(n *node) int {
	if n.children == nil {
		return len(n.records)
	}
	total := 0
	for _, child := range n.children {
		total += countRecords(child)
	}
	return total
}

// Depth returns the number of key levels before a terminal set.
func (idx *Index) Depth() int {
	return idx.depth
}

// Len returns the number of distinct records in the index.
func (idx *Index) Len() int {
	return idx.size
}

// Lookup returns the candidate set at path. The path must name every level.
// A missing key at any level yields an error wrapping ErrKeyNotFound.
// The returned slice is shared with the index and must not be modified.
func (idx *Index) Lookup(path ...string) ([]record.Record, error) {
	if len(path) != idx.depth {
		return nil, fmt.Errorf("lookup path has %d keys, index depth is %d: %w",
			len(path), idx.depth, internalerr.ErrInvalidInput)
	}

	n, err := idx.walk(path)
	if err != nil {
		return nil, err
	}
	return n.records, nil
}

// Keys returns the child keys under a partial path in first-seen order,
// or nil when the path is absent or already reaches a terminal set.
func (idx *Index) Keys(path ...string) []string {
	if len(path) >= idx.depth {
		return nil
	}
	n, err := idx.walk(path)
	if err != nil {
		return nil
	}
	return n.keys
}

// Has reports whether a (possibly partial) path exists.
func (idx *Index) Has(path ...string) bool {
	if len(path) > idx.depth {
		return false
	}
	_, err := idx.walk(path)
	return err == nil
}

func (idx *Index) walk(path []string) (*node, error) {
	n := idx.root
	for level, key := range path {
		child, ok := n.children[key]
		if !ok {
			return nil, fmt.Errorf("%s %q: %w", levelNames[level], key, internalerr.ErrKeyNotFound)
		}
		n = child
	}
	return n, nil
}
