// Package vectors defines the semantic-similarity capability used to widen
// lemma lookups, and implements it over word-vector tables.
package vectors

// Neighbor is a word similar to a query word.
type Neighbor struct {
	Word  string
	Score float64
}

// Provider answers nearest-neighbor queries over lemmas.
//
// Nearest returns neighbors ordered by descending score. A word the provider
// has never seen yields an error wrapping internalerr.ErrUnknownWord.
type Provider interface {
	Nearest(word string) ([]Neighbor, error)
}

// DefaultTopK is the number of neighbors returned when none is configured.
const DefaultTopK = 10
