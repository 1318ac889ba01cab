// Package lexicon holds curated lemma relations and serves them as a
// neighbor provider, for languages or domains where no vectors exist.
package lexicon

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/lexaug/pkg/lexaug/internalerr"
	"github.com/cognicore/lexaug/pkg/lexaug/vectors"
)

// SynonymScore is the score reported for members of a synonym group.
const SynonymScore = 1.0

// Lexicon stores lemma relations:
// - Synonyms: lemmas interchangeable in context (house ↔ home ↔ dwelling)
// - Related: weaker, scored associations (house → building 0.7)
//
// Lemmas are matched exactly; case is significant since lemma
// conventions differ across languages.
type Lexicon struct {
	// canonical -> all members (canonical first)
	synonyms map[string][]string

	// member -> canonical
	reverseIndex map[string]string

	// lemma -> scored related lemmas
	related map[string][]vectors.Neighbor
}

var _ vectors.Provider = (*Lexicon)(nil)

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		synonyms:     make(map[string][]string),
		reverseIndex: make(map[string]string),
		related:      make(map[string][]vectors.Neighbor),
	}
}

// LoadFromYAML loads lemma relations from a YAML file.
//
// Expected format:
//
//	synonyms:
//	  - canonical: house
//	    variants: [home, dwelling]
//	related:
//	  - lemma: house
//	    neighbors:
//	      building: 0.7
//	      hut: 0.4
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Synonyms []struct {
			Canonical string   `yaml:"canonical"`
			Variants  []string `yaml:"variants"`
		} `yaml:"synonyms"`
		Related []struct {
			Lemma     string             `yaml:"lemma"`
			Neighbors map[string]float64 `yaml:"neighbors"`
		} `yaml:"related"`
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, internalerr.ErrParse)
	}

	lex := New()
	for _, entry := range config.Synonyms {
		if entry.Canonical == "" {
			return nil, fmt.Errorf("%s: synonym group without canonical: %w", path, internalerr.ErrParse)
		}
		lex.AddSynonymGroup(entry.Canonical, entry.Variants)
	}
	for _, entry := range config.Related {
		for word, score := range entry.Neighbors {
			lex.AddRelated(entry.Lemma, vectors.Neighbor{Word: word, Score: score})
		}
	}

	return lex, nil
}

// AddSynonymGroup adds a synonym group with a canonical form and its variants.
// The canonical form is always the first member.
// If the group already exists, old reverse index entries are cleaned up first.
func (l *Lexicon) AddSynonymGroup(canonical string, variants []string) {
	if oldMembers, exists := l.synonyms[canonical]; exists {
		for _, old := range oldMembers {
			delete(l.reverseIndex, old)
		}
	}

	members := make([]string, 0, len(variants)+1)
	seen := make(map[string]bool)

	members = append(members, canonical)
	seen[canonical] = true

	for _, v := range variants {
		if v != "" && !seen[v] {
			members = append(members, v)
			seen[v] = true
		}
	}

	l.synonyms[canonical] = members
	for _, v := range members {
		l.reverseIndex[v] = canonical
	}
}

// Canonical returns the canonical form of a lemma, or the lemma itself.
func (l *Lexicon) Canonical(lemma string) string {
	if canonical, ok := l.reverseIndex[lemma]; ok {
		return canonical
	}
	return lemma
}

// Variants returns all members of the lemma's synonym group, canonical first.
// If the lemma is not in the lexicon, returns a slice containing only the lemma.
func (l *Lexicon) Variants(lemma string) []string {
	if canonical, ok := l.reverseIndex[lemma]; ok {
		return l.synonyms[canonical]
	}
	return []string{lemma}
}

// AddRelated records a scored relation. If the related lemma already exists,
// the higher score is kept.
func (l *Lexicon) AddRelated(lemma string, related vectors.Neighbor) {
	existing := l.related[lemma]

	found := false
	for i, r := range existing {
		if r.Word == related.Word {
			if related.Score > r.Score {
				existing[i] = related
			}
			found = true
			break
		}
	}
	if !found {
		existing = append(existing, related)
	}

	sort.Slice(existing, func(i, j int) bool {
		if existing[i].Score != existing[j].Score {
			return existing[i].Score > existing[j].Score
		}
		return existing[i].Word < existing[j].Word
	})
	l.related[lemma] = existing
}

// Nearest returns the other members of the lemma's synonym group, then its
// related lemmas by descending score. Lemmas unknown to the lexicon yield
// ErrUnknownWord.
func (l *Lexicon) Nearest(lemma string) ([]vectors.Neighbor, error) {
	_, isSyn := l.reverseIndex[lemma]
	related, isRel := l.related[lemma]
	if !isSyn && !isRel {
		return nil, fmt.Errorf("%q: %w", lemma, internalerr.ErrUnknownWord)
	}

	var out []vectors.Neighbor
	seen := map[string]bool{lemma: true}
	if isSyn {
		for _, v := range l.Variants(lemma) {
			if !seen[v] {
				out = append(out, vectors.Neighbor{Word: v, Score: SynonymScore})
				seen[v] = true
			}
		}
	}
	for _, r := range related {
		if !seen[r.Word] {
			out = append(out, r)
			seen[r.Word] = true
		}
	}
	return out, nil
}

// Stats returns statistics about the lexicon contents.
func (l *Lexicon) Stats() Stats {
	totalVariants := 0
	for _, members := range l.synonyms {
		totalVariants += len(members)
	}

	totalRelated := 0
	for _, rel := range l.related {
		totalRelated += len(rel)
	}

	return Stats{
		SynonymGroups:  len(l.synonyms),
		TotalVariants:  totalVariants,
		RelatedEntries: len(l.related),
		TotalRelated:   totalRelated,
	}
}

// Stats holds statistics about lexicon contents.
type Stats struct {
	SynonymGroups  int // Number of canonical forms
	TotalVariants  int // Total number of members across all groups
	RelatedEntries int // Number of lemmas with related lemmas
	TotalRelated   int // Total number of scored relations
}
