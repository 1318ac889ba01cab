// Package stoplist keeps lemmas that are left out of embedding training.
package stoplist

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Manager holds the stop lemmas
type Manager struct {
	stops map[string]Reason
}

// Reason explains why a lemma is a stop lemma
type Reason struct {
	Listed    bool    // came from a stop list file
	HighDF    bool    // high sentence frequency
	DFPercent float64 // share of sentences containing the lemma
}

// NewManager creates a new stoplist manager
func NewManager(initialStops []string) *Manager {
	stops := make(map[string]Reason, len(initialStops))
	for _, s := range initialStops {
		stops[s] = Reason{Listed: true}
	}
	return &Manager{stops: stops}
}

// LoadFromYAML reads a stop list file.
//
// Expected format:
//
//	terms:
//	  - the
//	  - be
func LoadFromYAML(path string) (*Manager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file struct {
		Terms []string `yaml:"terms"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return NewManager(file.Terms), nil
}

// IsStop checks if a lemma is a stop lemma. A nil Manager stops nothing.
func (m *Manager) IsStop(lemma string) bool {
	if m == nil {
		return false
	}
	_, ok := m.stops[lemma]
	return ok
}

// Add adds a lemma to the stoplist with a reason
func (m *Manager) Add(lemma string, reason Reason) {
	m.stops[lemma] = reason
}

// Remove removes a lemma from the stoplist
func (m *Manager) Remove(lemma string) {
	delete(m.stops, lemma)
}

// Why returns the reason a lemma was stopped
func (m *Manager) Why(lemma string) (Reason, bool) {
	r, ok := m.stops[lemma]
	return r, ok
}

// All returns all stop lemmas, sorted
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

// Filter returns lemmas with stop lemmas removed.
func (m *Manager) Filter(lemmas []string) []string {
	out := make([]string, 0, len(lemmas))
	for _, l := range lemmas {
		if !m.IsStop(l) {
			out = append(out, l)
		}
	}
	return out
}

// Candidate represents a suggested stop lemma
type Candidate struct {
	Lemma  string
	Reason Reason
}

// SuggestCandidates returns lemmas present in more than dfPercent of the
// sentences and not already stopped, most frequent first.
func (m *Manager) SuggestCandidates(sentences [][]string, dfPercent float64) []Candidate {
	if len(sentences) == 0 || dfPercent <= 0 {
		return nil
	}

	df := make(map[string]int)
	for _, s := range sentences {
		seen := make(map[string]struct{}, len(s))
		for _, l := range s {
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}
			df[l]++
		}
	}

	var candidates []Candidate
	for lemma, n := range df {
		if m.IsStop(lemma) {
			continue // already a stop lemma
		}
		pct := float64(n) * 100 / float64(len(sentences))
		if pct > dfPercent {
			candidates = append(candidates, Candidate{
				Lemma:  lemma,
				Reason: Reason{HighDF: true, DFPercent: pct},
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Reason.DFPercent != candidates[j].Reason.DFPercent {
			return candidates[i].Reason.DFPercent > candidates[j].Reason.DFPercent
		}
		return candidates[i].Lemma < candidates[j].Lemma
	})
	return candidates
}
