// Package analytics reports corpus composition and how much of a dataset
// the alternatives of a source corpus can cover.
package analytics

import (
	"math"
	"sort"

	"github.com/cognicore/lexaug/pkg/lexaug/alternatives"
	"github.com/cognicore/lexaug/pkg/lexaug/record"
)

// Path is a category/morph grouping key.
type Path struct {
	Category string
	Morph    string
}

// Analyzer aggregates record-level category, morph and lemma counts.
type Analyzer struct {
	totalRecords int64
	categories   map[string]int64
	paths        map[Path]int64
	lemmaCats    map[string]map[string]int64 // lemma -> category -> count
}

// NewAnalyzer creates an empty analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		categories: make(map[string]int64),
		paths:      make(map[Path]int64),
		lemmaCats:  make(map[string]map[string]int64),
	}
}

// Process consumes a batch of records.
func (a *Analyzer) Process(recs []record.Record) {
	for _, r := range recs {
		a.totalRecords++
		a.categories[r.Category]++
		a.paths[Path{Category: r.Category, Morph: r.Morph}]++

		if r.Lemma == "" {
			continue
		}
		if a.lemmaCats[r.Lemma] == nil {
			a.lemmaCats[r.Lemma] = make(map[string]int64)
		}
		a.lemmaCats[r.Lemma][r.Category]++
	}
}

// Stats exposes the aggregated counts.
type Stats struct {
	TotalRecords int64
	Categories   map[string]int64
	Paths        map[Path]int64
	LemmaCats    map[string]map[string]int64
}

// Snapshot returns a copy of the accumulated statistics.
func (a *Analyzer) Snapshot() Stats {
	copyCats := make(map[string]int64, len(a.categories))
	for cat, count := range a.categories {
		copyCats[cat] = count
	}
	copyPaths := make(map[Path]int64, len(a.paths))
	for p, count := range a.paths {
		copyPaths[p] = count
	}
	copyLemmas := make(map[string]map[string]int64, len(a.lemmaCats))
	for lemma, cats := range a.lemmaCats {
		copyLemmas[lemma] = make(map[string]int64, len(cats))
		for cat, count := range cats {
			copyLemmas[lemma][cat] = count
		}
	}
	return Stats{
		TotalRecords: a.totalRecords,
		Categories:   copyCats,
		Paths:        copyPaths,
		LemmaCats:    copyLemmas,
	}
}

// LemmaStat describes how a lemma spreads over categories.
type LemmaStat struct {
	Lemma      string
	Count      int64
	Categories int
	Entropy    float64 // normalized category entropy
}

// AmbiguousLemmas returns lemmas annotated with more than one category whose
// normalized category entropy is at least minEntropy, most ambiguous first.
// These are usually tagging noise or homographs, and both widen the
// alternatives drawn for them.
func (s Stats) AmbiguousLemmas(minEntropy float64) []LemmaStat {
	var out []LemmaStat
	for lemma, cats := range s.LemmaCats {
		if len(cats) < 2 {
			continue
		}
		h := entropy(cats)
		if h < minEntropy {
			continue
		}
		var total int64
		for _, c := range cats {
			total += c
		}
		out = append(out, LemmaStat{Lemma: lemma, Count: total, Categories: len(cats), Entropy: h})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Entropy != out[j].Entropy {
			return out[i].Entropy > out[j].Entropy
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Lemma < out[j].Lemma
	})
	return out
}

func entropy(counts map[string]int64) float64 {
	if len(counts) == 0 {
		return 0
	}
	var total float64
	for _, c := range counts {
		total += float64(c)
	}
	if total == 0 {
		return 0
	}
	var h float64
	for _, c := range counts {
		p := float64(c) / total
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h / math.Log2(float64(len(counts))+1)
}

// MissingPath is a lookup path of the data without candidates.
type MissingPath struct {
	Category string
	Morph    string
	Lemma    string
	Count    int
}

// Coverage counts how data records would be served by an augmentation run.
type Coverage struct {
	Records  int
	Primary  int // path present in the sources
	Fallback int // path only in the data index
	Missing  int // no candidates: the run would fail
	Paths    []MissingPath
}

// MeasureCoverage checks every data record against indices built the way an
// augmentation run builds them. Only morph+lemma grouping has a fallback.
// Embedding widening is not simulated.
func MeasureCoverage(data, sources []record.Record, useMorph, useLemma bool) Coverage {
	useLemma = useMorph && useLemma
	primary := alternatives.Build(sources, useMorph, useLemma)
	fallback := alternatives.Build(data, useMorph, useLemma)

	path := func(r record.Record) []string {
		switch {
		case useLemma:
			return []string{r.Category, r.Morph, r.Lemma}
		case useMorph:
			return []string{r.Category, r.Morph}
		default:
			return []string{r.Category}
		}
	}

	cov := Coverage{Records: len(data)}
	missing := make(map[MissingPath]int)
	for _, r := range data {
		p := path(r)
		switch {
		case primary.Has(p...):
			cov.Primary++
		case useLemma && fallback.Has(p...):
			cov.Fallback++
		default:
			cov.Missing++
			key := MissingPath{Category: r.Category}
			if useMorph {
				key.Morph = r.Morph
			}
			if useLemma {
				key.Lemma = r.Lemma
			}
			missing[key]++
		}
	}

	for key, n := range missing {
		key.Count = n
		cov.Paths = append(cov.Paths, key)
	}
	sort.Slice(cov.Paths, func(i, j int) bool {
		a, b := cov.Paths[i], cov.Paths[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Morph != b.Morph {
			return a.Morph < b.Morph
		}
		return a.Lemma < b.Lemma
	})
	return cov
}
