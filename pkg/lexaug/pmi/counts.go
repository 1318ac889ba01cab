package pmi

import "sort"

// Counter maintains sentence-level co-occurrence counts for PMI calculation
type Counter struct {
	N   int64               // total number of sentences
	Nx  map[string]int64    // sentence frequency per lemma
	Nxy map[TokenPair]int64 // co-occurrence count per lemma pair
}

// TokenPair represents an ordered pair of lemmas (t1 < t2)
type TokenPair struct {
	T1, T2 string
}

// NewCounter creates a new co-occurrence counter
func NewCounter() *Counter {
	return &Counter{
		N:   0,
		Nx:  make(map[string]int64),
		Nxy: make(map[TokenPair]int64),
	}
}

// AddSentence updates counts for one sentence. Repeated lemmas count once.
func (c *Counter) AddSentence(lemmas []string) {
	c.N++

	unique := uniqueSorted(lemmas)
	for _, t := range unique {
		c.Nx[t]++
	}

	for i := 0; i < len(unique); i++ {
		for j := i + 1; j < len(unique); j++ {
			c.Nxy[TokenPair{T1: unique[i], T2: unique[j]}]++
		}
	}
}

func uniqueSorted(lemmas []string) []string {
	seen := make(map[string]struct{}, len(lemmas))
	out := make([]string, 0, len(lemmas))
	for _, l := range lemmas {
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// GetPairCount returns the co-occurrence count for a lemma pair
func (c *Counter) GetPairCount(t1, t2 string) int64 {
	// Ensure canonical ordering
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return c.Nxy[TokenPair{T1: t1, T2: t2}]
}

// GetTokenCount returns the sentence frequency for a lemma
func (c *Counter) GetTokenCount(t string) int64 {
	return c.Nx[t]
}

// TotalSentences returns the total number of sentences processed
func (c *Counter) TotalSentences() int64 {
	return c.N
}

// UniqueTokens returns the number of unique lemmas
func (c *Counter) UniqueTokens() int {
	return len(c.Nx)
}

// UniquePairs returns the number of unique lemma pairs
func (c *Counter) UniquePairs() int {
	return len(c.Nxy)
}
