package pmi

import "math"

// Config controls PMI computation and neighbor selection
type Config struct {
	Epsilon  float64 // smoothing constant
	MinCount int64   // tokens seen in fewer sentences are not neighbors
	MinPair  int64   // pairs co-occurring fewer times are ignored
	TopK     int     // neighbors returned by Nearest
}

// DefaultConfig returns the defaults used when no Config is given.
func DefaultConfig() Config {
	return Config{
		Epsilon:  1.0,
		MinCount: 2,
		MinPair:  1,
		TopK:     10,
	}
}

// Calculator handles PMI (Pointwise Mutual Information) calculations
type Calculator struct {
	epsilon float64 // smoothing constant
}

// NewCalculator creates a new PMI calculator with the given epsilon
func NewCalculator(epsilon float64) *Calculator {
	if epsilon <= 0 {
		epsilon = 1.0
	}
	return &Calculator{epsilon: epsilon}
}

// NewCalculatorFromConfig creates a calculator using cfg.Epsilon
func NewCalculatorFromConfig(cfg Config) *Calculator {
	return NewCalculator(cfg.Epsilon)
}

// PMI calculates the pointwise mutual information between two lemmas
//
// PMI(a,b) = log((N_ab + ε) * N / ((N_a + ε)(N_b + ε)))
//
// Where:
//   - N_ab = number of sentences containing both a and b
//   - N_a, N_b = number of sentences containing each lemma
//   - N = total number of sentences
//   - ε = smoothing constant (default 1.0)
func (c *Calculator) PMI(nAB, nA, nB, N int64) float64 {
	if N == 0 {
		return 0
	}

	numerator := (float64(nAB) + c.epsilon) * float64(N)
	denominator := (float64(nA) + c.epsilon) * (float64(nB) + c.epsilon)

	if denominator == 0 {
		return 0
	}

	return math.Log(numerator / denominator)
}

// NPMI calculates normalized PMI (range: -1 to 1)
// NPMI(a,b) = PMI(a,b) / -log(P(a,b))
func (c *Calculator) NPMI(nAB, nA, nB, N int64) float64 {
	if N == 0 || nAB == 0 {
		return 0
	}

	pmi := c.PMI(nAB, nA, nB, N)
	pAB := (float64(nAB) + c.epsilon) / float64(N)
	logPAB := math.Log(pAB)

	if logPAB == 0 {
		return 0
	}

	npmi := pmi / -logPAB
	// smoothing can push small corpora slightly past the bounds
	return math.Max(-1, math.Min(1, npmi))
}
