// Package config reads run settings from the environment and loads the YAML
// data files (stop lists, lexicons) a run refers to.
package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/cognicore/lexaug/pkg/lexaug/internalerr"
)

// Embedding provider kinds.
const (
	EmbeddingsNone       = ""
	EmbeddingsWord2Vec   = "word2vec"
	EmbeddingsPretrained = "pretrained"
	EmbeddingsPMI        = "pmi"
	EmbeddingsLexicon    = "lexicon"
)

// EmbeddingKinds lists the accepted provider kinds.
var EmbeddingKinds = []string{EmbeddingsWord2Vec, EmbeddingsPretrained, EmbeddingsPMI, EmbeddingsLexicon}

// Settings are run defaults. Command-line flags override them.
type Settings struct {
	LogLevel string `env:"LEXAUG_LOG_LEVEL" env-default:"info"`

	// Seed of the sampling source; 0 picks a random seed.
	Seed uint64 `env:"LEXAUG_SEED" env-default:"0"`

	Morph  bool `env:"LEXAUG_MORPH"  env-default:"false"`
	Lemma  bool `env:"LEXAUG_LEMMA"  env-default:"false"`
	Fields int  `env:"LEXAUG_FIELDS" env-default:"0"` // 0 follows the mode

	Embeddings   string `env:"LEXAUG_EMBEDDINGS"`
	VectorsPath  string `env:"LEXAUG_VECTORS"`
	StoplistPath string `env:"LEXAUG_STOPLIST"`
	LexiconPath  string `env:"LEXAUG_LEXICON"`
	CachePath    string `env:"LEXAUG_CACHE"`
	TopK         int    `env:"LEXAUG_TOPK" env-default:"10"`

	// AutoStopDF stops lemmas found in more than this percentage of training
	// sentences; 0 disables it.
	AutoStopDF float64 `env:"LEXAUG_AUTO_STOP_DF" env-default:"0"`

	Word2Vec Word2VecSettings
}

// Word2VecSettings hold training hyperparameters.
type Word2VecSettings struct {
	Dim        int `env:"LEXAUG_W2V_DIM"        env-default:"100"`
	Window     int `env:"LEXAUG_W2V_WINDOW"     env-default:"5"`
	Negative   int `env:"LEXAUG_W2V_NEGATIVE"   env-default:"5"`
	MinCount   int `env:"LEXAUG_W2V_MIN_COUNT"  env-default:"5"`
	Iter       int `env:"LEXAUG_W2V_ITER"       env-default:"5"`
	Goroutines int `env:"LEXAUG_W2V_GOROUTINES" env-default:"4"`
}

// Load reads settings from the environment and validates them.
func Load() (*Settings, error) {
	var s Settings
	if err := cleanenv.ReadEnv(&s); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &s, nil
}

// Validate checks values that cleanenv cannot.
func (s *Settings) Validate() error {
	if s.Embeddings != EmbeddingsNone && !slices.Contains(EmbeddingKinds, s.Embeddings) {
		return fmt.Errorf("embeddings %q not one of %s: %w",
			s.Embeddings, strings.Join(EmbeddingKinds, ", "), internalerr.ErrInvalidConfig)
	}
	if s.Fields != 0 && s.Fields != 3 && s.Fields != 4 {
		return fmt.Errorf("fields must be 3 or 4, got %d: %w", s.Fields, internalerr.ErrInvalidConfig)
	}
	if s.TopK <= 0 {
		return fmt.Errorf("topk must be positive, got %d: %w", s.TopK, internalerr.ErrInvalidConfig)
	}
	if s.AutoStopDF < 0 || s.AutoStopDF > 100 {
		return fmt.Errorf("auto stop df must be a percentage, got %g: %w", s.AutoStopDF, internalerr.ErrInvalidConfig)
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", name, internalerr.ErrInvalidConfig)
	}
	return level, nil
}
