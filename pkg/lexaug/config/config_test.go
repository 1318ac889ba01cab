package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/lexaug/pkg/lexaug/internalerr"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, uint64(0), s.Seed)
	assert.Equal(t, 0, s.Fields)
	assert.Equal(t, 10, s.TopK)
	assert.Equal(t, EmbeddingsNone, s.Embeddings)
	assert.Equal(t, Word2VecSettings{Dim: 100, Window: 5, Negative: 5, MinCount: 5, Iter: 5, Goroutines: 4}, s.Word2Vec)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LEXAUG_SEED", "7")
	t.Setenv("LEXAUG_MORPH", "true")
	t.Setenv("LEXAUG_LEMMA", "true")
	t.Setenv("LEXAUG_EMBEDDINGS", "pmi")
	t.Setenv("LEXAUG_FIELDS", "3")
	t.Setenv("LEXAUG_W2V_DIM", "50")
	t.Setenv("LEXAUG_LOG_LEVEL", "debug")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint64(7), s.Seed)
	assert.True(t, s.Morph)
	assert.True(t, s.Lemma)
	assert.Equal(t, EmbeddingsPMI, s.Embeddings)
	assert.Equal(t, 3, s.Fields)
	assert.Equal(t, 50, s.Word2Vec.Dim)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"LEXAUG_EMBEDDINGS", "glove"},
		{"LEXAUG_FIELDS", "5"},
		{"LEXAUG_TOPK", "0"},
		{"LEXAUG_AUTO_STOP_DF", "120"},
		{"LEXAUG_LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.ErrorIs(t, err, internalerr.ErrInvalidConfig)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	level, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}
