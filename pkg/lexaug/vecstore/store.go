// Package vecstore caches trained word-vector tables keyed by a fingerprint
// of the training corpus and hyperparameters, so repeated runs over the same
// corpus skip training.
package vecstore

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"time"

	"github.com/cognicore/lexaug/pkg/lexaug/vectors"
)

// Store is the interface for persisting cached vector tables
type Store interface {
	Close() error

	// Get returns the table stored under fingerprint. ok is false on a miss.
	Get(ctx context.Context, fingerprint string) (t *vectors.Table, ok bool, err error)

	// Put stores a table, replacing any previous entry.
	Put(ctx context.Context, fingerprint string, t *vectors.Table) error

	Delete(ctx context.Context, fingerprint string) error
	List(ctx context.Context) ([]Entry, error)
}

// Entry describes one cached table
type Entry struct {
	Fingerprint string
	Words       int
	Dim         int
	Bytes       int // compressed size
	CreatedAt   time.Time
}

// Encode serializes a table as gzip-compressed text vectors.
func Encode(t *vectors.Table) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if err := t.WriteText(zw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode.
func Decode(blob []byte) (*vectors.Table, error) {
	zr, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return vectors.ParseText(bytes.NewReader(raw))
}
