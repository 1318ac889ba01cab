package vectors

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/cognicore/lexaug/pkg/lexaug/internalerr"
)

// ReadFile parses a pretrained word-vector file. The file is memory-mapped
// rather than read through a buffer since pretrained tables run to gigabytes.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%s: empty vector file: %w", path, internalerr.ErrParse)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer m.Unmap()

	return parseText(bytes.NewReader(m), path)
}

// LoadFile reads a pretrained vector file into a searchable Space.
func LoadFile(path string, topK int) (*Space, error) {
	t, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("%s: no vectors: %w", path, internalerr.ErrParse)
	}
	return NewSpace(t, topK)
}
