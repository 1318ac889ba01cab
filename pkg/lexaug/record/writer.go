package record

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Writer writes records as tab-separated lines.
type Writer struct {
	w      *bufio.Writer
	fields int
}

// NewWriter creates a writer emitting 3 (token, lemma, category) or
// 4 (plus morph) fields per line.
func NewWriter(w io.Writer, fields int) (*Writer, error) {
	if fields != 3 && fields != 4 {
		return nil, fmt.Errorf("output fields must be 3 or 4, got %d", fields)
	}
	return &Writer{w: bufio.NewWriter(w), fields: fields}, nil
}

// Write writes one record.
func (w *Writer) Write(rec Record) error {
	cols := []string{rec.Token, rec.Lemma, rec.Category}
	if w.fields == 4 {
		cols = append(cols, rec.Morph)
	}
	_, err := w.w.WriteString(strings.Join(cols, "\t") + "\n")
	return err
}

// WriteAll writes all records and flushes.
func (w *Writer) WriteAll(recs []Record) error {
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
