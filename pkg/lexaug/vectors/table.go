package vectors

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cognicore/lexaug/pkg/lexaug/internalerr"
)

// Table is a parsed word-vector table.
type Table struct {
	Dim   int
	Words []string
	Rows  [][]float64
}

// Len returns the number of words in the table.
func (t *Table) Len() int {
	return len(t.Words)
}

// ParseText parses the plaintext word-vector format:
//
//	[vocabSize dim]
//	word c1 c2 ... cD
//
// The header line is optional. Every row must have the same dimension.
// Repeated words keep their first vector.
func ParseText(r io.Reader) (*Table, error) {
	return parseText(r, "")
}

func parseText(r io.Reader, name string) (*Table, error) {
	t := &Table{}
	seen := make(map[string]struct{})
	declaredVocab := -1

	fail := func(line int, format string, args ...any) error {
		reason := fmt.Sprintf(format, args...)
		if name != "" {
			return fmt.Errorf("%s:%d: %s: %w", name, line, reason, internalerr.ErrParse)
		}
		return fmt.Errorf("line %d: %s: %w", line, reason, internalerr.ErrParse)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if lineNo == 1 && len(fields) == 2 {
			vocab, errV := strconv.Atoi(fields[0])
			dim, errD := strconv.Atoi(fields[1])
			if errV == nil && errD == nil {
				if vocab < 0 || dim <= 0 {
					return nil, fail(lineNo, "invalid header %q", scanner.Text())
				}
				declaredVocab, t.Dim = vocab, dim
				continue
			}
		}

		if len(fields) < 2 {
			return nil, fail(lineNo, "word %q has no vector", fields[0])
		}

		word := fields[0]
		row := make([]float64, len(fields)-1)
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fail(lineNo, "component %d of %q is not a number", i+1, word)
			}
			row[i] = v
		}

		if t.Dim == 0 {
			t.Dim = len(row)
		} else if len(row) != t.Dim {
			return nil, fail(lineNo, "word %q has %d components, expected %d", word, len(row), t.Dim)
		}

		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		t.Words = append(t.Words, word)
		t.Rows = append(t.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if declaredVocab >= 0 && declaredVocab != len(t.Words) {
		return nil, fail(1, "header declares %d words, found %d", declaredVocab, len(t.Words))
	}

	return t, nil
}

// WriteText writes the table without a header, one word per line.
func (t *Table) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, word := range t.Words {
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		for _, v := range t.Rows[i] {
			bw.WriteByte(' ')
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
