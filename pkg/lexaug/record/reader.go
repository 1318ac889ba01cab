package record

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cognicore/lexaug/pkg/lexaug/internalerr"
)

// ParseError reports a malformed corpus line.
type ParseError struct {
	Path   string
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}

// Unwrap lets errors.Is match internalerr.ErrParse.
func (e *ParseError) Unwrap() error {
	return internalerr.ErrParse
}

// ReadOptions controls how corpus lines are interpreted.
type ReadOptions struct {
	// Morph requires a fourth (morphological tag) field on every line.
	// When false a fourth field is accepted and ignored.
	Morph bool
}

// ReadFile reads a tab-separated corpus file.
// Format: token<TAB>lemma<TAB>category[<TAB>morph], blank line = sentence break.
func ReadFile(path string, opts ReadOptions) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return Corpus{}, err
	}
	defer f.Close()

	corpus, err := read(f, path, opts)
	if err != nil {
		return Corpus{}, err
	}
	return corpus, nil
}

// Read reads a tab-separated corpus from r.
func Read(r io.Reader, opts ReadOptions) (Corpus, error) {
	return read(r, "", opts)
}

func read(r io.Reader, path string, opts ReadOptions) (Corpus, error) {
	var corpus Corpus

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r\n")
		if line == "" {
			// Collapse consecutive blank lines into one break
			n := len(corpus.Records)
			if len(corpus.Breaks) == 0 || corpus.Breaks[len(corpus.Breaks)-1] != n {
				corpus.Breaks = append(corpus.Breaks, n)
			}
			continue
		}

		rec, err := parseLine(line, opts)
		if err != nil {
			return Corpus{}, &ParseError{Path: path, Line: lineNo, Reason: err.Error()}
		}
		corpus.Records = append(corpus.Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return Corpus{}, err
	}

	return corpus, nil
}

func parseLine(line string, opts ReadOptions) (Record, error) {
	parts := strings.Split(line, "\t")

	switch {
	case len(parts) < 3:
		return Record{}, fmt.Errorf("expected at least 3 fields, got %d", len(parts))
	case len(parts) > 4:
		return Record{}, fmt.Errorf("expected at most 4 fields, got %d", len(parts))
	case opts.Morph && len(parts) != 4:
		return Record{}, fmt.Errorf("morph mode needs 4 fields, got %d", len(parts))
	}

	rec := Record{
		Token:    parts[0],
		Lemma:    parts[1],
		Category: parts[2],
	}
	if rec.Category == "" {
		return Record{}, fmt.Errorf("empty category")
	}
	if opts.Morph {
		rec.Morph = parts[3]
	}

	return rec, nil
}
