package ingest

import (
	"github.com/cognicore/lexaug/pkg/lexaug/record"
)

// sentenceFinal lists lemmas that close a sentence.
var sentenceFinal = map[string]struct{}{
	".": {},
	"?": {},
	"!": {},
}

// IsSentenceFinal reports whether lemma ends a sentence.
func IsSentenceFinal(lemma string) bool {
	_, ok := sentenceFinal[lemma]
	return ok
}

// Sentences splits a corpus into lemma sequences. A sentence ends at a blank
// input line or after a record whose lemma is sentence-final punctuation;
// the punctuation stays as the last lemma of the sentence it closes.
// Empty sentences are dropped.
func Sentences(corpus record.Corpus) [][]string {
	breaks := make(map[int]struct{}, len(corpus.Breaks))
	for _, b := range corpus.Breaks {
		breaks[b] = struct{}{}
	}

	var (
		out     [][]string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, current)
			current = nil
		}
	}

	for i, rec := range corpus.Records {
		if _, ok := breaks[i]; ok {
			flush()
		}
		current = append(current, rec.Lemma)
		if IsSentenceFinal(rec.Lemma) {
			flush()
		}
	}
	flush()

	return out
}
