package ingest

import (
	"strings"
	"testing"

	"github.com/cognicore/lexaug/pkg/lexaug/record"
	"github.com/cognicore/lexaug/pkg/lexaug/stoplist"
)

func corpusFrom(t *testing.T, tsv string) record.Corpus {
	t.Helper()
	c, err := record.Read(strings.NewReader(tsv), record.ReadOptions{})
	if err != nil {
		t.Fatalf("read corpus: %v", err)
	}
	return c
}

func equalSentences(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if strings.Join(a[i], " ") != strings.Join(b[i], " ") {
			return false
		}
	}
	return true
}

func TestSentencesPunctuation(t *testing.T) {
	c := corpusFrom(t, "The\tthe\tDET\nhouse\thouse\tNOUN\n.\t.\tPUNCT\nIs\tbe\tVERB\nit\tit\tPRON\n?\t?\tPUNCT\nYes\tyes\tINTJ\n!\t!\tPUNCT\n")

	got := Sentences(c)
	want := [][]string{{"the", "house", "."}, {"be", "it", "?"}, {"yes", "!"}}
	if !equalSentences(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSentencesBlankLines(t *testing.T) {
	c := corpusFrom(t, "big\tbig\tADJ\nhouse\thouse\tNOUN\n\nsmall\tsmall\tADJ\n.\t.\tPUNCT\n\n\ncar\tcar\tNOUN\n")

	got := Sentences(c)
	want := [][]string{{"big", "house"}, {"small", "."}, {"car"}}
	if !equalSentences(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSentencesEmpty(t *testing.T) {
	if got := Sentences(record.Corpus{}); len(got) != 0 {
		t.Errorf("expected no sentences, got %v", got)
	}
}

func TestPipelineStopList(t *testing.T) {
	c := corpusFrom(t, "The\tthe\tDET\nhouse\thouse\tNOUN\n.\t.\tPUNCT\nThe\tthe\tDET\n.\t.\tPUNCT\n")

	res := NewPipeline(stoplist.NewManager([]string{"the", "."}), 0).Process(c)
	want := [][]string{{"house"}}
	if !equalSentences(res.Sentences, want) {
		t.Errorf("expected %v, got %v", want, res.Sentences)
	}
	if len(res.Stopped) != 2 {
		t.Errorf("expected 2 stopped lemmas, got %v", res.Stopped)
	}
}

func TestPipelineAutoStop(t *testing.T) {
	c := corpusFrom(t, "a\tthe\tDET\nb\thouse\tNOUN\n\nc\tthe\tDET\nd\tcar\tNOUN\n\ne\tthe\tDET\nf\troad\tNOUN\n")

	stops := stoplist.NewManager(nil)
	res := NewPipeline(stops, 90).Process(c)

	want := [][]string{{"house"}, {"car"}, {"road"}}
	if !equalSentences(res.Sentences, want) {
		t.Errorf("expected %v, got %v", want, res.Sentences)
	}
	if stops.IsStop("the") {
		t.Error("auto stop discovery should not modify the caller's manager")
	}
}

func TestPipelineNoStops(t *testing.T) {
	c := corpusFrom(t, "a\tthe\tDET\nb\thouse\tNOUN\n")

	res := NewPipeline(nil, 0).Process(c)
	if len(res.Sentences) != 1 || len(res.Sentences[0]) != 2 || res.Stopped != nil {
		t.Errorf("unexpected result %+v", res)
	}
}
