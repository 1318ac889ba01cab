package ingest

import (
	"github.com/cognicore/lexaug/pkg/lexaug/record"
	"github.com/cognicore/lexaug/pkg/lexaug/stoplist"
)

// Pipeline turns an annotated corpus into training sentences:
// segmentation → stop lemma discovery → stop lemma removal
type Pipeline struct {
	stops      *stoplist.Manager
	autoStopDF float64
}

// NewPipeline creates a pipeline. stops may be nil. autoStopDF > 0 also
// stops lemmas found in more than that percentage of sentences.
func NewPipeline(stops *stoplist.Manager, autoStopDF float64) *Pipeline {
	return &Pipeline{stops: stops, autoStopDF: autoStopDF}
}

// Result holds the training sentences and the lemmas stopped on the way.
type Result struct {
	Sentences [][]string
	Stopped   []string
}

// Process segments the corpus and removes stop lemmas. Sentences left
// empty by filtering are dropped.
func (p *Pipeline) Process(corpus record.Corpus) Result {
	// 1. Segment
	sentences := Sentences(corpus)

	// 2. Discover frequent lemmas
	stops := p.stops
	if p.autoStopDF > 0 {
		if stops == nil {
			stops = stoplist.NewManager(nil)
		} else {
			stops = stoplist.NewManager(stops.All())
		}
		for _, c := range stops.SuggestCandidates(sentences, p.autoStopDF) {
			stops.Add(c.Lemma, c.Reason)
		}
	}
	if stops == nil {
		return Result{Sentences: sentences}
	}

	// 3. Filter
	filtered := make([][]string, 0, len(sentences))
	for _, s := range sentences {
		if kept := stops.Filter(s); len(kept) > 0 {
			filtered = append(filtered, kept)
		}
	}

	return Result{Sentences: filtered, Stopped: stops.All()}
}
