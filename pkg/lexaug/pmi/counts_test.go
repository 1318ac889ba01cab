package pmi

import (
	"testing"
)

func TestCounterBasic(t *testing.T) {
	counter := NewCounter()

	counter.AddSentence([]string{"the", "house", "be", "big"})

	if counter.TotalSentences() != 1 {
		t.Errorf("Expected 1 sentence, got %d", counter.TotalSentences())
	}

	if counter.GetTokenCount("house") != 1 {
		t.Error("Lemma 'house' should have count 1")
	}
}

func TestCounterRepeatedLemmaCountsOnce(t *testing.T) {
	counter := NewCounter()

	counter.AddSentence([]string{"the", "house", "and", "the", "home"})

	if counter.GetTokenCount("the") != 1 {
		t.Errorf("repeated lemma should count once per sentence, got %d", counter.GetTokenCount("the"))
	}
	if counter.UniqueTokens() != 4 {
		t.Errorf("Expected 4 unique lemmas, got %d", counter.UniqueTokens())
	}
	// C(4,2) pairs
	if counter.UniquePairs() != 6 {
		t.Errorf("Expected 6 pairs, got %d", counter.UniquePairs())
	}
}

func TestCounterCooccurrence(t *testing.T) {
	counter := NewCounter()

	counter.AddSentence([]string{"house", "door"})
	counter.AddSentence([]string{"house", "door"})
	counter.AddSentence([]string{"house", "roof"})

	if counter.GetTokenCount("house") != 3 {
		t.Error("house should appear in 3 sentences")
	}

	if count := counter.GetPairCount("house", "door"); count != 2 {
		t.Errorf("Pair should co-occur 2 times, got %d", count)
	}
}

func TestCounterCanonicalOrdering(t *testing.T) {
	counter := NewCounter()

	counter.AddSentence([]string{"zebra", "apple"})

	count1 := counter.GetPairCount("zebra", "apple")
	count2 := counter.GetPairCount("apple", "zebra")

	if count1 != count2 {
		t.Error("Pair count should be symmetric")
	}
	if count1 != 1 {
		t.Errorf("Expected count 1, got %d", count1)
	}
}

func TestCounterSkipsEmptyLemma(t *testing.T) {
	counter := NewCounter()

	counter.AddSentence([]string{"", "house"})

	if counter.UniqueTokens() != 1 || counter.UniquePairs() != 0 {
		t.Errorf("empty lemma should be ignored, got %d tokens %d pairs",
			counter.UniqueTokens(), counter.UniquePairs())
	}
}
