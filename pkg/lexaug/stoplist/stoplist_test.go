package stoplist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestManagerBasic(t *testing.T) {
	mgr := NewManager([]string{"the", "a", "and"})

	if !mgr.IsStop("the") {
		t.Error("'the' should be a stop lemma")
	}
	if mgr.IsStop("house") {
		t.Error("'house' should not be a stop lemma")
	}
	if r, _ := mgr.Why("the"); !r.Listed {
		t.Error("listed lemma should carry Listed reason")
	}
}

func TestManagerAddRemove(t *testing.T) {
	mgr := NewManager([]string{"the"})

	mgr.Add("be", Reason{HighDF: true})
	if !mgr.IsStop("be") {
		t.Error("'be' should be stop lemma after adding")
	}

	mgr.Remove("be")
	if mgr.IsStop("be") {
		t.Error("'be' should not be stop lemma after removing")
	}
}

func TestManagerAllSorted(t *testing.T) {
	mgr := NewManager([]string{"the", "and", "a"})

	all := mgr.All()
	if len(all) != 3 || all[0] != "a" || all[2] != "the" {
		t.Errorf("expected sorted [a and the], got %v", all)
	}
}

func TestNilManager(t *testing.T) {
	var mgr *Manager

	if mgr.IsStop("the") {
		t.Error("nil manager should stop nothing")
	}
	if got := mgr.Filter([]string{"the", "house"}); len(got) != 2 {
		t.Errorf("nil manager should keep all lemmas, got %v", got)
	}
}

func TestFilter(t *testing.T) {
	mgr := NewManager([]string{"the", "be"})

	got := mgr.Filter([]string{"the", "house", "be", "big", "."})
	want := []string{"house", "big", "."}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stoplist.yaml")
	content := `terms:
  - der
  - die
  - das
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	mgr, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML: %v", err)
	}
	if !mgr.IsStop("die") || len(mgr.All()) != 3 {
		t.Errorf("unexpected stop list: %v", mgr.All())
	}

	if _, err := LoadFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSuggestCandidates(t *testing.T) {
	mgr := NewManager([]string{"."})
	sentences := [][]string{
		{"the", "house", "be", "big", "."},
		{"the", "home", "be", "small", "."},
		{"the", "car", "."},
		{"a", "road", "."},
	}

	got := mgr.SuggestCandidates(sentences, 40)
	if len(got) != 2 {
		t.Fatalf("expected [the be], got %+v", got)
	}
	if got[0].Lemma != "the" || got[0].Reason.DFPercent != 75 {
		t.Errorf("expected 'the' at 75%%, got %+v", got[0])
	}
	if got[1].Lemma != "be" || !got[1].Reason.HighDF {
		t.Errorf("expected 'be' second, got %+v", got[1])
	}

	if mgr.SuggestCandidates(sentences, 0) != nil {
		t.Error("zero threshold should suggest nothing")
	}
}
