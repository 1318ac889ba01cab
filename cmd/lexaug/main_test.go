package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cognicore/lexaug/pkg/lexaug/config"
)

func testSettings() *config.Settings {
	return &config.Settings{LogLevel: "error", TopK: 10}
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp(testSettings(), UI{Out: &out, Err: &errOut})
	err := app.Run(append([]string{"lexaug"}, args...))
	return out.String(), err
}

func TestAugmentCommand(t *testing.T) {
	dir := t.TempDir()
	data := writeFixture(t, dir, "data.tsv", "home\thome\tNOUN\tsg\n")
	sources := writeFixture(t, dir, "sources.tsv", "house\thouse\tNOUN\tsg\nhouses\thouse\tNOUN\tpl\n")
	out := filepath.Join(dir, "out.tsv")

	if _, err := runApp(t, "augment", "--data", data, "--source", sources, "--out", out,
		"--morph", "--lemma", "--seed", "1"); err != nil {
		t.Fatalf("augment: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "home\thome\tNOUN\tsg\n" {
		t.Errorf("output = %q, want fallback to the data record", got)
	}
}

func TestAugmentCommandStdout(t *testing.T) {
	dir := t.TempDir()
	data := writeFixture(t, dir, "data.tsv", "homes\thome\tNOUN\tpl\n")
	sources := writeFixture(t, dir, "sources.tsv", "house\thouse\tNOUN\tsg\nhouses\thouse\tNOUN\tpl\n")

	stdout, err := runApp(t, "augment", "--data", data, "--source", sources, "--morph", "--fields", "3")
	if err != nil {
		t.Fatalf("augment: %v", err)
	}
	if stdout != "houses\thouse\tNOUN\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestAugmentCommandLexicon(t *testing.T) {
	dir := t.TempDir()
	data := writeFixture(t, dir, "data.tsv", "home\thome\tNOUN\tsg\n")
	sources := writeFixture(t, dir, "sources.tsv", "house\thouse\tNOUN\tsg\n")
	lex := writeFixture(t, dir, "lexicon.yaml", "synonyms:\n  - canonical: house\n    variants: [home]\n")

	stdout, err := runApp(t, "augment", "--data", data, "--source", sources,
		"--morph", "--lemma", "--embeddings", "lexicon", "--lexicon", lex)
	if err != nil {
		t.Fatalf("augment: %v", err)
	}
	if stdout != "house\thouse\tNOUN\tsg\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestAugmentCommandErrors(t *testing.T) {
	dir := t.TempDir()
	data := writeFixture(t, dir, "data.tsv", "zz\tzz\tX\n")
	sources := writeFixture(t, dir, "sources.tsv", "house\thouse\tNOUN\n")

	if _, err := runApp(t, "augment", "--data", data, "--source", sources); err == nil ||
		!strings.Contains(err.Error(), "configuration mismatch") {
		t.Errorf("expected configuration mismatch, got %v", err)
	}

	if _, err := runApp(t, "augment", "--data", data, "--source", sources, "--embeddings", "glove"); err == nil {
		t.Error("expected error for unknown embeddings kind")
	}

	if _, err := runApp(t, "augment", "--data", data); err == nil {
		t.Error("expected error without --source")
	}
}

func TestNeighborsCommand(t *testing.T) {
	dir := t.TempDir()
	lex := writeFixture(t, dir, "lexicon.yaml", "synonyms:\n  - canonical: house\n    variants: [home, dwelling]\n")

	stdout, err := runApp(t, "neighbors", "--embeddings", "lexicon", "--lexicon", lex, "home")
	if err != nil {
		t.Fatalf("neighbors: %v", err)
	}
	want := "house\t1.0000\ndwelling\t1.0000\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}

	if _, err := runApp(t, "neighbors", "--embeddings", "lexicon", "--lexicon", lex); err == nil {
		t.Error("expected error without a lemma")
	}
}

func TestCacheCommand(t *testing.T) {
	cache := filepath.Join(t.TempDir(), "cache.db")

	stdout, err := runApp(t, "cache", "list", "--cache", cache)
	if err != nil {
		t.Fatalf("cache list: %v", err)
	}
	if stdout != "" {
		t.Errorf("empty cache listed %q", stdout)
	}

	if _, err := runApp(t, "cache", "delete", "--cache", cache, "missing"); err != nil {
		t.Errorf("cache delete: %v", err)
	}
}

func TestStatsCommand(t *testing.T) {
	dir := t.TempDir()
	data := writeFixture(t, dir, "data.tsv", "home\thome\tNOUN\tsg\nran\trun\tVERB\tpast\n")
	sources := writeFixture(t, dir, "sources.tsv", "house\thouse\tNOUN\tsg\nhouses\thouse\tNOUN\tpl\n")

	stdout, err := runApp(t, "stats", "--data", data, "--source", sources, "--morph")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(stdout, "data: 2 records, 1 primary, 0 fallback, 1 missing") {
		t.Errorf("unexpected coverage line in %q", stdout)
	}
	if !strings.Contains(stdout, "missing\tVERB\tpast\t\t1") {
		t.Errorf("missing path not listed in %q", stdout)
	}
}
