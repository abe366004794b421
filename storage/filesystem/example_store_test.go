package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	sent "github.com/revelaction/sentcomp/sentence"
)

func testExamples() []sent.Example {
	return []sent.Example{
		{Id: 1, Sentence: "B c.", Compression: "B.", Tokens: []sent.LabeledToken{{Form: "B", Label: sent.Keep}, {Form: "c", Label: sent.Delete}}},
		{Id: 0, Sentence: "A.", Compression: "A.", Unmatched: 1, Tokens: []sent.LabeledToken{{Form: "a", Label: sent.Delete}}},
	}
}

func TestExampleStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "examples.jsonl")

	store, err := NewExampleStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, ex := range testExamples() {
		if err := store.Write(ex); err != nil {
			t.Fatalf("failed to write: %v", err)
		}
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}

	reopened, err := NewExampleStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer reopened.Close()

	count, _ := reopened.Count()
	if count != 2 {
		t.Fatalf("expected 2 examples, got %d", count)
	}

	list, _ := reopened.List()
	if list[0].Id != 0 || list[1].Id != 1 {
		t.Errorf("expected list ordered by id, got %+v", list)
	}
	if list[0].Tokens != nil {
		t.Errorf("expected list without tokens")
	}

	ex, err := reopened.Read(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ex.Tokens) != 2 || ex.Tokens[0].Label != sent.Keep {
		t.Errorf("unexpected example %+v", ex)
	}

	if _, err := reopened.Read(5); err == nil {
		t.Errorf("expected not found error")
	}

	stats, _ := reopened.Stats()
	if stats.NumExamples != 2 || stats.NumTokens != 3 || stats.NumKept != 1 || stats.NumUnmatched != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}

	kept, total, _ := reopened.FormStats("b")
	if kept != 1 || total != 1 {
		t.Errorf("expected 1 of 1, got %d of %d", kept, total)
	}
}

func TestExampleStoreLastLineWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "examples.jsonl")
	data := `{"id": 0, "sentence": "old", "tokens": []}

{"id": 0, "sentence": "new", "tokens": [{"form": "x", "label": "KEEP"}]}
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := NewExampleStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ex, err := store.Read(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ex.Sentence != "new" {
		t.Errorf("expected last line, got %q", ex.Sentence)
	}
}

func TestExampleStoreInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "examples.jsonl")
	if err := os.WriteFile(path, []byte(`{"id": 0, "tokens": [{"label": "MAYBE"}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewExampleStore(path); err == nil {
		t.Errorf("expected decoding error")
	}
}
