package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/revelaction/sentcomp/align"
)

const corpus = `{"graph": {"sentence": "The co. filed.",
  "node": [{"word": [{"id": -1, "form": "ROOT", "tag": "ROOT", "stem": "ROOT"}]},
           {"word": [{"id": 2, "form": "filed", "tag": "VBD", "stem": "file"}]},
           {"word": [{"id": 0, "form": "The", "tag": "DT", "stem": "the"},
                     {"id": 1, "form": "co.", "tag": "NNP", "stem": "co."}]}]},
 "compression": {"text": "The co filed."}}

{"graph": {"sentence": "Go.", "node": [{"word": [{"id": 0, "form": "Go", "tag": "VB", "stem": "go"}]}]},
 "compression": {"text": "Go away now."}}

{"graph": {"sentence": "He left early.",
  "node": [{"word": [{"id": 0, "form": "He", "tag": "PRP", "stem": "he"},
                     {"id": 1, "form": "left", "tag": "VBD", "stem": "leave"},
                     {"id": 2, "form": "early", "tag": "RB", "stem": "early"}]}]},
 "compression": {"text": "He left."}}
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}
	err := newApp(ui).Run(append([]string{"sentcomp"}, args...))
	return out.String(), errOut.String(), err
}

func writeCorpus(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "compression-data.json")
	if err := os.WriteFile(path, []byte(corpus), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvertShowStatExport(t *testing.T) {
	for _, name := range []string{"examples.jsonl", "examples.db"} {
		store := filepath.Join(t.TempDir(), name)

		out, errOut, err := run(t, "convert", "--store", store, "--skip-errors", "--no-progress", writeCorpus(t))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !strings.Contains(out, "Successfully converted 2 examples (1 skipped)") {
			t.Errorf("%s: unexpected output %q", name, out)
		}
		if !strings.Contains(errOut, "record 1") {
			t.Errorf("%s: expected skipped record 1 to be reported, got %q", name, errOut)
		}

		out, _, err = run(t, "show", "--store", store)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if out != "📖 0 The co. filed.\n📖 2 He left early.\n" {
			t.Errorf("%s: unexpected list %q", name, out)
		}

		out, _, err = run(t, "show", "--store", store, "--no-color", "--no-prefix", "2")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if out != "He left [early]\n" {
			t.Errorf("%s: unexpected example %q", name, out)
		}

		out, _, err = run(t, "stat", "--store", store)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !strings.Contains(out, "Num examples 2, num tokens 6, kept 5") {
			t.Errorf("%s: unexpected stat %q", name, out)
		}

		out, _, err = run(t, "stat", "--store", store, "--dist")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !strings.Contains(out, "   3 2\n") {
			t.Errorf("%s: unexpected distribution %q", name, out)
		}

		out, _, err = run(t, "export", "--store", store)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !strings.HasPrefix(out, "The\tDT\tthe\tKEEP\nco.\tNNP\tco.\tKEEP\n") {
			t.Errorf("%s: unexpected export %q", name, out)
		}
		if strings.Count(out, "\n\n") != 2 {
			t.Errorf("%s: expected 2 examples in export, got %q", name, out)
		}
	}
}

func TestConvertStopsOnError(t *testing.T) {
	store := filepath.Join(t.TempDir(), "examples.jsonl")

	_, _, err := run(t, "convert", "--store", store, "--no-progress", writeCorpus(t))
	if !errors.Is(err, align.ErrPrecondition) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestConvertLimit(t *testing.T) {
	store := filepath.Join(t.TempDir(), "examples.jsonl")

	out, _, err := run(t, "convert", "--store", store, "--no-progress", "--limit", "1", writeCorpus(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Successfully converted 1 examples (0 skipped)") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestExportJSONFile(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "examples.jsonl")
	if _, _, err := run(t, "convert", "--store", store, "--skip-errors", "--no-progress", writeCorpus(t)); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(dir, "train.jsonl")
	out, _, err := run(t, "export", "--store", store, "--format", "json", "--no-progress", "--out", target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Successfully exported 2 examples") {
		t.Errorf("unexpected output %q", out)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(data), "\n") != 2 || !strings.Contains(string(data), `"label":"DELETE"`) {
		t.Errorf("unexpected export %q", data)
	}
}

func TestTableAndNormalize(t *testing.T) {
	out, _, err := run(t, "table")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"calif": "calif."`) {
		t.Errorf("unexpected table %q", out)
	}

	out, _, err = run(t, "normalize", "--forms", "The co. filed", "The co filed.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "\"the\"\n\"co.\"\n\"filed\"\n\n" +
		"               \"the\" KEEP\n" +
		"               \"co.\" KEEP\n" +
		"             \"filed\" KEEP\n"
	if out != expected {
		t.Errorf("expected %q, got %q", expected, out)
	}

	if _, _, err := run(t, "normalize"); err == nil {
		t.Errorf("expected error without compression")
	}
}

func TestShowErrors(t *testing.T) {
	store := filepath.Join(t.TempDir(), "examples.jsonl")

	if _, _, err := run(t, "show", "--store", store, "--format", "xml", "0"); err == nil {
		t.Errorf("expected unsupported format error")
	}

	if _, _, err := run(t, "browse", "--store", store, "--format", "xml"); err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("expected unsupported format error for browse, got %v", err)
	}

	if _, _, err := run(t, "show", "--store", store, "abc"); err == nil {
		t.Errorf("expected invalid id error")
	}

	if _, _, err := run(t, "show", "--store", store, "3"); err == nil {
		t.Errorf("expected not found error")
	}
}
