package normalize

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Table holds the corpus specific patches applied to compression tokens.
type Table struct {
	// Abbreviations maps the short form found in compressions to the
	// punctuated form found in sentences (co -> co.).
	Abbreviations map[string]string `json:"abbreviations"`

	// Dropped are tokens that have no counterpart in the sentence.
	Dropped []string `json:"dropped"`

	// Truncated maps encoding artifacts (a word followed by a stray
	// period) to the word.
	Truncated map[string]string `json:"truncated"`
}

// tableFile is the on disk form of a Table.
type tableFile struct {
	Table

	// Replace discards the default table instead of extending it.
	Replace bool `json:"replace"`
}

// DefaultTable returns the patches of the Google sentence compression
// corpus. Every call returns a new copy.
func DefaultTable() Table {
	return Table{
		Abbreviations: map[string]string{
			"co":    "co.",
			"corp":  "corp.",
			"ltd":   "ltd.",
			"inc":   "inc.",
			"va":    "va.",
			"wis":   "wis.",
			"pa":    "pa.",
			"st":    "st.",
			"mass":  "mass.",
			"ont":   "ont.",
			"v":     "v.",
			"calif": "calif.",
			"app":   "app.",
		},
		Dropped: []string{"-", ":", ";", "", "/", "!"},
		Truncated: map[string]string{
			"different.": "different",
			"prisoner.":  "prisoner",
			"bar.":       "bar",
			"declared.":  "declared",
		},
	}
}

// Merge returns a new table with the entries of other added to t. Entries
// of other win on conflict.
func (t Table) Merge(other Table) Table {
	merged := Table{
		Abbreviations: make(map[string]string, len(t.Abbreviations)+len(other.Abbreviations)),
		Truncated:     make(map[string]string, len(t.Truncated)+len(other.Truncated)),
	}

	for k, v := range t.Abbreviations {
		merged.Abbreviations[k] = v
	}
	for k, v := range other.Abbreviations {
		merged.Abbreviations[k] = v
	}

	for k, v := range t.Truncated {
		merged.Truncated[k] = v
	}
	for k, v := range other.Truncated {
		merged.Truncated[k] = v
	}

	seen := map[string]bool{}
	for _, d := range append(append([]string{}, t.Dropped...), other.Dropped...) {
		if seen[d] {
			continue
		}
		seen[d] = true
		merged.Dropped = append(merged.Dropped, d)
	}

	return merged
}

// LoadTable reads a JSON table file and merges it over the default table,
// unless the file sets "replace".
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, err
	}

	var tf tableFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return Table{}, fmt.Errorf("table file %s: %w", path, err)
	}

	if tf.Replace {
		return Table{}.Merge(tf.Table), nil
	}

	return DefaultTable().Merge(tf.Table), nil
}

// MarshalIndent returns the table as indented JSON with sorted dropped
// tokens, suitable as a starting point for a table file.
func (t Table) MarshalIndent() ([]byte, error) {
	out := t.Merge(Table{})
	sort.Strings(out.Dropped)
	return json.MarshalIndent(out, "", "  ")
}
