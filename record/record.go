package record

import (
	"fmt"
)

// Record is one sentence and its compression as found in the corpus.
type Record struct {
	Graph       *Graph       `json:"graph"`
	Compression *Compression `json:"compression"`
}

// Graph is the annotated token graph of the sentence.
type Graph struct {
	Sentence *string `json:"sentence"`
	Node     []Node  `json:"node"`
}

type Node struct {
	Word []Word `json:"word"`
}

// Word is a word candidate of a graph node. Fields are pointers so that a
// missing key can be told apart from its zero value.
type Word struct {
	Id   *int    `json:"id"`
	Form *string `json:"form"`
	Tag  *string `json:"tag"`
	Stem *string `json:"stem"`
}

type Compression struct {
	Text *string `json:"text"`
}

// MalformedRecordError reports a record that can not be parsed or lacks a
// required field.
type MalformedRecordError struct {
	// Index is the position of the record in the corpus
	Index int

	// Field is the missing field, empty for syntax errors
	Field string

	Err error
}

func (e *MalformedRecordError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed record %d: missing field %s", e.Index, e.Field)
	}
	return fmt.Sprintf("malformed record %d: %v", e.Index, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// Validate checks that the fields needed for labeling are present.
func (r Record) Validate(index int) error {
	if r.Graph == nil {
		return &MalformedRecordError{Index: index, Field: "graph"}
	}

	if r.Graph.Sentence == nil {
		return &MalformedRecordError{Index: index, Field: "graph.sentence"}
	}

	if r.Graph.Node == nil {
		return &MalformedRecordError{Index: index, Field: "graph.node"}
	}

	for i, node := range r.Graph.Node {
		for j, w := range node.Word {
			if field := w.missing(); field != "" {
				return &MalformedRecordError{Index: index, Field: fmt.Sprintf("graph.node[%d].word[%d].%s", i, j, field)}
			}
		}
	}

	if r.Compression == nil || r.Compression.Text == nil {
		return &MalformedRecordError{Index: index, Field: "compression.text"}
	}

	return nil
}

// missing returns the name of the first absent key of the word, or "".
func (w Word) missing() string {
	switch {
	case w.Id == nil:
		return "id"
	case w.Form == nil:
		return "form"
	case w.Tag == nil:
		return "tag"
	case w.Stem == nil:
		return "stem"
	}
	return ""
}

// Sentence returns the full sentence text, empty if the graph is missing.
func (r Record) Sentence() string {
	if r.Graph == nil {
		return ""
	}
	return value(r.Graph.Sentence)
}

// CompressionText returns the compression text, empty if missing.
func (r Record) CompressionText() string {
	if r.Compression == nil {
		return ""
	}
	return value(r.Compression.Text)
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
