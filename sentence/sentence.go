package sentence

import (
	"encoding/json"
	"fmt"
)

// SentinelId marks a token graph node that is not a word of the sentence
// (the root placeholder of the corpus graphs).
const SentinelId = -1

// Token represents a word of the original sentence, with its tag and stem.
type Token struct {
	// The position of the word in the sentence. It defines the word order.
	Id int `json:"id"`

	// The unmodified word
	Form string `json:"form"`

	// A string containing POS or syntactic data
	Tag string `json:"tag"`

	// The stem of the word
	Stem string `json:"stem"`
}

// Label tells whether a sentence token survives in the compression.
type Label int

const (
	Keep Label = iota
	Delete
)

func (l Label) String() string {
	switch l {
	case Keep:
		return "KEEP"
	case Delete:
		return "DELETE"
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

func (l Label) MarshalJSON() ([]byte, error) {
	if l != Keep && l != Delete {
		return nil, fmt.Errorf("invalid label %d", int(l))
	}
	return json.Marshal(l.String())
}

func (l *Label) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch s {
	case "KEEP":
		*l = Keep
	case "DELETE":
		*l = Delete
	default:
		return fmt.Errorf("invalid label %q", s)
	}
	return nil
}

// LabeledToken is a sentence token with its compression label.
type LabeledToken struct {
	Form  string `json:"form"`
	Tag   string `json:"tag"`
	Stem  string `json:"stem"`
	Label Label  `json:"label"`
}

// Example is the labeled version of one corpus record. Tokens follow the
// word order of the sentence.
type Example struct {
	// The position of the record in the corpus, starting at 0.
	Id int `json:"id"`

	Sentence    string `json:"sentence"`
	Compression string `json:"compression"`

	Tokens []LabeledToken `json:"tokens"`

	// Unmatched is the number of compression tokens that could not be
	// aligned to any sentence token.
	Unmatched int `json:"unmatched"`
}

// Kept returns the tokens labeled Keep, in sentence order.
func (e Example) Kept() []LabeledToken {
	var kept []LabeledToken
	for _, t := range e.Tokens {
		if t.Label == Keep {
			kept = append(kept, t)
		}
	}
	return kept
}

// Labels returns the labels of the example tokens.
func (e Example) Labels() []Label {
	labels := make([]Label, len(e.Tokens))
	for i, t := range e.Tokens {
		labels[i] = t.Label
	}
	return labels
}

// Dataset is a collection of Example
type Dataset []Example

// NumTokens returns the total number of tokens of all examples.
func (d Dataset) NumTokens() int {
	n := 0
	for _, e := range d {
		n += len(e.Tokens)
	}
	return n
}
