// Package normalize splits a compression text into tokens that follow the
// tokenization of the corpus sentences, so that both can be compared word by
// word.
package normalize

import (
	"strings"
	"unicode/utf8"
)

const (
	possessive = "'s"
	negation   = "n't"
	percent    = "%"

	openQuote  = "``"
	closeQuote = "''"
)

// Normalizer re-tokenizes compressions. It only reads its table and can be
// shared between goroutines.
type Normalizer struct {
	abbreviations map[string]string
	dropped       map[string]bool
	truncated     map[string]string
}

// New returns a Normalizer for the table t. The table is copied.
func New(t Table) *Normalizer {
	n := &Normalizer{
		abbreviations: make(map[string]string, len(t.Abbreviations)),
		dropped:       make(map[string]bool, len(t.Dropped)),
		truncated:     make(map[string]string, len(t.Truncated)),
	}

	for k, v := range t.Abbreviations {
		n.abbreviations[k] = v
	}
	for _, d := range t.Dropped {
		n.dropped[d] = true
	}
	for k, v := range t.Truncated {
		n.truncated[k] = v
	}

	return n
}

// Tokens returns the lowercase tokens of the compression text. forms are the
// lowercase forms of the sentence tokens; they decide whether an
// abbreviation is written with its period.
//
// The last character of the compression is its final punctuation and is
// removed.
func (n *Normalizer) Tokens(compression string, forms []string) []string {
	if compression == "" {
		return nil
	}

	formSet := make(map[string]bool, len(forms))
	for _, f := range forms {
		formSet[f] = true
	}

	compression = strings.ToLower(compression)
	_, size := utf8.DecodeLastRuneInString(compression)
	compression = compression[:len(compression)-size]

	var tokens []string
	for _, token := range strings.Split(compression, " ") {
		// tokens inside the sentence do not end with a comma
		token = strings.TrimSuffix(token, ",")

		if long, ok := n.abbreviations[token]; ok && formSet[long] {
			token = long
		}

		tokens = append(tokens, n.split(token)...)
	}

	return tokens
}

// split applies the first matching rule to a single token.
func (n *Normalizer) split(token string) []string {
	switch {
	case token == possessive:
		return []string{token}

	case strings.HasSuffix(token, possessive):
		return []string{strings.TrimSuffix(token, possessive), possessive}

	case strings.HasSuffix(token, negation):
		return []string{strings.TrimSuffix(token, negation), negation}

	case strings.HasSuffix(token, percent):
		return []string{strings.TrimSuffix(token, percent), percent}

	case n.dropped[token]:
		return nil

	case n.isTruncated(token):
		return []string{n.truncated[token]}

	case strings.HasPrefix(token, openQuote) && strings.HasSuffix(token, closeQuote):
		inner := token[len(openQuote) : len(token)-len(closeQuote)]
		return []string{openQuote, inner, closeQuote}

	// Parentheses are stripped on their own, a token like "(x)" keeps its
	// closing parenthesis.
	case strings.HasPrefix(token, "("):
		return []string{token[1:]}

	case strings.HasSuffix(token, ")"):
		return []string{strings.TrimSuffix(token, ")")}

	case strings.HasSuffix(token, "?"):
		return []string{strings.TrimSuffix(token, "?")}
	}

	return []string{token}
}

func (n *Normalizer) isTruncated(token string) bool {
	_, ok := n.truncated[token]
	return ok
}
