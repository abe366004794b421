// Package align labels the tokens of a sentence by matching the tokens of
// its compression.
package align

import (
	"errors"
	"fmt"

	sent "github.com/revelaction/sentcomp/sentence"
)

// ErrPrecondition is matched by every *PreconditionError.
var ErrPrecondition = errors.New("compression longer than sentence")

// PreconditionError reports a compression with more tokens than its
// sentence, which can not be a subsequence of it.
type PreconditionError struct {
	SentenceLen    int
	CompressionLen int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %d compression tokens, %d sentence tokens", ErrPrecondition, e.CompressionLen, e.SentenceLen)
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// Labels returns one label per sentence token. The compression is expected
// to be an ordered subsequence of the sentence: tokens are matched greedily
// from left to right and a matched sentence token is labeled Keep. A
// compression token that finds no equal sentence token after the last match
// is ignored.
func Labels(sentence, compression []string) ([]sent.Label, error) {
	if len(compression) > len(sentence) {
		return nil, &PreconditionError{SentenceLen: len(sentence), CompressionLen: len(compression)}
	}

	labels := make([]sent.Label, len(sentence))
	for i := range labels {
		labels[i] = sent.Delete
	}

	si, ci := 0, 0
	for si < len(sentence) && ci < len(compression) {
		if sentence[si] == compression[ci] {
			labels[si] = sent.Keep
			ci++
		}
		si++
	}

	return labels, nil
}

// Matched returns the number of Keep labels.
func Matched(labels []sent.Label) int {
	n := 0
	for _, l := range labels {
		if l == sent.Keep {
			n++
		}
	}
	return n
}
