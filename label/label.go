// Package label turns corpus records into labeled examples.
package label

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/sentcomp/align"
	"github.com/revelaction/sentcomp/normalize"
	"github.com/revelaction/sentcomp/record"
	sent "github.com/revelaction/sentcomp/sentence"
)

// Source yields records until io.EOF. *record.Reader is a Source.
type Source interface {
	Next() (record.Record, error)
}

// RecordError is a failure to label a single record. The record can be
// skipped and processing resumed.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

type Options struct {
	// Limit stops processing after this many examples. Zero means no limit.
	Limit int

	// OnError is called for every record that can not be labeled. Returning
	// nil skips the record, returning an error stops processing with it.
	// Without OnError the first record error stops processing.
	OnError func(err error) error

	// OnExample is called for every produced example, in input order.
	OnExample func(ex sent.Example) error

	// Discard does not collect the examples in the returned Dataset. Use it
	// with OnExample on large corpora.
	Discard bool
}

type Processor struct {
	normalizer *normalize.Normalizer
}

func NewProcessor(n *normalize.Normalizer) *Processor {
	return &Processor{normalizer: n}
}

// Process labels a single record. index is the position of the record in
// its corpus and becomes the example id.
func (p *Processor) Process(rec record.Record, index int) (sent.Example, error) {
	if err := rec.Validate(index); err != nil {
		return sent.Example{}, err
	}

	tokens := record.SentenceTokens(rec.Graph)

	forms := make([]string, len(tokens))
	for i, t := range tokens {
		forms[i] = strings.ToLower(t.Form)
	}

	compression := rec.CompressionText()
	compressionTokens := p.normalizer.Tokens(compression, forms)

	labels, err := align.Labels(forms, compressionTokens)
	if err != nil {
		return sent.Example{}, &RecordError{Index: index, Err: err}
	}

	ex := sent.Example{
		Id:          index,
		Sentence:    rec.Sentence(),
		Compression: compression,
		Tokens:      make([]sent.LabeledToken, len(tokens)),
		Unmatched:   len(compressionTokens) - align.Matched(labels),
	}

	for i, t := range tokens {
		ex.Tokens[i] = sent.LabeledToken{
			Form:  t.Form,
			Tag:   t.Tag,
			Stem:  t.Stem,
			Label: labels[i],
		}
	}

	return ex, nil
}

// ProcessAll labels the records of src in order until src is exhausted or
// opts.Limit examples are produced.
func (p *Processor) ProcessAll(src Source, opts Options) (sent.Dataset, error) {
	var dataset sent.Dataset
	produced := 0

	for index := 0; opts.Limit <= 0 || produced < opts.Limit; index++ {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		var malformed *record.MalformedRecordError
		if err != nil && !errors.As(err, &malformed) {
			return dataset, err
		}

		var ex sent.Example
		if err == nil {
			ex, err = p.Process(rec, index)
		}

		if err != nil {
			if opts.OnError == nil {
				return dataset, err
			}
			if err := opts.OnError(err); err != nil {
				return dataset, err
			}
			continue
		}

		if opts.OnExample != nil {
			if err := opts.OnExample(ex); err != nil {
				return dataset, err
			}
		}

		produced++
		if !opts.Discard {
			dataset = append(dataset, ex)
		}
	}

	return dataset, nil
}
