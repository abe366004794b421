package storage

import (
	sent "github.com/revelaction/sentcomp/sentence"
)

// Stats are label counts over all stored examples.
type Stats struct {
	NumExamples  int
	NumTokens    int
	NumKept      int
	NumUnmatched int
}

// ExampleReader defines read operations for example storage
type ExampleReader interface {
	// List returns the metadata (Id, Sentence, Compression, Unmatched) of
	// the examples, ordered by id. Tokens are not loaded.
	List() ([]sent.Example, error)

	// Read returns an example by ID
	Read(id int) (sent.Example, error)

	// Count returns the number of stored examples
	Count() (int, error)

	// Stats returns token and label counts of all examples
	Stats() (Stats, error)
}

// ExampleWriter defines write operations for example storage
type ExampleWriter interface {
	// Write persists an example. Writing an existing id replaces it.
	Write(ex sent.Example) error
}

// ExampleRepository combines read and write operations
type ExampleRepository interface {
	ExampleReader
	ExampleWriter

	// Close releases the storage, flushing pending writes
	Close() error
}

// Aggregate adds the counts of ex to s.
func (s *Stats) Aggregate(ex sent.Example) {
	s.NumExamples++
	s.NumTokens += len(ex.Tokens)
	s.NumKept += len(ex.Kept())
	s.NumUnmatched += ex.Unmatched
}

// FormCounter defines an optional capability for repositories that can count
// how often a word form is kept.
type FormCounter interface {
	// FormStats returns how many tokens with the lowercase form were kept,
	// and how many there are in total.
	FormStats(form string) (kept, total int, err error)
}
