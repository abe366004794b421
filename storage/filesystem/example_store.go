package filesystem

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	sent "github.com/revelaction/sentcomp/sentence"
	"github.com/revelaction/sentcomp/storage"
)

// maxLineSize bounds one stored example.
const maxLineSize = 16 * 1024 * 1024

// ExampleStore keeps examples in a JSON lines file, one example per line.
// The whole file is held in memory; writes are appended to the file.
type ExampleStore struct {
	path string

	// In-memory cache
	examples map[int]sent.Example

	f *os.File
	w *bufio.Writer
}

var _ storage.ExampleRepository = (*ExampleStore)(nil)
var _ storage.FormCounter = (*ExampleStore)(nil)

// NewExampleStore opens the JSON lines file at path, creating it if it does
// not exist, and loads its examples. When a id appears more than once, the
// last line wins.
func NewExampleStore(path string) (*ExampleStore, error) {
	h := &ExampleStore{
		path:     path,
		examples: map[int]sent.Example{},
	}

	if err := h.load(); err != nil {
		return nil, err
	}

	return h, nil
}

func (h *ExampleStore) load() error {
	f, err := os.Open(h.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var ex sent.Example
		if err := json.Unmarshal(scanner.Bytes(), &ex); err != nil {
			return fmt.Errorf("JSON decoding error in %s line %d: %w", h.path, line, err)
		}
		h.examples[ex.Id] = ex
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	return nil
}

// List returns the examples ordered by id, without tokens.
func (h *ExampleStore) List() ([]sent.Example, error) {
	examples := make([]sent.Example, 0, len(h.examples))
	for _, ex := range h.examples {
		ex.Tokens = nil
		examples = append(examples, ex)
	}

	sort.Slice(examples, func(i, j int) bool {
		return examples[i].Id < examples[j].Id
	})

	return examples, nil
}

func (h *ExampleStore) Read(id int) (sent.Example, error) {
	ex, ok := h.examples[id]
	if !ok {
		return sent.Example{}, fmt.Errorf("example not found: %d", id)
	}
	return ex, nil
}

func (h *ExampleStore) Count() (int, error) {
	return len(h.examples), nil
}

func (h *ExampleStore) Stats() (storage.Stats, error) {
	var stats storage.Stats
	for _, ex := range h.examples {
		stats.Aggregate(ex)
	}
	return stats, nil
}

func (h *ExampleStore) Write(ex sent.Example) error {
	if h.w == nil {
		f, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", h.path, err)
		}
		h.f = f
		h.w = bufio.NewWriter(f)
	}

	data, err := json.Marshal(ex)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	if _, err := h.w.Write(data); err != nil {
		return fmt.Errorf("failed to write example %d: %w", ex.Id, err)
	}

	h.examples[ex.Id] = ex
	return nil
}

// Close flushes pending writes.
func (h *ExampleStore) Close() error {
	if h.w == nil {
		return nil
	}

	if err := h.w.Flush(); err != nil {
		h.f.Close()
		return err
	}

	err := h.f.Close()
	h.w, h.f = nil, nil
	return err
}

func (h *ExampleStore) FormStats(form string) (kept, total int, err error) {
	form = strings.ToLower(form)
	for _, ex := range h.examples {
		for _, t := range ex.Tokens {
			if strings.ToLower(t.Form) != form {
				continue
			}
			total++
			if t.Label == sent.Keep {
				kept++
			}
		}
	}
	return kept, total, nil
}
