package record

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// maxLineSize bounds a single line of the corpus. Token graphs of long
// sentences are printed on few lines.
const maxLineSize = 16 * 1024 * 1024

var gzipMagic = []byte{0x1f, 0x8b}

// Reader yields the records of a corpus stream. Records are separated by
// blank lines; the lines of a record form one JSON value.
type Reader struct {
	scanner *bufio.Scanner
	closers []io.Closer

	// index of the last returned record
	index int
}

// NewReader returns a Reader for a gzip compressed corpus.
func NewReader(r io.Reader) (*Reader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}

	rd := NewPlainReader(zr)
	rd.closers = append(rd.closers, zr)
	return rd, nil
}

// NewPlainReader returns a Reader for an uncompressed corpus.
func NewPlainReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: scanner, index: -1}
}

// NewAutoReader returns a Reader for a gzip compressed or plain corpus,
// detected by the gzip magic bytes.
func NewAutoReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	magic, _ := br.Peek(len(gzipMagic))

	if bytes.Equal(magic, gzipMagic) {
		return NewReader(br)
	}

	return NewPlainReader(br), nil
}

// Open opens the corpus file at path, see NewAutoReader.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	rd, err := NewAutoReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("corpus %s: %w", path, err)
	}

	rd.closers = append(rd.closers, f)
	return rd, nil
}

// Next returns the next record of the stream, or io.EOF at the end.
//
// A record that is not valid JSON is returned as a *MalformedRecordError;
// the reader stays usable and the following record can be read.
func (r *Reader) Next() (Record, error) {
	var data []string
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			if len(data) == 0 {
				continue
			}
			break
		}
		data = append(data, line)
	}

	if err := r.scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("failed to read corpus: %w", err)
	}

	if len(data) == 0 {
		return Record{}, io.EOF
	}

	r.index++

	var rec Record
	if err := json.Unmarshal([]byte(strings.Join(data, " ")), &rec); err != nil {
		return Record{}, &MalformedRecordError{Index: r.index, Err: err}
	}

	return rec, nil
}

// Index returns the position in the stream of the last record read by Next.
func (r *Reader) Index() int {
	return r.index
}

func (r *Reader) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
