package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/revelaction/sentcomp/normalize"
	"github.com/revelaction/sentcomp/storage"
	"github.com/revelaction/sentcomp/storage/filesystem"
	"github.com/revelaction/sentcomp/storage/sqlite/zombiezen"
)

func isSqlitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// NewExampleRepository opens the store at path: a sqlite database for
// .db/.sqlite/.sqlite3 paths, a JSON lines file otherwise. Missing stores
// are created.
func NewExampleRepository(path string) (storage.ExampleRepository, error) {
	if !isSqlitePath(path) {
		return filesystem.NewExampleStore(path)
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}

	if err := zombiezen.CreateSchema(pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create examples table: %w", err)
	}

	return zombiezen.NewExampleStore(pool), nil
}

// newNormalizer returns a normalizer for the default table, extended by the
// table file at path if given.
func newNormalizer(path string) (*normalize.Normalizer, error) {
	table, err := loadTable(path)
	if err != nil {
		return nil, err
	}
	return normalize.New(table), nil
}

func loadTable(path string) (normalize.Table, error) {
	if path == "" {
		return normalize.DefaultTable(), nil
	}
	return normalize.LoadTable(path)
}
