package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sent "github.com/revelaction/sentcomp/sentence"
	"github.com/revelaction/sentcomp/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type ExampleStore struct {
	pool *sqlitex.Pool
}

var _ storage.ExampleRepository = (*ExampleStore)(nil)
var _ storage.FormCounter = (*ExampleStore)(nil)

// NewExampleStore returns a store over pool. The tables must exist, see
// CreateSchema. Close closes the pool.
func NewExampleStore(pool *sqlitex.Pool) *ExampleStore {
	return &ExampleStore{pool: pool}
}

func (h *ExampleStore) List() ([]sent.Example, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var examples []sent.Example
	err = sqlitex.Execute(conn, "SELECT id, sentence, compression, unmatched FROM examples ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			examples = append(examples, sent.Example{
				Id:          stmt.ColumnInt(0),
				Sentence:    stmt.ColumnText(1),
				Compression: stmt.ColumnText(2),
				Unmatched:   stmt.ColumnInt(3),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return examples, nil
}

func (h *ExampleStore) Read(id int) (sent.Example, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return sent.Example{}, err
	}
	defer h.pool.Put(conn)

	ex := sent.Example{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT sentence, compression, unmatched, data FROM examples WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			ex.Sentence = stmt.ColumnText(0)
			ex.Compression = stmt.ColumnText(1)
			ex.Unmatched = stmt.ColumnInt(2)
			return json.Unmarshal([]byte(stmt.ColumnText(3)), &ex.Tokens)
		},
	})
	if err != nil {
		return sent.Example{}, err
	}
	if !found {
		return sent.Example{}, fmt.Errorf("example not found: %d", id)
	}

	return ex, nil
}

func (h *ExampleStore) Count() (int, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	count, err := sqlitex.ResultInt(conn.Prep("SELECT COUNT(*) FROM examples"))
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (h *ExampleStore) Stats() (storage.Stats, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return storage.Stats{}, err
	}
	defer h.pool.Put(conn)

	var stats storage.Stats
	err = sqlitex.Execute(conn, "SELECT COUNT(*), COALESCE(SUM(unmatched), 0) FROM examples", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			stats.NumExamples = stmt.ColumnInt(0)
			stats.NumUnmatched = stmt.ColumnInt(1)
			return nil
		},
	})
	if err != nil {
		return storage.Stats{}, err
	}

	err = sqlitex.Execute(conn, "SELECT COUNT(*), COALESCE(SUM(label = ?), 0) FROM labels", &sqlitex.ExecOptions{
		Args: []interface{}{sent.Keep.String()},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			stats.NumTokens = stmt.ColumnInt(0)
			stats.NumKept = stmt.ColumnInt(1)
			return nil
		},
	})
	if err != nil {
		return storage.Stats{}, err
	}

	return stats, nil
}

func (h *ExampleStore) FormStats(form string) (kept, total int, err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return 0, 0, err
	}
	defer h.pool.Put(conn)

	err = sqlitex.Execute(conn, "SELECT COUNT(*), COALESCE(SUM(label = ?), 0) FROM labels WHERE form = ?", &sqlitex.ExecOptions{
		Args: []interface{}{sent.Keep.String(), strings.ToLower(form)},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			total = stmt.ColumnInt(0)
			kept = stmt.ColumnInt(1)
			return nil
		},
	})
	if err != nil {
		return 0, 0, err
	}
	return kept, total, nil
}

func (h *ExampleStore) Write(ex sent.Example) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	data, err := json.Marshal(ex.Tokens)
	if err != nil {
		return err
	}

	err = sqlitex.Execute(conn, "INSERT OR REPLACE INTO examples (id, sentence, compression, unmatched, data) VALUES (?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{ex.Id, ex.Sentence, ex.Compression, ex.Unmatched, string(data)},
	})
	if err != nil {
		return fmt.Errorf("failed to insert example %d: %w", ex.Id, err)
	}

	err = sqlitex.Execute(conn, "DELETE FROM labels WHERE example_id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{ex.Id},
	})
	if err != nil {
		return fmt.Errorf("failed to delete labels of example %d: %w", ex.Id, err)
	}

	for position, token := range ex.Tokens {
		err = sqlitex.Execute(conn, "INSERT INTO labels (example_id, position, form, label) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{ex.Id, position, strings.ToLower(token.Form), token.Label.String()},
		})
		if err != nil {
			return fmt.Errorf("failed to insert label: %w", err)
		}
	}

	return nil
}

func (h *ExampleStore) Close() error {
	return h.pool.Close()
}
