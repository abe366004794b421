package zombiezen

import (
	"context"
	"embed"
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/examples.sql
var sqlFiles embed.FS

const schemaPath = "sql/examples.sql"

// CreateSchema creates the examples and labels tables if they do not exist.
func CreateSchema(pool *sqlitex.Pool) error {
	script, err := sqlFiles.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read embedded sql file %s: %w", schemaPath, err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to execute script %s: %w", schemaPath, err)
	}

	return nil
}
