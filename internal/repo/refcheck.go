package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RefChecker verifies that a foreign-key value names an existing parent row
// before a child record is inserted.
type RefChecker interface {
	Exists(table, column string, value int) (bool, error)
}

type PostgresRefChecker struct {
	db *sql.DB
}

func NewPostgresRefChecker(db *sql.DB) *PostgresRefChecker {
	return &PostgresRefChecker{db: db}
}

// Exists runs a single-field exact-match existence check. Table and column
// are compile-time constants supplied by the handlers, never user input.
func (c *PostgresRefChecker) Exists(table, column string, value int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, table, column)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var exists bool
	err := c.db.QueryRowContext(ctx, query, value).Scan(&exists)
	return exists, err
}
