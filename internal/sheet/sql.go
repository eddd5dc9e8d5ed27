package sheet

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

var reIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// OpenSQL opens and pings a database. driver is "sqlite3" or "postgres".
func OpenSQL(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return db, nil
}

// SQLTable exposes every row of one table, column names as headers.
type SQLTable struct {
	db    *sql.DB
	table string
}

func NewSQLTable(db *sql.DB, table string) (*SQLTable, error) {
	if !reIdent.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &SQLTable{db: db, table: table}, nil
}

func (t *SQLTable) FetchRows(ctx context.Context) ([]Row, error) {
	rows, err := t.db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, t.table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	grid := [][]string{cols}
	for rows.Next() {
		cells := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", t.table, err)
		}

		line := make([]string, len(cols))
		for i, c := range cells {
			line[i] = c.String
		}
		grid = append(grid, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rowsFromGrid(grid), nil
}
