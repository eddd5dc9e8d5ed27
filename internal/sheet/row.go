package sheet

import (
	"context"
	"strings"
)

// Row is one record of the tabular store: header name -> cell text.
type Row map[string]string

// Source fetches the full current snapshot of rows.
type Source interface {
	FetchRows(ctx context.Context) ([]Row, error)
}

// rowsFromGrid turns a header-first grid into rows.
// Blank header cells are skipped and short rows are padded with "".
func rowsFromGrid(grid [][]string) []Row {
	if len(grid) == 0 {
		return nil
	}

	header := grid[0]
	rows := make([]Row, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		row := make(Row, len(header))
		empty := true
		for i, name := range header {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			var v string
			if i < len(cells) {
				v = cells[i]
			}
			if strings.TrimSpace(v) != "" {
				empty = false
			}
			row[name] = v
		}
		// Trailing blank lines come back from every backend.
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
