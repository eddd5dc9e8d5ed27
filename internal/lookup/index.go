package lookup

import (
	"strings"

	"github.com/eliseohh/torrebot/internal/sheet"
)

// Columns names the required fields of a record. Matched case-sensitively.
type Columns struct {
	Tower     string
	Apartment string
	Owner     string
	Status    string
}

func DefaultColumns() Columns {
	return Columns{
		Tower:     "Torre",
		Apartment: "Apartamento",
		Owner:     "Propietario",
		Status:    "Estado",
	}
}

type pairKey struct {
	tower     string
	apartment string
}

type concatEntry struct {
	row      sheet.Row
	towerLen int
}

// Index resolves queries against one snapshot. It is built per request and
// never mutated after NewIndex returns.
type Index struct {
	pairs  map[pairKey]sheet.Row
	concat map[string]concatEntry
}

func normKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewIndex indexes rows by (tower, apartment) and by tower+apartment.
// Rows missing either field are skipped; on duplicate keys the earlier row wins.
func NewIndex(rows []sheet.Row, cols Columns) *Index {
	idx := &Index{
		pairs:  make(map[pairKey]sheet.Row, len(rows)),
		concat: make(map[string]concatEntry, len(rows)),
	}

	for _, row := range rows {
		tower := normKey(row[cols.Tower])
		apt := normKey(row[cols.Apartment])
		if tower == "" || apt == "" {
			continue
		}

		k := pairKey{tower, apt}
		if _, ok := idx.pairs[k]; !ok {
			idx.pairs[k] = row
		}

		// "1"+"101" and "11"+"01" collide; keep the shorter tower so a
		// concat hit agrees with the ascending split scan.
		c := tower + apt
		if prev, ok := idx.concat[c]; !ok || len(tower) < prev.towerLen {
			idx.concat[c] = concatEntry{row: row, towerLen: len(tower)}
		}
	}
	return idx
}

func (idx *Index) Len() int { return len(idx.pairs) }

// Match returns the single record for q, or ErrNotFound.
func (idx *Index) Match(q Query) (sheet.Row, error) {
	if q.IsPair() {
		if row, ok := idx.pairs[pairKey{normKey(q.Tower), normKey(q.Apartment)}]; ok {
			return row, nil
		}
		return nil, ErrNotFound
	}

	digits := normKey(q.Digits)
	if e, ok := idx.concat[digits]; ok {
		return e.row, nil
	}

	// Shortest tower prefix first.
	for i := 1; i < len(digits); i++ {
		if row, ok := idx.pairs[pairKey{digits[:i], digits[i:]}]; ok {
			return row, nil
		}
	}
	return nil, ErrNotFound
}
