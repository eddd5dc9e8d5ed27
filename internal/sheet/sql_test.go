package sheet

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestSQLTable_SQLite(t *testing.T) {
	db, err := OpenSQL("sqlite3", filepath.Join(t.TempDir(), "cartera.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE apartamentos (
			"Torre" INTEGER,
			"Apartamento" INTEGER,
			"Propietario" TEXT,
			"Estado" TEXT,
			"Placa Carro" TEXT
		);
		INSERT INTO apartamentos VALUES (1, 101, 'Jane Doe', 'R', 'ABC123');
		INSERT INTO apartamentos VALUES (2, 202, 'John Roe', 'V', NULL);
	`)
	require.NoError(t, err)

	src, err := NewSQLTable(db, "apartamentos")
	require.NoError(t, err)

	rows, err := src.FetchRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, Row{
		"Torre":       "1",
		"Apartamento": "101",
		"Propietario": "Jane Doe",
		"Estado":      "R",
		"Placa Carro": "ABC123",
	}, rows[0])
	require.Equal(t, "", rows[1]["Placa Carro"])
}

func TestNewSQLTable_RejectsBadName(t *testing.T) {
	for _, name := range []string{"", "a b", `x"; DROP TABLE y; --`, "1abc"} {
		_, err := NewSQLTable(nil, name)
		require.Error(t, err, name)
	}
}

func TestSQLTable_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM "apartamentos"`).WillReturnError(errors.New("connection reset"))

	src, err := NewSQLTable(db, "apartamentos")
	require.NoError(t, err)

	_, err = src.FetchRows(context.Background())
	require.ErrorContains(t, err, "connection reset")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTable_Mocked(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM "cartera"`).WillReturnRows(
		sqlmock.NewRows([]string{"Torre", "Apartamento"}).
			AddRow("11", "01").
			AddRow("1", "101"),
	)

	src, err := NewSQLTable(db, "cartera")
	require.NoError(t, err)

	rows, err := src.FetchRows(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Row{
		{"Torre": "11", "Apartamento": "01"},
		{"Torre": "1", "Apartamento": "101"},
	}, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}
