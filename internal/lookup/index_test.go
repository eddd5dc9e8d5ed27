package lookup

import (
	"testing"

	"github.com/eliseohh/torrebot/internal/sheet"
	"github.com/stretchr/testify/require"
)

func rec(tower, apt, owner string) sheet.Row {
	return sheet.Row{"Torre": tower, "Apartamento": apt, "Propietario": owner}
}

func TestIndex_MatchPair(t *testing.T) {
	idx := NewIndex([]sheet.Row{
		rec("1", "101", "Jane Doe"),
		rec("2", "101", "John Roe"),
	}, DefaultColumns())

	got, err := idx.Match(Query{Tower: "1", Apartment: "101"})
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", got["Propietario"])

	_, err = idx.Match(Query{Tower: "999", Apartment: "1"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIndex_TrimsAndSkipsIncompleteRows(t *testing.T) {
	idx := NewIndex([]sheet.Row{
		rec(" 3 ", " 402", "Ana"),
		rec("", "101", "no tower"),
		rec("4", "  ", "no apartment"),
	}, DefaultColumns())

	require.Equal(t, 1, idx.Len())

	got, err := idx.Match(Query{Tower: "3", Apartment: "402"})
	require.NoError(t, err)
	require.Equal(t, "Ana", got["Propietario"])

	_, err = idx.Match(Query{Digits: "101"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIndex_DigitsConcatHit(t *testing.T) {
	idx := NewIndex([]sheet.Row{rec("1", "101", "Jane")}, DefaultColumns())

	got, err := idx.Match(Query{Digits: "1101"})
	require.NoError(t, err)
	require.Equal(t, "Jane", got["Propietario"])
}

func TestIndex_SplitScanOnlyLongerTower(t *testing.T) {
	idx := NewIndex([]sheet.Row{rec("11", "01", "Eleven")}, DefaultColumns())

	got, err := idx.Match(Query{Digits: "1101"})
	require.NoError(t, err)
	require.Equal(t, "Eleven", got["Propietario"])
}

func TestIndex_AscendingSplitWins(t *testing.T) {
	// Both splits of "1101" exist, in either snapshot order.
	orders := map[string][]sheet.Row{
		"short first": {rec("1", "101", "short"), rec("11", "01", "long")},
		"long first":  {rec("11", "01", "long"), rec("1", "101", "short")},
	}
	for name, rows := range orders {
		t.Run(name, func(t *testing.T) {
			idx := NewIndex(rows, DefaultColumns())
			got, err := idx.Match(Query{Digits: "1101"})
			require.NoError(t, err)
			require.Equal(t, "short", got["Propietario"])
		})
	}
}

func TestIndex_NoNumericNormalization(t *testing.T) {
	idx := NewIndex([]sheet.Row{rec("01", "101", "padded")}, DefaultColumns())

	_, err := idx.Match(Query{Tower: "1", Apartment: "101"})
	require.ErrorIs(t, err, ErrNotFound)

	got, err := idx.Match(Query{Tower: "01", Apartment: "101"})
	require.NoError(t, err)
	require.Equal(t, "padded", got["Propietario"])
}

func TestIndex_DuplicateKeepsFirst(t *testing.T) {
	idx := NewIndex([]sheet.Row{rec("1", "101", "first"), rec("1", "101", "second")}, DefaultColumns())

	for i := 0; i < 5; i++ {
		got, err := idx.Match(Query{Tower: "1", Apartment: "101"})
		require.NoError(t, err)
		require.Equal(t, "first", got["Propietario"])
	}
}

func TestIndex_DigitsMiss(t *testing.T) {
	idx := NewIndex([]sheet.Row{rec("2", "202", "x")}, DefaultColumns())

	_, err := idx.Match(Query{Digits: "1101"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIndex_CustomColumns(t *testing.T) {
	cols := Columns{Tower: "Tower", Apartment: "Apartment", Owner: "Owner", Status: "Status"}
	idx := NewIndex([]sheet.Row{{"Tower": "5", "Apartment": "501", "Owner": "Kim"}}, cols)

	got, err := idx.Match(Query{Digits: "5501"})
	require.NoError(t, err)
	require.Equal(t, "Kim", got["Owner"])
}
