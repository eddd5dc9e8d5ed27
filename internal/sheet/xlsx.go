package sheet

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXFile reads a local workbook on every fetch.
type XLSXFile struct {
	Path  string
	Sheet string // empty: first sheet
}

func NewXLSXFile(path, sheet string) *XLSXFile {
	return &XLSXFile{Path: path, Sheet: sheet}
}

func (x *XLSXFile) FetchRows(ctx context.Context) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(x.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	name := x.Sheet
	if name == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", x.Path)
		}
		name = sheets[0]
	}

	grid, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}
	return rowsFromGrid(grid), nil
}
