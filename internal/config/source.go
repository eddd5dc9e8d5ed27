package config

import (
	"context"
	"fmt"

	"github.com/eliseohh/torrebot/internal/sheet"
	"go.uber.org/zap"
)

// OpenSource builds the tabular source selected by SHEET_SOURCE.
// The returned close func releases it and is never nil.
func (c *Config) OpenSource(ctx context.Context, logger *zap.Logger) (sheet.Source, func() error, error) {
	noop := func() error { return nil }

	switch c.Source {
	case SourceGoogleSheets:
		creds, err := NormalizeCredentials(c.Sheets.Credentials)
		if err != nil {
			return nil, noop, fmt.Errorf("GOOGLE_CREDENTIALS: %w", err)
		}
		src, err := sheet.NewGoogleSheets(ctx, creds, c.Sheets.ID, c.Sheets.Range, c.FetchTimeout, logger)
		if err != nil {
			return nil, noop, err
		}
		return src, noop, nil

	case SourceXLSX:
		return sheet.NewXLSXFile(c.XLSX.Path, c.XLSX.Sheet), noop, nil

	case SourceSQL:
		db, err := sheet.OpenSQL(c.SQL.Driver, c.SQL.DSN)
		if err != nil {
			return nil, noop, err
		}
		src, err := sheet.NewSQLTable(db, c.SQL.Table)
		if err != nil {
			db.Close()
			return nil, noop, err
		}
		return src, db.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown SHEET_SOURCE %q", c.Source)
	}
}
