package sheet

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	sheetsBaseURL     = "https://sheets.googleapis.com"
	sheetsReadOnly    = "https://www.googleapis.com/auth/spreadsheets.readonly"
	DefaultSheetRange = "A:ZZ" // no sheet prefix: first visible sheet
)

// GoogleSheets reads a spreadsheet through the Sheets API v4 values endpoint.
type GoogleSheets struct {
	http          *resty.Client
	spreadsheetID string
	readRange     string
	logger        *zap.Logger
}

type valueRange struct {
	Range          string     `json:"range"`
	MajorDimension string     `json:"majorDimension"`
	Values         [][]string `json:"values"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// NewGoogleSheets authenticates with a service-account key and returns a reader
// for spreadsheetID. An empty readRange means DefaultSheetRange.
func NewGoogleSheets(ctx context.Context, credentialsJSON []byte, spreadsheetID, readRange string, timeout time.Duration, logger *zap.Logger) (*GoogleSheets, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, sheetsReadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to parse google credentials: %w", err)
	}

	// ctx only scopes token refreshes; keep it long-lived.
	client := resty.NewWithClient(oauth2.NewClient(ctx, creds.TokenSource)).
		SetBaseURL(sheetsBaseURL).
		SetTimeout(timeout)

	return newGoogleSheets(client, spreadsheetID, readRange, logger), nil
}

func newGoogleSheets(client *resty.Client, spreadsheetID, readRange string, logger *zap.Logger) *GoogleSheets {
	if readRange == "" {
		readRange = DefaultSheetRange
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	client.
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	return &GoogleSheets{
		http:          client,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		logger:        logger,
	}
}

// FetchRows downloads the range as formatted text and maps it by header row.
func (g *GoogleSheets) FetchRows(ctx context.Context) ([]Row, error) {
	var (
		result valueRange
		failed apiError
	)

	resp, err := g.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"id":    g.spreadsheetID,
			"range": g.readRange,
		}).
		SetQueryParams(map[string]string{
			"majorDimension":    "ROWS",
			"valueRenderOption": "FORMATTED_VALUE",
		}).
		SetResult(&result).
		SetError(&failed).
		Get("/v4/spreadsheets/{id}/values/{range}")
	if err != nil {
		return nil, fmt.Errorf("sheets request failed: %w", err)
	}

	if resp.IsError() {
		if failed.Error.Message != "" {
			return nil, fmt.Errorf("sheets error: %s: %s", resp.Status(), failed.Error.Message)
		}
		return nil, fmt.Errorf("sheets error: %s", resp.Status())
	}

	rows := rowsFromGrid(result.Values)
	g.logger.Debug("sheet fetched",
		zap.String("range", result.Range),
		zap.Int("rows", len(rows)),
		zap.Duration("elapsed", resp.Time()),
	)
	return rows, nil
}
