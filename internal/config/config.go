package config

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/eliseohh/torrebot/internal/lookup"
	"github.com/joho/godotenv"
)

const (
	SourceGoogleSheets = "gsheets"
	SourceXLSX         = "xlsx"
	SourceSQL          = "sql"
)

// Config is read from the environment.
type Config struct {
	Token  string
	Source string

	Sheets struct {
		ID          string
		Range       string
		Credentials string // raw JSON, base64 JSON or a file path
	}

	XLSX struct {
		Path  string
		Sheet string
	}

	SQL struct {
		Driver string
		DSN    string
		Table  string
	}

	Columns      lookup.Columns
	FetchTimeout time.Duration

	Log struct {
		Level  string
		Format string
	}
}

// LoadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads the configuration, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Token = os.Getenv("BOT_TOKEN")
	cfg.Source = strings.ToLower(getEnv("SHEET_SOURCE", SourceGoogleSheets))

	cfg.Sheets.ID = strings.TrimSpace(os.Getenv("SHEET_ID"))
	cfg.Sheets.Range = os.Getenv("SHEET_RANGE")
	cfg.Sheets.Credentials = os.Getenv("GOOGLE_CREDENTIALS")

	cfg.XLSX.Path = os.Getenv("XLSX_PATH")
	cfg.XLSX.Sheet = os.Getenv("XLSX_SHEET")

	cfg.SQL.Driver = getEnv("SQL_DRIVER", "sqlite3")
	cfg.SQL.DSN = os.Getenv("SQL_DSN")
	cfg.SQL.Table = getEnv("SQL_TABLE", "apartamentos")

	def := lookup.DefaultColumns()
	cfg.Columns = lookup.Columns{
		Tower:     getEnv("COL_TOWER", def.Tower),
		Apartment: getEnv("COL_APARTMENT", def.Apartment),
		Owner:     getEnv("COL_OWNER", def.Owner),
		Status:    getEnv("COL_STATUS", def.Status),
	}

	timeout, err := time.ParseDuration(getEnv("FETCH_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}
	cfg.FetchTimeout = timeout

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

// Validate reports every missing setting for the selected source.
// requireToken is false for tools that never talk to Telegram.
func (c *Config) Validate(requireToken bool) error {
	var errs []error
	if requireToken && c.Token == "" {
		errs = append(errs, errors.New("missing BOT_TOKEN"))
	}

	switch c.Source {
	case SourceGoogleSheets:
		if c.Sheets.ID == "" {
			errs = append(errs, errors.New("missing SHEET_ID"))
		}
		if strings.TrimSpace(c.Sheets.Credentials) == "" {
			errs = append(errs, errors.New("missing GOOGLE_CREDENTIALS"))
		}
	case SourceXLSX:
		if c.XLSX.Path == "" {
			errs = append(errs, errors.New("missing XLSX_PATH"))
		}
	case SourceSQL:
		if c.SQL.DSN == "" {
			errs = append(errs, errors.New("missing SQL_DSN"))
		}
		if c.SQL.Driver != "sqlite3" && c.SQL.Driver != "postgres" {
			errs = append(errs, fmt.Errorf("unsupported SQL_DRIVER %q", c.SQL.Driver))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown SHEET_SOURCE %q", c.Source))
	}

	if c.FetchTimeout <= 0 {
		errs = append(errs, errors.New("FETCH_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

// NormalizeCredentials turns GOOGLE_CREDENTIALS into service-account JSON.
// Accepted: raw JSON, base64-encoded JSON, or a path to a JSON file.
// A private_key whose newlines arrived as literal "\n" is repaired.
func NormalizeCredentials(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		raw = raw[1 : len(raw)-1]
	}
	if raw == "" {
		return nil, errors.New("empty credentials")
	}

	var data []byte
	switch {
	case strings.HasPrefix(raw, "{"):
		data = []byte(raw)
	case fileExists(raw):
		b, err := os.ReadFile(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		data = b
	default:
		b, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return nil, errors.New("credentials are neither JSON, base64 nor a readable file")
		}
		data = b
	}

	var key map[string]any
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, fmt.Errorf("invalid credentials JSON: %w", err)
	}
	if pk, ok := key["private_key"].(string); ok {
		key["private_key"] = strings.ReplaceAll(pk, `\n`, "\n")
	}
	return json.Marshal(key)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
