// Package sheets publishes window comparisons to Google Sheets.
package sheets

import (
	"fmt"
	"os"
	"time"

	"github.com/Veraticus/windowwise/internal/common"
)

// DefaultSpreadsheetName titles spreadsheets created without an explicit ID.
const DefaultSpreadsheetName = "Window Comparison"

// Config selects the spreadsheet and credentials used by Writer. Exactly one
// of the OAuth2 triple or ServiceAccountPath must be set.
type Config struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	SpreadsheetID      string
	SpreadsheetName    string
	TimeZone           string
	BatchSize          int
	RetryAttempts      int
	RetryDelay         time.Duration
	EnableFormatting   bool
}

func DefaultConfig() Config {
	return Config{
		SpreadsheetName:  DefaultSpreadsheetName,
		TimeZone:         "America/Los_Angeles",
		BatchSize:        500,
		RetryAttempts:    3,
		RetryDelay:       time.Second,
		EnableFormatting: true,
	}
}

// LoadFromEnv fills blank fields from GOOGLE_SHEETS_* variables, then validates.
// A spreadsheet name still at its default may also be overridden.
func (c *Config) LoadFromEnv() error {
	fromEnv := map[string]*string{
		"GOOGLE_SHEETS_CLIENT_ID":            &c.ClientID,
		"GOOGLE_SHEETS_CLIENT_SECRET":        &c.ClientSecret,
		"GOOGLE_SHEETS_REFRESH_TOKEN":        &c.RefreshToken,
		"GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH": &c.ServiceAccountPath,
		"GOOGLE_SHEETS_SPREADSHEET_ID":       &c.SpreadsheetID,
	}
	if c.SpreadsheetName == DefaultSpreadsheetName {
		c.SpreadsheetName = ""
	}
	fromEnv["GOOGLE_SHEETS_SPREADSHEET_NAME"] = &c.SpreadsheetName

	for key, field := range fromEnv {
		if *field == "" {
			*field = os.Getenv(key)
		}
	}
	if c.SpreadsheetName == "" {
		c.SpreadsheetName = DefaultSpreadsheetName
	}
	return c.Validate()
}

// Validate reports ErrMissingConfig when no credentials are present and
// ErrInvalidConfig for anything else out of range.
func (c *Config) Validate() error {
	oauth := c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
	serviceAccount := c.ServiceAccountPath != ""

	var problem string
	switch {
	case !oauth && !serviceAccount:
		return fmt.Errorf("%w: no Google Sheets authentication method configured", common.ErrMissingConfig)
	case oauth && serviceAccount:
		problem = "multiple authentication methods configured; use either OAuth2 or service account"
	case c.BatchSize <= 0:
		problem = "batch size must be positive"
	case c.RetryAttempts < 0:
		problem = "retry attempts cannot be negative"
	case c.RetryDelay < 0:
		problem = "retry delay cannot be negative"
	default:
		return nil
	}
	return fmt.Errorf("%w: %s", common.ErrInvalidConfig, problem)
}
