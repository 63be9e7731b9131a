package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Veraticus/windowwise/internal/sheets"
)

// LoadSheetsConfig resolves Sheets settings, first match wins: viper (config
// file or WINDOWWISE_SHEETS_*), GOOGLE_SHEETS_* variables, the token saved by
// "auth sheets", then defaults.
func LoadSheetsConfig() (*sheets.Config, error) {
	return LoadSheetsConfigFrom(viper.GetViper())
}

// LoadSheetsConfigFrom is LoadSheetsConfig against a specific viper instance.
func LoadSheetsConfigFrom(v *viper.Viper) (*sheets.Config, error) {
	config := sheets.DefaultConfig()

	if s := v.GetString("sheets.service_account_path"); s != "" {
		config.ServiceAccountPath = ExpandPath(s)
	}
	config.ClientID = v.GetString("sheets.client_id")
	config.ClientSecret = v.GetString("sheets.client_secret")
	config.RefreshToken = v.GetString("sheets.refresh_token")
	config.SpreadsheetID = v.GetString("sheets.spreadsheet_id")
	if s := v.GetString("sheets.spreadsheet_name"); s != "" {
		config.SpreadsheetName = s
	}
	if s := v.GetString("sheets.timezone"); s != "" {
		config.TimeZone = s
	}
	if v.IsSet("sheets.formatting") {
		config.EnableFormatting = v.GetBool("sheets.formatting")
	}

	if config.RefreshToken == "" && os.Getenv("GOOGLE_SHEETS_REFRESH_TOKEN") == "" {
		if token, err := sheets.LoadToken(SheetsTokenFile()); err == nil {
			config.RefreshToken = token.RefreshToken
		}
	}

	// LoadFromEnv validates as its last step.
	if err := config.LoadFromEnv(); err != nil {
		return nil, err
	}
	config.ServiceAccountPath = ExpandPath(config.ServiceAccountPath)

	return &config, nil
}

// SheetsTokenFile is where "auth sheets" saves the OAuth2 token.
func SheetsTokenFile() string {
	return filepath.Join(Dir(), "sheets-token.json")
}
