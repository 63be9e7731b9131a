package main

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/windowwise/internal/cli"
	"github.com/Veraticus/windowwise/internal/common"
	"github.com/Veraticus/windowwise/internal/config"
	"github.com/Veraticus/windowwise/internal/sheets"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Connect windowwise to external services",
	}
	cmd.AddCommand(authSheetsCmd())
	return cmd
}

func authSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Authorize exporting comparisons to Google Sheets",
		Long: `Run the Google OAuth2 consent flow in your browser.

Create a desktop OAuth client in the Google Cloud console, then pass its
credentials with --client-id and --client-secret or set sheets.client_id and
sheets.client_secret. The refresh token is saved next to the config file so
later --sheets exports work without signing in again.`,
		Args: cobra.NoArgs,
		RunE: runAuthSheets,
	}

	cmd.Flags().String("client-id", "", "OAuth2 client ID")
	cmd.Flags().String("client-secret", "", "OAuth2 client secret")
	cmd.Flags().String("listen", "localhost:8080", "address for the local OAuth callback")
	return cmd
}

// oauthClient resolves the OAuth client from flags, then config, then
// GOOGLE_SHEETS_* variables.
func oauthClient(cmd *cobra.Command) (id, secret string) {
	flagID, _ := cmd.Flags().GetString("client-id")
	flagSecret, _ := cmd.Flags().GetString("client-secret")
	id = cmp.Or(flagID, viper.GetString("sheets.client_id"), os.Getenv("GOOGLE_SHEETS_CLIENT_ID"))
	secret = cmp.Or(flagSecret, viper.GetString("sheets.client_secret"), os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET"))
	return id, secret
}

func runAuthSheets(cmd *cobra.Command, _ []string) error {
	clientID, clientSecret := oauthClient(cmd)
	if clientID == "" || clientSecret == "" {
		return common.NewUserError(
			"OAuth2 credentials not found. Set sheets.client_id and sheets.client_secret or use --client-id and --client-secret.",
			common.ErrMissingConfig)
	}

	out := cmd.OutOrStdout()
	listen, _ := cmd.Flags().GetString("listen")
	tokenFile := config.SheetsTokenFile()
	slog.Info("Starting Google Sheets authentication", "token_file", tokenFile, "listen", listen)

	announce := func(authURL string) {
		_, _ = fmt.Fprintf(out, "%s\n%s\n",
			cli.FormatInfo("Opening your browser to authorize Google Sheets. If it does not open, visit:"), authURL)
		openBrowser(authURL)
	}
	token, err := sheets.AuthenticateOAuth2Interactive(cmd.Context(), sheets.OAuth2Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenFile:    tokenFile,
		ListenAddr:   listen,
	}, announce)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	viper.Set("sheets.client_id", clientID)
	viper.Set("sheets.client_secret", clientSecret)
	if err := saveConfig(); err != nil {
		// The token file alone is enough once the client is configured.
		slog.Warn("Failed to update config file", "error", err)
		_, _ = fmt.Fprintln(out, cli.FormatWarning("Could not update the config file. Add this to your config.yaml:"))
		_, _ = fmt.Fprintf(out, "sheets:\n  client_id: %q\n  client_secret: %q\n", clientID, clientSecret)
		return nil
	}

	_, err = fmt.Fprintln(out, cli.FormatSuccess("Google Sheets is configured. Add --sheets to recommend or wizard to export."))
	return err
}

// saveConfig writes viper's settings to the config file that was read, or
// to config.yaml in the default directory.
func saveConfig() error {
	path := cmp.Or(viper.ConfigFileUsed(), filepath.Join(config.Dir(), "config.yaml"))
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	return viper.WriteConfigAs(path)
}

var browserCommands = map[string][]string{
	"linux":   {"xdg-open"},
	"darwin":  {"open"},
	"windows": {"rundll32", "url.dll,FileProtocolHandler"},
}

func openBrowser(url string) {
	argv, ok := browserCommands[runtime.GOOS]
	if !ok {
		return
	}
	args := append(argv[1:len(argv):len(argv)], url)
	if err := exec.Command(argv[0], args...).Start(); err != nil { //nolint:gosec
		slog.Debug("Failed to open browser", "error", err)
	}
}
