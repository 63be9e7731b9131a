package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/windowwise/internal/cli"
	"github.com/Veraticus/windowwise/internal/common"
	"github.com/Veraticus/windowwise/internal/config"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = newRootCmd()
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "windowwise",
		Short: "🪟 Window replacement advisor",
		Long: `windowwise: Answer five questions about your home and get ranked
replacement window recommendations with installed cost estimates.

Run without a subcommand to start the interactive wizard.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		RunE:              runWizard,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/windowwise/config.yaml)")
	for _, f := range []struct{ name, key, value, usage string }{
		{"log-level", "logging.level", "info", "log level (debug, info, warn, error)"},
		{"log-format", "logging.format", "console", "log format (console, json)"},
		{"catalog", "catalog.source", "", "catalog CSV file or URL (overrides catalog.source)"},
		{"db", "database.path", "", "catalog database path (overrides database.path)"},
	} {
		flags.String(f.name, f.value, f.usage)
		_ = viper.BindPFlag(f.key, flags.Lookup(f.name))
	}

	addWizardFlags(cmd)

	cmd.AddCommand(
		wizardCmd(),
		recommendCmd(),
		catalogCmd(),
		askCmd(),
		zonesCmd(),
		installerCmd(),
		authCmd(),
		versionCmd(),
	)

	return cmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		var userErr *common.UserError
		if errors.As(err, &userErr) {
			fmt.Fprintln(os.Stderr, cli.FormatError(userErr.UserMessage))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.Dir())
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(config.EnvKeyReplacer())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	if used := viper.ConfigFileUsed(); used != "" {
		slog.Debug("Loaded config file", "path", used)
	}
	return nil
}

func setupLogging() error {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}

	format := viper.GetString("logging.format")
	if format != "" && format != "console" && format != "json" {
		return fmt.Errorf("%w: invalid log format %q", common.ErrInvalidConfig, format)
	}

	common.SetupLogger(os.Stderr, level, format)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "windowwise %s\n", version)
		},
	}
}
