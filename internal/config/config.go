package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/windowwise/internal/catalog"
	"github.com/Veraticus/windowwise/internal/common"
	"github.com/Veraticus/windowwise/internal/engine"
	"github.com/Veraticus/windowwise/internal/location"
)

// EnvPrefix is prepended to every environment override, e.g. WINDOWWISE_CATALOG_SOURCE.
const EnvPrefix = "WINDOWWISE"

// EnvKeyReplacer maps nested keys to environment names: catalog.source becomes CATALOG_SOURCE.
func EnvKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_", "-", "_")
}

// DefaultCatalogSource is read from the working directory when nothing else is configured.
const DefaultCatalogSource = "window_replacement_dataset.csv"

// Config is the typed view of the application's settings.
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Database DatabaseConfig `mapstructure:"database"`
	Location LocationConfig `mapstructure:"location"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	TUI      TUIConfig      `mapstructure:"tui"`
	Engine   EngineConfig   `mapstructure:"engine"`
}

// CatalogConfig says where products come from.
type CatalogConfig struct {
	Source string `mapstructure:"source"`
	// UseStore reads the imported catalog from the database instead of Source.
	UseStore bool `mapstructure:"use_store"`
}

// DatabaseConfig locates the SQLite catalog store.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LocationConfig controls IP geolocation.
type LocationConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Detect   bool   `mapstructure:"detect"`
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TUIConfig controls the interactive wizard.
type TUIConfig struct {
	Theme string `mapstructure:"theme"`
}

// EngineConfig tunes scoring.
type EngineConfig struct {
	Weights engine.Weights `mapstructure:"weights"`
	Limit   int            `mapstructure:"limit"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	w := engine.DefaultWeights()

	v.SetDefault("catalog.source", DefaultCatalogSource)
	v.SetDefault("catalog.use_store", false)
	v.SetDefault("database.path", defaultDatabasePath())
	v.SetDefault("location.detect", false)
	v.SetDefault("location.endpoint", location.DefaultEndpoint)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("tui.theme", "default")
	v.SetDefault("engine.limit", engine.MaxResults)
	v.SetDefault("engine.weights.type_match", w.TypeMatch)
	v.SetDefault("engine.weights.budget", w.Budget)
	v.SetDefault("engine.weights.climate", w.Climate)
	v.SetDefault("engine.weights.energy", w.Energy)
	v.SetDefault("engine.weights.durability", w.Durability)
	v.SetDefault("engine.weights.maintenance", w.Maintenance)
	v.SetDefault("engine.weights.cost", w.Cost)
	v.SetDefault("engine.weights.luxury", w.Luxury)
	v.SetDefault("engine.weights.premium", w.Premium)
}

// Load reads the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom decodes and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	cfg.Database.Path = ExpandPath(cfg.Database.Path)
	if !catalog.IsURL(cfg.Catalog.Source) {
		cfg.Catalog.Source = ExpandPath(cfg.Catalog.Source)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	if c.Engine.Limit < 1 || c.Engine.Limit > engine.MaxResults {
		return fmt.Errorf("%w: engine.limit must be between 1 and %d, got %d",
			common.ErrInvalidConfig, engine.MaxResults, c.Engine.Limit)
	}
	if err := c.Engine.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: invalid log format %q", common.ErrInvalidConfig, c.Logging.Format)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("%w: database.path", common.ErrMissingConfig)
	}
	return nil
}

// EngineOptions converts the settings into engine options.
func (c *Config) EngineOptions() engine.Config {
	return engine.Config{
		Weights: c.Engine.Weights,
		Limit:   c.Engine.Limit,
	}
}

// Dir returns the directory holding the config file and database.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "windowwise")
}

func defaultDatabasePath() string {
	return filepath.Join(Dir(), "catalog.db")
}
