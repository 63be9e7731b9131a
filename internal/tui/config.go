package tui

import (
	"context"

	"github.com/Veraticus/windowwise/internal/model"
	"github.com/Veraticus/windowwise/internal/tui/themes"
)

// Recommender scores a catalog against the collected answers.
type Recommender interface {
	Recommend(catalog []model.Product, answers model.Answers, location string) []model.Recommendation
}

// LocationDetector guesses the user's "City, ST".
type LocationDetector interface {
	Detect(ctx context.Context) (string, error)
}

// Config is everything a Model needs besides its answers.
type Config struct {
	Theme           themes.Theme
	Recommender     Recommender
	Detector        LocationDetector
	DefaultLocation string
	Catalog         []model.Product
	Width           int
	Height          int
}

// Option adjusts a Config before the Model is built.
type Option func(*Config)

func defaultConfig() Config {
	return Config{Theme: themes.Default, Width: 80, Height: 24}
}

func WithRecommender(r Recommender) Option { return func(c *Config) { c.Recommender = r } }

func WithCatalog(products []model.Product) Option { return func(c *Config) { c.Catalog = products } }

// WithDetector starts a location lookup when the wizard opens.
func WithDetector(d LocationDetector) Option { return func(c *Config) { c.Detector = d } }

// WithDefaultLocation pre-fills the location question.
func WithDefaultLocation(location string) Option {
	return func(c *Config) { c.DefaultLocation = location }
}

func WithTheme(theme themes.Theme) Option { return func(c *Config) { c.Theme = theme } }

// WithSize sets the layout used until the first WindowSizeMsg arrives.
func WithSize(width, height int) Option {
	return func(c *Config) { c.Width, c.Height = width, height }
}
