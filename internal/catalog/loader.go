package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/windowwise/internal/model"
)

// Result is what a load produced.
type Result struct {
	Err          error
	Source       string
	Products     []model.Product
	Stats        ParseStats
	UsedFallback bool
}

// Loader fetches a catalog from a URL or a local file. It never retries:
// any failure yields the fallback catalog.
type Loader struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient overrides the HTTP client used for URL sources.
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) {
		l.httpClient = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the catalog at source. The returned Result always carries a
// usable product list; Err records why the fallback was used, if it was.
func (l *Loader) Load(ctx context.Context, source string) Result {
	products, stats, err := l.load(ctx, source)
	if err != nil {
		l.logger.Warn("Failed to load catalog, using fallback",
			"source", source,
			"error", err)
		fallback := Fallback()
		return Result{
			Products:     fallback,
			Source:       source,
			Stats:        ParseStats{Rows: len(fallback), Loaded: len(fallback)},
			UsedFallback: true,
			Err:          err,
		}
	}

	l.logger.Info("Loaded catalog",
		"source", source,
		"count", stats.Loaded,
		"dropped", stats.Dropped)

	return Result{
		Products: products,
		Source:   source,
		Stats:    stats,
	}
}

func (l *Loader) load(ctx context.Context, source string) ([]model.Product, ParseStats, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, ParseStats{}, fmt.Errorf("no catalog source configured")
	}

	body, err := l.open(ctx, source)
	if err != nil {
		return nil, ParseStats{}, err
	}
	defer func() { _ = body.Close() }()

	return Parse(body)
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !IsURL(source) {
		f, err := os.Open(source) // #nosec G304
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog file: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch catalog: status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// IsURL reports whether source should be fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
