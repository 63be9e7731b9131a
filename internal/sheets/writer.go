package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Veraticus/windowwise/internal/common"
	"github.com/Veraticus/windowwise/internal/export"
	"github.com/Veraticus/windowwise/internal/model"
	"github.com/Veraticus/windowwise/internal/service"
)

// SheetTitle names the tab created for new spreadsheets.
const SheetTitle = "Comparison"

// headerRow is the zero-based row holding the column headers.
const headerRow = 3

// Currency columns: Window Cost, Installation, Total.
const (
	firstCurrencyColumn = 10
	lastCurrencyColumn  = 12
)

// Writer publishes comparisons to Google Sheets.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

var _ service.ComparisonWriter = (*Writer)(nil)

// NewWriter creates a new Google Sheets comparison writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return newWriterWithService(srv, config, logger), nil
}

func newWriterWithService(srv *sheets.Service, config Config, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		config:  config,
		service: srv,
		logger:  logger,
	}
}

// Write replaces the sheet contents with a title block and recs in rank order.
func (w *Writer) Write(ctx context.Context, recs []model.Recommendation, summary *service.ComparisonSummary) error {
	if summary == nil {
		summary = &service.ComparisonSummary{GeneratedAt: time.Now()}
	}
	w.logger.Info("Exporting comparison", "recommendations", len(recs), "run_id", summary.RunID)

	var id string
	if err := w.retry(ctx, func() (err error) {
		id, err = w.getOrCreateSpreadsheet(ctx)
		return err
	}); err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	if err := w.clearSheet(ctx, id); err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	values := prepareComparisonData(recs, summary)
	if err := w.retry(ctx, func() error { return w.writeData(ctx, id, values) }); err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	if w.config.EnableFormatting {
		if err := w.retry(ctx, func() error { return w.applyFormatting(ctx, id, len(values)) }); err != nil {
			w.logger.Warn("Comparison written without formatting", "error", err)
		}
	}

	w.logger.Info("Exported comparison", "spreadsheet_id", id, "rows", len(values))
	return nil
}

func (w *Writer) retry(ctx context.Context, op func() error) error {
	return common.WithRetry(ctx, func() error { return classifyAPIError(op()) }, service.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2,
	})
}

// classifyAPIError maps Sheets API failures onto the retry loop: 429 backs
// off fully, other client errors are not retried.
func classifyAPIError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	switch {
	case apiErr.Code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", common.ErrRateLimit, err)
	case apiErr.Code >= 400 && apiErr.Code < 500:
		return common.Permanent(err)
	}
	return err
}

// tokenSource prefers a service account key and falls back to the stored
// OAuth2 refresh token.
func tokenSource(ctx context.Context, config Config) (oauth2.TokenSource, error) {
	if config.ServiceAccountPath == "" {
		token := &oauth2.Token{RefreshToken: config.RefreshToken, TokenType: "Bearer"}
		return oauthConfig(config.ClientID, config.ClientSecret, "").TokenSource(ctx, token), nil
	}

	key, err := os.ReadFile(config.ServiceAccountPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account key %s: %w", config.ServiceAccountPath, err)
	}
	jwt, err := google.JWTConfigFromJSON(key, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}
	return jwt.TokenSource(ctx), nil
}

func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	ts, err := tokenSource(ctx, config)
	if err != nil {
		return nil, err
	}
	return sheets.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, ts)))
}

// getOrCreateSpreadsheet checks the configured spreadsheet, or creates one
// with a single Comparison tab and remembers its ID for later writes.
func (w *Writer) getOrCreateSpreadsheet(ctx context.Context) (string, error) {
	if id := w.config.SpreadsheetID; id != "" {
		if _, err := w.service.Spreadsheets.Get(id).Context(ctx).Do(); err != nil {
			return "", fmt.Errorf("spreadsheet %s is not accessible: %w", id, err)
		}
		return id, nil
	}

	created, err := w.service.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: w.config.SpreadsheetName, TimeZone: w.config.TimeZone},
		Sheets:     []*sheets.Sheet{{Properties: &sheets.SheetProperties{Title: SheetTitle}}},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	w.logger.Info("Created spreadsheet", "id", created.SpreadsheetId, "url", created.SpreadsheetUrl)
	w.config.SpreadsheetID = created.SpreadsheetId
	return created.SpreadsheetId, nil
}

func (w *Writer) clearSheet(ctx context.Context, spreadsheetID string) error {
	_, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, "A:Z", &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

// prepareComparisonData lays out a title block, the header row at headerRow
// and one row per recommendation in rank order.
func prepareComparisonData(recs []model.Recommendation, summary *service.ComparisonSummary) [][]any {
	values := make([][]any, 0, headerRow+1+len(recs))

	location := summary.Location
	if location == "" {
		location = "Unknown location"
	}
	zone := summary.ClimateZone
	if zone == "" {
		zone = "Unknown zone"
	}

	values = append(values,
		[]any{"Window Comparison", location, zone},
		[]any{"Generated", summary.GeneratedAt.Format("Jan 2, 2006 15:04"), "Run", summary.RunID},
		[]any{"Catalog Size", summary.CatalogSize, "Results", len(recs)},
	)

	header := make([]any, 0, len(export.Header))
	for _, h := range export.Header {
		header = append(header, h)
	}
	values = append(values, header)

	for _, row := range NewComparisonRows(recs) {
		values = append(values, row.Values())
	}

	return values
}

// writeData sends values in BatchSize chunks, each anchored at its first row.
func (w *Writer) writeData(ctx context.Context, spreadsheetID string, values [][]any) error {
	for start := 0; start < len(values); start += w.config.BatchSize {
		chunk := values[start:min(start+w.config.BatchSize, len(values))]
		anchor := fmt.Sprintf("A%d", start+1)

		call := w.service.Spreadsheets.Values.Update(spreadsheetID, anchor, &sheets.ValueRange{Values: chunk})
		if _, err := call.ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
			return fmt.Errorf("failed to write rows from %s: %w", anchor, err)
		}
		w.logger.Debug("Wrote rows", "anchor", anchor, "rows", len(chunk))
	}
	return nil
}

func rows(start, end int64) *sheets.GridRange {
	return &sheets.GridRange{StartRowIndex: start, EndRowIndex: end, EndColumnIndex: int64(len(export.Header))}
}

func repeatCell(r *sheets.GridRange, format *sheets.CellFormat, fields string) *sheets.Request {
	return &sheets.Request{RepeatCell: &sheets.RepeatCellRequest{
		Range:  r,
		Cell:   &sheets.CellData{UserEnteredFormat: format},
		Fields: fields,
	}}
}

// applyFormatting bolds the title and header, formats the money columns and
// freezes everything above the first product.
func (w *Writer) applyFormatting(ctx context.Context, spreadsheetID string, totalRows int) error {
	money := rows(headerRow+1, int64(totalRows))
	money.StartColumnIndex, money.EndColumnIndex = firstCurrencyColumn, lastCurrencyColumn+1

	requests := []*sheets.Request{
		repeatCell(rows(0, 1),
			&sheets.CellFormat{TextFormat: &sheets.TextFormat{Bold: true, FontSize: 16}},
			"userEnteredFormat.textFormat"),
		repeatCell(rows(headerRow, headerRow+1),
			&sheets.CellFormat{
				TextFormat:      &sheets.TextFormat{Bold: true},
				BackgroundColor: &sheets.Color{Red: 0.86, Green: 0.92, Blue: 0.98},
			},
			"userEnteredFormat(textFormat,backgroundColor)"),
		repeatCell(money,
			&sheets.CellFormat{NumberFormat: &sheets.NumberFormat{Type: "CURRENCY", Pattern: "$#,##0"}},
			"userEnteredFormat.numberFormat"),
		{AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
			Dimensions: &sheets.DimensionRange{Dimension: "COLUMNS", EndIndex: int64(len(export.Header))},
		}},
		{UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				GridProperties: &sheets.GridProperties{FrozenRowCount: headerRow + 1},
			},
			Fields: "gridProperties.frozenRowCount",
		}},
	}

	_, err := w.service.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{Requests: requests}).
		Context(ctx).
		Do()
	return err
}
