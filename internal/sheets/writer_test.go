package sheets

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Veraticus/windowwise/internal/common"
	"github.com/Veraticus/windowwise/internal/export"
	"github.com/Veraticus/windowwise/internal/model"
	"github.com/Veraticus/windowwise/internal/service"
)

func testRecs() []model.Recommendation {
	return []model.Recommendation{
		{
			Product: model.Product{
				Brand:         "Milgard",
				Series:        "Ultra",
				Material:      model.MaterialFiberglass,
				WindowType:    model.WindowSliding,
				UFactor:       0.27,
				WarrantyYears: 30,
			},
			Pricing: model.PricingResult{Window: 978, Installation: 220, Total: 1198},
			Score:   65,
			Reasons: []string{"a", "b"},
		},
		{
			Product: model.Product{Brand: "Andersen", WindowType: model.WindowSliding},
			Pricing: model.PricingResult{Window: 600, Installation: 220, Total: 820},
			Score:   50,
		},
	}
}

func testSummary() *service.ComparisonSummary {
	return &service.ComparisonSummary{
		GeneratedAt: time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC),
		RunID:       "run-1",
		Location:    "Seattle, WA",
		ClimateZone: "4C - Marine",
		CatalogSize: 12,
	}
}

func TestNewComparisonRows(t *testing.T) {
	rows := NewComparisonRows(testRecs())
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, "a; b", first.Reasons)
	assert.Equal(t, "1198", first.Total.String())

	values := first.Values()
	require.Len(t, values, len(export.Header))
	assert.Equal(t, 0.27, values[6])
	assert.Equal(t, "", values[7], "missing SHGC is blank")
	assert.Equal(t, 30, values[9])
	assert.Equal(t, 978.0, values[10])
	assert.Equal(t, 1198.0, values[12])
}

func TestPrepareComparisonData(t *testing.T) {
	values := prepareComparisonData(testRecs(), testSummary())
	require.Len(t, values, headerRow+1+2)

	assert.Equal(t, []any{"Window Comparison", "Seattle, WA", "4C - Marine"}, values[0])
	assert.Equal(t, "Mar 4, 2026 10:30", values[1][1])
	assert.Equal(t, "run-1", values[1][3])
	assert.Equal(t, 12, values[2][1])
	assert.Equal(t, "Rank", values[headerRow][0])
	assert.Equal(t, "Reasons", values[headerRow][len(export.Header)-1])
	assert.Equal(t, "Milgard", values[headerRow+1][1])
	assert.Equal(t, "Andersen", values[headerRow+2][1])
}

func TestPrepareComparisonData_UnknownLocation(t *testing.T) {
	values := prepareComparisonData(nil, &service.ComparisonSummary{})
	require.Len(t, values, headerRow+1)
	assert.Equal(t, "Unknown location", values[0][1])
	assert.Equal(t, "Unknown zone", values[0][2])
}

type recordedRequest struct {
	method string
	path   string
	body   string
}

func newFakeSheetsServer(t *testing.T) (*httptest.Server, func() []recordedRequest) {
	t.Helper()
	var (
		mu       sync.Mutex
		requests []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, recordedRequest{method: r.Method, path: r.URL.Path, body: string(body)})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/v4/spreadsheets") {
			_, _ = w.Write([]byte(`{"spreadsheetId":"new-sheet","spreadsheetUrl":"https://example.test/new-sheet"}`))
			return
		}
		_, _ = w.Write([]byte(`{"spreadsheetId":"existing"}`))
	}))
	t.Cleanup(srv.Close)

	return srv, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		out := make([]recordedRequest, len(requests))
		copy(out, requests)
		return out
	}
}

func newTestWriter(t *testing.T, srv *httptest.Server, config Config) *Writer {
	t.Helper()
	svc, err := sheets.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return newWriterWithService(svc, config, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWriter_Write_CreatesSpreadsheet(t *testing.T) {
	srv, requests := newFakeSheetsServer(t)
	config := DefaultConfig()
	config.ServiceAccountPath = "unused"
	w := newTestWriter(t, srv, config)

	require.NoError(t, w.Write(context.Background(), testRecs(), testSummary()))

	got := requests()
	require.Len(t, got, 4)
	assert.Equal(t, http.MethodPost, got[0].method)
	assert.Contains(t, got[0].body, SheetTitle)
	assert.Contains(t, got[1].path, "new-sheet")
	assert.Contains(t, got[1].path, ":clear")
	assert.Equal(t, http.MethodPut, got[2].method)
	assert.Contains(t, got[2].body, "Milgard")
	assert.Contains(t, got[3].path, ":batchUpdate")

	assert.Equal(t, "new-sheet", w.config.SpreadsheetID)
}

func TestWriter_Write_ExistingSpreadsheetBatches(t *testing.T) {
	srv, requests := newFakeSheetsServer(t)
	config := DefaultConfig()
	config.ServiceAccountPath = "unused"
	config.SpreadsheetID = "existing"
	config.BatchSize = 2
	config.EnableFormatting = false
	w := newTestWriter(t, srv, config)

	require.NoError(t, w.Write(context.Background(), testRecs(), testSummary()))

	var puts int
	for _, r := range requests() {
		if r.method == http.MethodPut {
			puts++
		}
		assert.NotContains(t, r.path, ":batchUpdate")
	}
	assert.Equal(t, 3, puts, "6 rows in batches of 2")
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	token := &oauth2.Token{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer"}

	require.NoError(t, SaveToken(path, token))
	loaded, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "r", loaded.RefreshToken)
}

func TestMockWriter(t *testing.T) {
	m := NewMockWriter()
	require.NoError(t, m.Write(context.Background(), testRecs(), testSummary()))

	m.SetWriteError(assert.AnError)
	assert.ErrorIs(t, m.Write(context.Background(), nil, nil), assert.AnError)

	calls := m.Calls()
	require.Len(t, calls, 2)
	assert.Len(t, calls[0].Recommendations, 2)
	assert.ErrorIs(t, calls[1].Error, assert.AnError)
}

func TestClassifyAPIError(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		err           error
		name          string
		wantRateLimit bool
		wantRetry     bool
	}{
		{name: "non api error", err: plain, wantRetry: true},
		{name: "rate limited", err: &googleapi.Error{Code: http.StatusTooManyRequests}, wantRetry: true, wantRateLimit: true},
		{name: "server error", err: &googleapi.Error{Code: http.StatusBadGateway}, wantRetry: true},
		{name: "not found", err: &googleapi.Error{Code: http.StatusNotFound}},
		{name: "forbidden", err: &googleapi.Error{Code: http.StatusForbidden}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyAPIError(tt.err)
			assert.ErrorIs(t, got, tt.err)
			assert.Equal(t, tt.wantRetry, common.IsRetryable(got))
			assert.Equal(t, tt.wantRateLimit, errors.Is(got, common.ErrRateLimit))
		})
	}
}
