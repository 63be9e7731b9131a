package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_Detect(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		status  int
		wantErr bool
	}{
		{
			name:   "city and region code",
			status: http.StatusOK,
			body:   `{"city":"Seattle","region":"Washington","region_code":"wa","country_code":"US"}`,
			want:   "Seattle, WA",
		},
		{
			name:    "missing region",
			status:  http.StatusOK,
			body:    `{"city":"Seattle"}`,
			wantErr: true,
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    `slow down`,
			wantErr: true,
		},
		{
			name:    "api error flag",
			status:  http.StatusOK,
			body:    `{"error":true,"reason":"Reserved IP Address"}`,
			wantErr: true,
		},
		{
			name:    "garbage",
			status:  http.StatusOK,
			body:    `<html>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := NewDetector(srv.URL).Detect(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetector_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"city":"Austin","region_code":"TX"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := NewDetector(srv.URL).Detect(ctx)
	require.Error(t, err)
	assert.Empty(t, got)
}

func TestNewDetector_DefaultEndpoint(t *testing.T) {
	assert.Equal(t, DefaultEndpoint, NewDetector("").endpoint)
}
