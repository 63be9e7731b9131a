// Package location guesses the user's "City, ST" from their public IP.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultEndpoint is the IP geolocation service queried by Detect.
const DefaultEndpoint = "https://ipapi.co/json/"

type ipapiResponse struct {
	City       string `json:"city"`
	Region     string `json:"region"`
	RegionCode string `json:"region_code"`
	Country    string `json:"country_code"`
	Error      bool   `json:"error"`
	Reason     string `json:"reason"`
}

// Detector performs a single geolocation lookup.
type Detector struct {
	httpClient *http.Client
	endpoint   string
}

// NewDetector creates a detector against endpoint, or DefaultEndpoint when empty.
func NewDetector(endpoint string) *Detector {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Detector{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Detect returns "City, ST" for the caller's IP. On any failure it returns
// an empty string along with the error; callers treat that as an unknown
// location.
func (d *Detector) Detect(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create location request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to detect location: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("location lookup returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var data ipapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode location response: %w", err)
	}
	if data.Error {
		return "", fmt.Errorf("location lookup failed: %s", data.Reason)
	}

	city := strings.TrimSpace(data.City)
	region := strings.ToUpper(strings.TrimSpace(data.RegionCode))
	if city == "" || region == "" {
		return "", fmt.Errorf("location lookup returned no city or region")
	}

	location := city + ", " + region
	slog.Debug("Detected location", "location", location, "country", data.Country)
	return location, nil
}
