package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// ErrAuthTimeout means the browser never reached the callback.
var ErrAuthTimeout = errors.New("authentication timeout")

const (
	defaultListenAddr  = "localhost:8080"
	defaultAuthTimeout = 5 * time.Minute

	callbackOK     = `<html><body><h1>Windowwise is connected to Google Sheets</h1><p>You can close this tab.</p></body></html>`
	callbackFailed = `<html><body><h1>Authorization failed</h1><p>Google did not return a code. Run windowwise auth sheets again.</p></body></html>`
)

// OAuth2Config describes one run of the browser consent flow.
type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	TokenFile    string // saved after a successful exchange when set
	ListenAddr   string // defaults to localhost:8080
	Timeout      time.Duration
}

func oauthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  redirectURL,
		Scopes:       []string{sheets.SpreadsheetsScope},
	}
}

// callback receives the single redirect from Google's consent page.
type callback struct {
	state string
	codes chan string
	errs  chan error
}

func (c *callback) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("state") != c.state {
		http.Error(w, "state mismatch", http.StatusBadRequest)
		return
	}
	code := q.Get("code")
	page := callbackOK
	if code == "" {
		page = callbackFailed
		c.fail(errors.New("no authorization code received"))
	} else {
		select {
		case c.codes <- code:
		default:
		}
	}
	_, _ = fmt.Fprint(w, page)
}

func (c *callback) fail(err error) {
	select {
	case c.errs <- err:
	default:
	}
}

// AuthenticateOAuth2Interactive asks the user to approve Sheets access in a
// browser and returns a token with a refresh token. announce is given the
// consent URL.
func AuthenticateOAuth2Interactive(ctx context.Context, config OAuth2Config, announce func(authURL string)) (*oauth2.Token, error) {
	if config.ListenAddr == "" {
		config.ListenAddr = defaultListenAddr
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultAuthTimeout
	}

	listener, err := net.Listen("tcp", config.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to start callback server: %w", err)
	}

	cb := &callback{state: uuid.NewString(), codes: make(chan string, 1), errs: make(chan error, 1)}
	mux := http.NewServeMux()
	mux.Handle("/callback", cb)
	server := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cb.fail(fmt.Errorf("callback server failed: %w", err))
		}
	}()
	defer func() {
		if err := server.Shutdown(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("Error shutting down callback server", "error", err)
		}
	}()

	cfg := oauthConfig(config.ClientID, config.ClientSecret, "http://"+listener.Addr().String()+"/callback")
	if announce != nil {
		announce(cfg.AuthCodeURL(cb.state, oauth2.AccessTypeOffline, oauth2.ApprovalForce))
	}

	timer := time.NewTimer(config.Timeout)
	defer timer.Stop()

	var code string
	select {
	case code = <-cb.codes:
	case err := <-cb.errs:
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, fmt.Errorf("%w: no response received within %s", ErrAuthTimeout, config.Timeout)
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if config.TokenFile != "" {
		if err := SaveToken(config.TokenFile, token); err != nil {
			slog.Warn("Failed to save token", "error", err, "file", config.TokenFile)
		}
	}
	return token, nil
}

// LoadToken reads a token written by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return &token, nil
}

// SaveToken writes token as JSON readable only by the owner.
func SaveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}
