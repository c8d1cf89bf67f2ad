// Package alerts polls the marketplace notification feed for purchase
// alerts so lots get recorded even when nobody forwards the message to
// the bot by hand.
package alerts

import (
	"context"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"tg_ledger/internal/config"
	"tg_ledger/pkg/contextx"
	"tg_ledger/pkg/httpx"
	"tg_ledger/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const (
	requestTimeout = 30 * time.Second
	logFieldMaxLen = 2048
)

// Source fetches the current batch of notification texts.
type Source struct {
	client *http.Client
	url    string
}

func NewSource(cfg config.Alerts) *Source {
	var transport http.RoundTripper = httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(logFieldMaxLen),
	)

	if cfg.Token != "" {
		transport = httpx.NewAuthBearerRoundTripper(transport, staticTokenAuthenticator{token: cfg.Token})
	}

	return &Source{
		client: &http.Client{
			Transport: transport,
			Timeout:   requestTimeout,
		},
		url: cfg.URL,
	}
}

// Fetch returns the feed's current notification texts, newest included.
// The feed repeats items between calls; dedup is the caller's job.
func (s *Source) Fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alerts feed replied %s", resp.Status)
	}

	var texts []string
	if err := json.NewDecoder(resp.Body).Decode(&texts); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	logger(ctx).Debug("alerts feed fetched", "count", len(texts))

	return texts, nil
}

// staticTokenAuthenticator satisfies the bearer transport with a fixed
// API token; the feed has no refresh flow.
type staticTokenAuthenticator struct {
	token string
}

func (staticTokenAuthenticator) Authenticate(context.Context) error { return nil }

func (a staticTokenAuthenticator) BearerToken() string { return a.token }
