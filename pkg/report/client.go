package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/teamwallet/teamwallet/pkg/config"
	"github.com/teamwallet/teamwallet/pkg/version"
)

// ErrDisabled is returned when no report service is configured.
var ErrDisabled = errors.New("report service disabled")

// httpClient is an HTTP client that only speaks to the configured endpoint
// and never follows redirects.
var httpClient = &http.Client{
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	},
	CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

type client struct {
	url     string
	apiKey  string
	timeout time.Duration
}

var _ Client = (*client)(nil)

// NewClient returns a report client for the configured service. An empty
// URL yields a disabled client whose calls return ErrDisabled.
func NewClient(cfg *config.Config) Client {
	return &client{
		url:     cfg.Report.URL,
		apiKey:  cfg.Report.APIKey,
		timeout: time.Duration(cfg.Report.Timeout) * time.Second,
	}
}

// Enabled implements Client.
func (c *client) Enabled() bool {
	return c.url != ""
}

// Summarize implements Client.
func (c *client) Summarize(ctx context.Context, req SummaryRequest) (string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(req); err != nil {
		return "", err //nolint:wrapcheck
	}

	body, err := c.do(ctx, "/v1/summarize", "application/json", &buf)
	if err != nil {
		return "", err
	}

	var res struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", err //nolint:wrapcheck
	}

	return res.Summary, nil
}

// ScanReceipt implements Client.
func (c *client) ScanReceipt(ctx context.Context, image []byte) (Receipt, error) {
	body, err := c.do(ctx, "/v1/scan", "application/octet-stream", bytes.NewReader(image))
	if err != nil {
		return Receipt{}, err
	}

	var receipt Receipt
	if err := json.Unmarshal(body, &receipt); err != nil {
		return Receipt{}, err //nolint:wrapcheck
	}

	return receipt, nil
}

// do posts to the report service.
// The response body is read in full and the connection closed.
func (c *client) do(ctx context.Context, path, contentType string, body io.Reader) ([]byte, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+path, body)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", "TeamWallet/"+version.Version)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	defer res.Body.Close() // nolint: errcheck

	data, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("report service returned %d", res.StatusCode)
	}

	return data, nil
}
