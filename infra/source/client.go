package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Some municipal endpoints reject requests without a browser user agent.
const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

// Config defines the schedule endpoint and the address line to select.
type Config struct {
	URL            string `json:"url"`
	AddressCode    string `json:"address_code"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	UserAgent      string `json:"user_agent"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("source url is required")
	}
	if c.AddressCode == "" {
		return fmt.Errorf("source address_code is required")
	}
	return nil
}

// Client fetches the raw schedule text over HTTP.
type Client struct {
	url       string
	userAgent string
	http      *http.Client
}

// NewClient builds a Client from the configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		url:       cfg.URL,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

// Fetch retrieves the schedule body as text. Non-2xx responses are errors and
// include a body excerpt for diagnostics.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch schedule: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, excerpt(body))
	}
	return string(body), nil
}

func excerpt(b []byte) string {
	const max = 200
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
