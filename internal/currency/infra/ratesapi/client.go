// Package ratesapi talks to a public exchange-rate endpoint of the form
// GET {baseURL}/{BASE} returning {"rates": {"USD": 0.0077, ...}}.
package ratesapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultURL = "https://api.exchangerate-api.com/v4/latest"

var ErrMalformed = errors.New("malformed rates response")

type latestResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
	attempts   int
	backoff    time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetry sets the number of attempts and the first backoff delay; the
// delay doubles after every failed attempt.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
		c.backoff = backoff
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        slog.Default(),
		attempts:   3,
		backoff:    time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Latest fetches the rate table keyed to base, retrying with exponential
// backoff.
func (c *Client) Latest(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	var lastErr error
	for i := 0; i < c.attempts; i++ {
		if i > 0 {
			delay := c.backoff * time.Duration(1<<uint(i-1))
			c.log.DebugContext(ctx, "retrying rates fetch", slog.Int("attempt", i+1), slog.Duration("delay", delay))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		rates, err := c.fetch(ctx, base)
		if err == nil {
			return rates, nil
		}
		lastErr = err
		c.log.WarnContext(ctx, "rates fetch attempt failed", slog.Int("attempt", i+1), slog.Any("err", err))
		if errors.Is(err, ErrMalformed) {
			break
		}
	}
	return nil, lastErr
}

func (c *Client) fetch(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	url := c.baseURL + "/" + strings.ToUpper(base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var data latestResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(data.Rates) == 0 {
		return nil, fmt.Errorf("%w: no rates", ErrMalformed)
	}

	out := make(map[string]decimal.Decimal, len(data.Rates))
	for code, rate := range data.Rates {
		out[strings.ToUpper(code)] = rate
	}
	return out, nil
}
