// Package spacex talks to the public SpaceX v4 REST API.
package spacex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MrSnakeDoc/launchdeck/internal/domain"
	"github.com/MrSnakeDoc/launchdeck/internal/version"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public v4 endpoint.
const DefaultBaseURL = "https://api.spacexdata.com/v4"

// maxBody caps how much of a response is read. The full launch list is a
// few megabytes.
const maxBody = 32 << 20

// Config configures a Client. Zero values fall back to sane defaults.
type Config struct {
	BaseURL string
	Timeout time.Duration
	RPS     float64 // requests per second, 0 disables limiting
	Burst   int
}

// Client fetches launch records. Every failure it returns is a
// *domain.Error of kind TransportError.
type Client struct {
	baseURL string
	limiter *rate.Limiter

	// HTTPClient can be swapped in tests.
	HTTPClient *http.Client
}

// NewClient builds a client from cfg.
func NewClient(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: base,
		limiter: newLimiter(cfg.RPS, cfg.Burst),
		HTTPClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				MaxIdleConns:    10,
				IdleConnTimeout: 30 * time.Second,
			},
		},
	}
}

// Launches returns every launch record.
func (c *Client) Launches(ctx context.Context) ([]domain.Launch, error) {
	var launches []domain.Launch
	if err := c.get(ctx, "spacex.Launches", "/launches", &launches); err != nil {
		return nil, err
	}
	if launches == nil {
		launches = []domain.Launch{}
	}
	return launches, nil
}

// Launch returns the launch with id.
func (c *Client) Launch(ctx context.Context, id string) (domain.Launch, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Launch{}, domain.NewError(domain.TransportError, "spacex.Launch", errors.New("empty launch id"))
	}
	var l domain.Launch
	err := c.get(ctx, "spacex.Launch", "/launches/"+url.PathEscape(id), &l)
	return l, err
}

// Next returns the API's notion of the next launch.
func (c *Client) Next(ctx context.Context) (domain.Launch, error) {
	var l domain.Launch
	err := c.get(ctx, "spacex.Next", "/launches/next", &l)
	return l, err
}

// Latest returns the API's notion of the latest launch.
func (c *Client) Latest(ctx context.Context) (domain.Launch, error) {
	var l domain.Launch
	err := c.get(ctx, "spacex.Latest", "/launches/latest", &l)
	return l, err
}

func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

func (c *Client) get(ctx context.Context, op, path string, dst any) error {
	fail := func(err error) error {
		return domain.NewError(domain.TransportError, op, err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fail(fmt.Errorf("rate limiter: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fail(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fail(fmt.Errorf("execute request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fail(fmt.Errorf("API returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(dst); err != nil {
		return fail(fmt.Errorf("decode JSON: %w", err))
	}
	return nil
}
