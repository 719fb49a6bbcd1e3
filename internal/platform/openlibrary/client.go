package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bookagent/internal/metrics"
	"bookagent/internal/normalize"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://openlibrary.org"
	DefaultUserAgent = "BookAgent/1.0 (+https://github.com/bookagent)"

	// EditionsLimit bounds the editions fetched for one work.
	EditionsLimit = 15
)

// Freshness hints per fetch class, sent upstream as Cache-Control.
const (
	searchFreshness   time.Duration = 0
	workFreshness                   = time.Hour
	editionsFreshness               = 30 * time.Minute
	authorFreshness                 = 24 * time.Hour
)

// Doer is the part of *http.Client the catalog client needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// RPS caps outbound requests per second; zero disables throttling.
	RPS int
	// HTTPClient overrides the default client, mostly for tests.
	HTTPClient Doer
}

type Client struct {
	httpClient Doer
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(opts Options) *Client {
	c := &Client{
		httpClient: opts.HTTPClient,
		userAgent:  opts.UserAgent,
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
	}
	if c.httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		c.httpClient = &http.Client{Timeout: timeout}
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if opts.RPS > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Second/time.Duration(opts.RPS)), 1)
	}
	return c
}

// StatusError reports a non-2xx answer from Open Library.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openlibrary: unexpected status code %d for %s", e.StatusCode, e.URL)
}

// Search runs one search.json query. page and limit must already be clamped.
func (c *Client) Search(ctx context.Context, query string, page, limit int) (*SearchResponse, error) {
	u := normalize.SearchURL(c.baseURL, query, page, limit)

	var res SearchResponse
	if err := c.get(ctx, "search", u, searchFreshness, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetWork loads a work record, e.g. workKey "works/OL45804W".
func (c *Client) GetWork(ctx context.Context, workKey string) (*Work, error) {
	u := fmt.Sprintf("%s/%s.json", c.baseURL, escapeKey(workKey))

	var res Work
	if err := c.get(ctx, "work", u, workFreshness, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetEditions loads the first EditionsLimit editions of a work.
func (c *Client) GetEditions(ctx context.Context, workKey string) ([]Edition, error) {
	u := fmt.Sprintf("%s/%s/editions.json?limit=%d", c.baseURL, escapeKey(workKey), EditionsLimit)

	var res EditionsResponse
	if err := c.get(ctx, "editions", u, editionsFreshness, &res); err != nil {
		return nil, err
	}
	return res.Entries, nil
}

// GetAuthor loads an author record. authorKey is usually "/authors/OL..." but a
// bare "OL..." id is accepted too.
func (c *Client) GetAuthor(ctx context.Context, authorKey string) (*AuthorDetails, error) {
	key := normalize.TrimKey(authorKey)
	if !strings.HasPrefix(key, "authors/") {
		key = "authors/" + key
	}
	u := fmt.Sprintf("%s/%s.json", c.baseURL, escapeKey(key))

	var res AuthorDetails
	if err := c.get(ctx, "author", u, authorFreshness, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) get(ctx context.Context, endpoint, url string, freshness time.Duration, target interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", cacheControl(freshness))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("openlibrary %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("openlibrary %s: decode: %w", endpoint, err)
	}
	return nil
}

func cacheControl(freshness time.Duration) string {
	if freshness <= 0 {
		return "no-cache"
	}
	return fmt.Sprintf("max-age=%d", int(freshness.Seconds()))
}

func escapeKey(key string) string {
	parts := strings.Split(normalize.TrimKey(key), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
