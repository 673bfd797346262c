// Package github provides the remote data client for the Revo documentation
// site, reading releases and troubleshooting issues from the GitHub REST API
// through the two-tier cache.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/revoapp/revodoc"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultBaseURL is the GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

// Default repository the documentation site reads from.
const (
	DefaultOwner = "revoapp"
	DefaultRepo  = "revo"
)

// acceptHeader requests the structured API media type.
const acceptHeader = "application/vnd.github+json"

// releasesPerPage and issuesPerPage fix the page sizes the site renders.
const (
	releasesPerPage = 10
	issuesPerPage   = 50
)

// Ensure Client implements revodoc.DataClient at compile time.
var _ revodoc.DataClient = (*Client)(nil)

// Client retrieves release and issue data over unauthenticated HTTP GET
// requests, consulting the cache store before and after each network call.
// Failures never escape this boundary: callers receive data or nothing plus
// a revodoc.FetchOutcome.
type Client struct {
	httpClient *http.Client
	baseURL    string
	owner      string
	repo       string
	cache      revodoc.CacheStore
	limiter    *rate.Limiter
	logger     *slog.Logger
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root. Used by tests to point the client at a
// local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRepo overrides the owner/repo the client reads from.
func WithRepo(owner, repo string) Option {
	return func(c *Client) {
		c.owner = owner
		c.repo = repo
	}
}

// WithLimiter overrides the client-side rate limiter. The default allows one
// request per second with no bursting, which keeps a busy session well under
// the unauthenticated API quota.
func WithLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// WithLogger sets the logger for fetch failures and fallbacks.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a Client over the given cache store.
func NewClient(cache revodoc.CacheStore, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		owner:   DefaultOwner,
		repo:    DefaultRepo,
		cache:   cache,
		limiter: rate.NewLimiter(rate.Limit(1), 1),
		logger:  slog.Default(),
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c
}

// FetchJSON retrieves the JSON payload for requestURL. With useCache set, a
// fresh cache entry short-circuits the network call and the response is
// written through to the cache. On any failure (transport, non-2xx status,
// invalid JSON) the durable cache entry for the URL is served regardless of
// staleness; with no entry the result is nil with ServedNone.
func (c *Client) FetchJSON(ctx context.Context, requestURL string, useCache bool) (json.RawMessage, revodoc.FetchOutcome) {
	return c.fetchJSON(ctx, requestURL, useCache, useCache)
}

// fetchJSON separates the read and write sides of the cache so a refresh can
// skip the fresh-cache check while still rewriting both tiers on success.
func (c *Client) fetchJSON(ctx context.Context, requestURL string, readCache, writeCache bool) (json.RawMessage, revodoc.FetchOutcome) {
	if readCache {
		if entry, ok := c.cache.Get(ctx, requestURL); ok {
			return entry.Data, revodoc.ServedCached
		}
	}

	data, err := c.get(ctx, requestURL)
	if err != nil {
		c.logger.Warn("fetch failed", "url", requestURL, "err", err)
		if entry, ok := c.cache.GetDurable(ctx, requestURL); ok {
			c.logger.Info("serving cached fallback entry", "url", requestURL, "age", entry.Age(time.Now()).Round(time.Second))
			return entry.Data, revodoc.ServedStale
		}
		return nil, revodoc.ServedNone
	}

	if writeCache {
		c.cache.Set(ctx, requestURL, data)
	}
	return data, revodoc.ServedFresh
}

// get performs the HTTP GET and validates the payload.
func (c *Client) get(ctx context.Context, requestURL string) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, requestURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("invalid JSON from %s", requestURL)
	}

	return body, nil
}

// ReleasesURL returns the releases endpoint URL for the configured repo.
func (c *Client) ReleasesURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/releases?per_page=%d", c.baseURL, c.owner, c.repo, releasesPerPage)
}

// IssuesURL returns the issues endpoint URL for the configured repo and
// label filter.
func (c *Client) IssuesURL(labels []string) string {
	query := url.Values{}
	if len(labels) > 0 {
		query.Set("labels", strings.Join(labels, ","))
	}
	query.Set("per_page", fmt.Sprint(issuesPerPage))
	return fmt.Sprintf("%s/repos/%s/%s/issues?%s", c.baseURL, c.owner, c.repo, query.Encode())
}

// Releases returns the most recent releases for the configured repo.
func (c *Client) Releases(ctx context.Context) ([]*revodoc.Release, revodoc.FetchOutcome) {
	return c.releases(ctx, true)
}

// RefreshReleases is like Releases but bypasses the fresh-cache check,
// always hitting the network before falling back. A successful refresh
// still writes through to both cache tiers.
func (c *Client) RefreshReleases(ctx context.Context) ([]*revodoc.Release, revodoc.FetchOutcome) {
	return c.releases(ctx, false)
}

func (c *Client) releases(ctx context.Context, readCache bool) ([]*revodoc.Release, revodoc.FetchOutcome) {
	data, outcome := c.fetchJSON(ctx, c.ReleasesURL(), readCache, true)
	if outcome == revodoc.ServedNone {
		return nil, outcome
	}

	var releases []*revodoc.Release
	if err := json.Unmarshal(data, &releases); err != nil {
		c.logger.Warn("failed to decode releases payload", "err", err)
		return nil, revodoc.ServedNone
	}
	return releases, outcome
}

// TroubleshootingIssues returns issues carrying all of the given labels.
func (c *Client) TroubleshootingIssues(ctx context.Context, labels []string) ([]*revodoc.Issue, revodoc.FetchOutcome) {
	return c.issues(ctx, labels, true)
}

// RefreshTroubleshootingIssues is like TroubleshootingIssues but bypasses
// the fresh-cache check. A successful refresh still writes through to both
// cache tiers.
func (c *Client) RefreshTroubleshootingIssues(ctx context.Context, labels []string) ([]*revodoc.Issue, revodoc.FetchOutcome) {
	return c.issues(ctx, labels, false)
}

func (c *Client) issues(ctx context.Context, labels []string, readCache bool) ([]*revodoc.Issue, revodoc.FetchOutcome) {
	data, outcome := c.fetchJSON(ctx, c.IssuesURL(labels), readCache, true)
	if outcome == revodoc.ServedNone {
		return nil, outcome
	}

	var issues []*revodoc.Issue
	if err := json.Unmarshal(data, &issues); err != nil {
		c.logger.Warn("failed to decode issues payload", "err", err)
		return nil, revodoc.ServedNone
	}
	return issues, outcome
}
