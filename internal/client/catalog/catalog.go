// Package catalog is a read-only client for the OMDb movie database.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/moviekeeper/internal/client/models"
)

// ErrCatalog is returned when OMDb answers with Response "False".
var ErrCatalog = errors.New("catalog error")

// PageSize is the number of results OMDb returns per search page.
const PageSize = 10

// PopularSearches are sampled by GetPopularMovies.
var PopularSearches = []string{"avengers", "batman", "star wars", "marvel", "disney"}

// Catalog is what the shell needs from a movie database.
type Catalog interface {
	SearchMovies(ctx context.Context, query string, page int) (SearchResult, error)
	GetMovieByID(ctx context.Context, id string) (models.MovieDetail, error)
	GetPopularMovies(ctx context.Context) (SearchResult, error)
	SearchMoviesByYear(ctx context.Context, year, query string) (SearchResult, error)
}

// SearchResult is one page of search hits.
type SearchResult struct {
	Movies []models.Movie
	Total  int
}

// HasMore reports whether pages after page exist.
func (r SearchResult) HasMore(page int) bool {
	return page*PageSize < r.Total
}

// Config holds client configuration.
type Config struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type cachedDetail struct {
	detail    models.MovieDetail
	fetchedAt time.Time
}

// Client talks to OMDb over HTTP. Lookups by id are cached for CacheTTL.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cacheTTL   time.Duration

	mu    sync.RWMutex
	cache map[string]cachedDetail

	now  func() time.Time
	pick func(n int) int
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithPicker replaces the random choice used by GetPopularMovies.
func WithPicker(pick func(n int) int) Option {
	return func(c *Client) { c.pick = pick }
}

// WithClock replaces time.Now for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a Client.
func New(cfg Config, opts ...Option) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 5 * time.Minute
	}

	c := &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cacheTTL:   cfg.CacheTTL,
		cache:      make(map[string]cachedDetail),
		now:        time.Now,
		pick:       rand.IntN,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SearchMovies searches movie titles. Pages start at 1.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (SearchResult, error) {
	if page < 1 {
		page = 1
	}
	return c.search(ctx, url.Values{
		"s":    {query},
		"page": {strconv.Itoa(page)},
		"type": {"movie"},
	})
}

// GetPopularMovies runs one of PopularSearches picked at random.
func (c *Client) GetPopularMovies(ctx context.Context) (SearchResult, error) {
	term := PopularSearches[c.pick(len(PopularSearches))]
	return c.search(ctx, url.Values{
		"s":    {term},
		"type": {"movie"},
	})
}

// SearchMoviesByYear searches titles released in year. An empty query
// searches for "movie".
func (c *Client) SearchMoviesByYear(ctx context.Context, year, query string) (SearchResult, error) {
	if query == "" {
		query = "movie"
	}
	return c.search(ctx, url.Values{
		"s":    {query},
		"y":    {year},
		"type": {"movie"},
	})
}

// GetMovieByID fetches the full record of an IMDb id.
func (c *Client) GetMovieByID(ctx context.Context, id string) (models.MovieDetail, error) {
	c.mu.RLock()
	if cached, ok := c.cache[id]; ok && c.now().Sub(cached.fetchedAt) < c.cacheTTL {
		c.mu.RUnlock()
		return cached.detail, nil
	}
	c.mu.RUnlock()

	var resp struct {
		models.MovieDetail
		envelope
	}
	if err := c.get(ctx, url.Values{"i": {id}, "plot": {"full"}}, &resp); err != nil {
		return models.MovieDetail{}, err
	}
	if err := resp.envelope.err(); err != nil {
		return models.MovieDetail{}, err
	}

	c.mu.Lock()
	c.cache[id] = cachedDetail{detail: resp.MovieDetail, fetchedAt: c.now()}
	c.mu.Unlock()

	return resp.MovieDetail, nil
}

type envelope struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

func (e envelope) err() error {
	if e.Response == "False" || e.Error != "" {
		return fmt.Errorf("%w: %s", ErrCatalog, e.Error)
	}
	return nil
}

func (c *Client) search(ctx context.Context, q url.Values) (SearchResult, error) {
	var resp struct {
		envelope
		Search       []models.Movie `json:"Search"`
		TotalResults string         `json:"totalResults"`
	}
	if err := c.get(ctx, q, &resp); err != nil {
		return SearchResult{}, err
	}
	if err := resp.envelope.err(); err != nil {
		return SearchResult{}, err
	}

	res := SearchResult{Movies: resp.Search}
	if resp.TotalResults != "" {
		total, err := strconv.Atoi(resp.TotalResults)
		if err != nil {
			return SearchResult{}, fmt.Errorf("invalid totalResults %q: %w", resp.TotalResults, err)
		}
		res.Total = total
	}
	if res.Movies == nil {
		res.Movies = []models.Movie{}
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, q url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid catalog url: %w", err)
	}
	q.Set("apikey", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("catalog request failed: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return nil
}
