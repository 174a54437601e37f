// Package crossref is a rate-limited HTTP client for the Crossref works
// API, used to retrieve candidate metadata records for DOI enrichment.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/matsen/bibtidy/internal/match"
)

const (
	// BaseURL is the Crossref REST API works endpoint.
	BaseURL = "https://api.crossref.org/works"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// RateLimit keeps well under Crossref's polite-pool allowance.
	RateLimit = 2.0

	// DefaultRows is the number of candidate records requested per search.
	DefaultRows = 5
)

// Client queries the Crossref works endpoint.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
	rows       int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithMailto sets the contact address sent in the User-Agent, which
// routes requests to Crossref's polite pool.
func WithMailto(mailto string) ClientOption {
	return func(c *Client) {
		c.mailto = mailto
	}
}

// WithRows sets the number of candidates requested per search.
func WithRows(rows int) ClientOption {
	return func(c *Client) {
		if rows > 0 {
			c.rows = rows
		}
	}
}

// NewClient creates a Crossref client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
		rows:       DefaultRows,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// userAgent identifies the client per Crossref etiquette.
func (c *Client) userAgent() string {
	if c.mailto != "" {
		return fmt.Sprintf("bibtidy/1.0 (mailto:%s)", c.mailto)
	}
	return "bibtidy/1.0"
}

// Search queries works by title (and first author surname when known)
// and returns candidate records in relevance order.
func (c *Client) Search(ctx context.Context, title string, authorSurnames []string, year string) ([]match.Candidate, error) {
	if strings.TrimSpace(title) == "" {
		return nil, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	// Braces are BibTeX markup, not title content.
	cleanTitle := strings.NewReplacer("{", "", "}", "").Replace(title)

	params := url.Values{}
	params.Set("query.title", cleanTitle)
	params.Set("rows", strconv.Itoa(c.rows))
	if len(authorSurnames) > 0 {
		params.Set("query.author", authorSurnames[0])
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "works query failed"}
	}

	var works worksResponse
	if err := json.NewDecoder(resp.Body).Decode(&works); err != nil {
		return nil, fmt.Errorf("%w: parsing works: %v", ErrInvalidResponse, err)
	}

	candidates := make([]match.Candidate, 0, len(works.Message.Items))
	for _, item := range works.Message.Items {
		candidates = append(candidates, itemToCandidate(item))
	}
	return candidates, nil
}

// itemToCandidate maps a Crossref work to a matcher candidate.
func itemToCandidate(item workItem) match.Candidate {
	var surnames []string
	for _, a := range item.Author {
		if a.Family != "" {
			surnames = append(surnames, a.Family)
		}
	}

	yearStr := ""
	if y := item.publicationYear(); y != 0 {
		yearStr = strconv.Itoa(y)
	}

	return match.Candidate{
		Title:          item.title(),
		AuthorSurnames: surnames,
		Year:           yearStr,
		ContainerTitle: item.containerTitle(),
		Volume:         item.Volume,
		Issue:          item.Issue,
		Pages:          item.Page,
		DOI:            item.DOI,
	}
}
