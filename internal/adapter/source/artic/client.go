package artic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gallery/internal/domain"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "gallery/dev"

	endpointArtworks = "artworks"
	endpointByIDs    = "artworks_by_ids"
)

// Client implements domain.CatalogClient for the Art Institute of Chicago API
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new catalog API client
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: defaultUserAgent,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs a GET against the catalog and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, endpoint, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if query != nil {
		reqURL = reqURL + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("catalog request", "url", reqURL)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	catalogRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		catalogRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		catalogErrorsTotal.WithLabelValues(errorClassNetwork).Inc()
		c.logger.Error("catalog request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	catalogRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		catalogErrorsTotal.WithLabelValues(errorClassNetwork).Inc()
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrFetchFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		catalogErrorsTotal.WithLabelValues(errorClassStatus).Inc()
		c.logger.Error("catalog request error", "status", resp.StatusCode, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}

	return body, nil
}

// decode unmarshals a JSON body, counting failures as decode errors
func (c *Client) decode(body []byte, dest interface{}) error {
	if err := json.Unmarshal(body, dest); err != nil {
		catalogErrorsTotal.WithLabelValues(errorClassDecode).Inc()
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return nil
}

// GetArtworks returns one page of artworks with the fixed field projection.
// page is 1-indexed.
func (c *Client) GetArtworks(ctx context.Context, page, limit int) (*domain.Page, error) {
	if limit < 1 || limit > domain.MaxPageSize {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPageSize, limit)
	}
	if page < 1 {
		page = 1
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("fields", strings.Join(domain.ArtworkFields, ","))

	body, err := c.doRequest(ctx, endpointArtworks, "/artworks", query)
	if err != nil {
		return nil, err
	}

	var resp APIResponse
	if err := c.decode(body, &resp); err != nil {
		return nil, err
	}

	result, err := MapPage(&resp)
	if err != nil {
		catalogErrorsTotal.WithLabelValues(errorClassDecode).Inc()
		return nil, err
	}

	c.logger.Debug("fetched artworks", "page", page, "count", len(result.Artworks), "total", result.Total)
	return result, nil
}

// GetArtworksByIDs returns the artworks with the given IDs.
// Requests are split into chunks of domain.MaxPageSize IDs.
func (c *Client) GetArtworksByIDs(ctx context.Context, ids []int) ([]domain.Artwork, error) {
	var all []domain.Artwork

	for start := 0; start < len(ids); start += domain.MaxPageSize {
		end := min(start+domain.MaxPageSize, len(ids))

		parts := make([]string, 0, end-start)
		for _, id := range ids[start:end] {
			parts = append(parts, strconv.Itoa(id))
		}

		query := url.Values{}
		query.Set("ids", strings.Join(parts, ","))
		query.Set("limit", strconv.Itoa(end-start))
		query.Set("fields", strings.Join(domain.ArtworkFields, ","))

		body, err := c.doRequest(ctx, endpointByIDs, "/artworks", query)
		if err != nil {
			return nil, err
		}

		var resp IDsResponse
		if err := c.decode(body, &resp); err != nil {
			return nil, err
		}
		if resp.Data == nil {
			catalogErrorsTotal.WithLabelValues(errorClassDecode).Inc()
			return nil, fmt.Errorf("%w: missing data", domain.ErrMalformedResponse)
		}

		artworks, err := MapArtworks(*resp.Data)
		if err != nil {
			catalogErrorsTotal.WithLabelValues(errorClassDecode).Inc()
			return nil, err
		}
		all = append(all, artworks...)
	}

	return all, nil
}
