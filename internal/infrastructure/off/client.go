package off

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/ecoshelf/backend/internal/domain"
	"golang.org/x/time/rate"
)

// searchFields limits the search response to the fields the curation
// pipeline and list view consume.
const searchFields = "product_name,ecoscore_grade,ecoscore_score,carbon_footprint_100g," +
	"image_front_small_url,countries_tags,code,brands,nutrition_grades,packaging"

// ClientConfig holds configuration for the Open Food Facts client
type ClientConfig struct {
	BaseURL   string
	UserAgent string
	Country   string // country slug for the search endpoint, e.g. "singapore"
	PageSize  int
	Timeout   time.Duration
}

// Client handles communication with the Open Food Facts API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	country     string
	pageSize    int
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Open Food Facts API client
func NewClient(config ClientConfig) *Client {
	pageSize := config.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = "EcoShelf/1.0"
	}

	// Open Food Facts asks API consumers to stay under roughly 10 search
	// requests per minute
	limiter := rate.NewLimiter(rate.Limit(0.166), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     config.BaseURL,
		userAgent:   userAgent,
		country:     config.Country,
		pageSize:    pageSize,
		rateLimiter: limiter,
	}
}

// SetDebug toggles request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}

	return resp, nil
}

// Search queries the Open Food Facts search endpoint and returns the
// decoded product records. An empty result set is returned as an empty
// slice, not an error; curation downstream handles it.
func (c *Client) Search(ctx context.Context, query string) ([]domain.ProductRecord, error) {
	if c.debug {
		log.Printf("[OFF] Search called with query: %q", query)
	}

	endpoint := fmt.Sprintf("%s/cgi/search.pl", c.baseURL)
	params := url.Values{}
	params.Add("search_terms", query)
	params.Add("search_simple", "1")
	params.Add("action", "process")
	params.Add("json", "1")
	params.Add("fields", searchFields)
	params.Add("lang", "en")
	params.Add("page_size", fmt.Sprintf("%d", c.pageSize))
	if c.country != "" {
		params.Add("countries_tags", c.country)
	}

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[OFF] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[OFF] API error (attempt %d) - Status: %d", attempt, resp.StatusCode)
			}
			if resp.StatusCode == http.StatusNotFound {
				return nil, domain.ErrProductNotFound
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrUpstreamFailure, resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var searchResp domain.SearchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if c.debug {
			log.Printf("[OFF] Found %d products for query: %q", len(searchResp.Products), query)
		}
		return searchResp.Products, nil
	}

	return nil, lastErr
}

// GetProduct retrieves a single product by its barcode
func (c *Client) GetProduct(ctx context.Context, code string) (*domain.ProductRecord, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, url.PathEscape(code))

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrUpstreamFailure, resp.StatusCode, string(body))
	}

	var productResp domain.ProductResponse
	if err := json.NewDecoder(resp.Body).Decode(&productResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// The product API reports missing codes with status 0 in the body
	if productResp.Status != 1 || productResp.Product == nil {
		return nil, domain.ErrProductNotFound
	}

	return productResp.Product, nil
}
