package census

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/srharri3/pumsflow/internal/common"
	"github.com/srharri3/pumsflow/internal/model"
	"github.com/srharri3/pumsflow/internal/service"
)

// Client talks to the Census API over HTTP. The zero key is fine for
// light use; the API only enforces keys past its anonymous quota.
type Client struct {
	host       string
	apiKey     string
	httpClient *http.Client
}

// variable is the shape of a variables endpoint document. Only the
// code dictionary is consumed.
type variable struct {
	Label  string `json:"label"`
	Values struct {
		Item map[string]string `json:"item"`
	} `json:"values"`
}

// DefaultTimeout bounds every request; a hung API call never blocks the
// pipeline indefinitely.
const DefaultTimeout = 30 * time.Second

// NewClient creates a Census API client. An empty host selects the
// public API root.
func NewClient(host, apiKey string) *Client {
	if host == "" {
		host = DefaultHost
	}
	return &Client{
		host:   host,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

// Rows fetches the microdata table for a query spec. The response
// comes back exactly as sent: rows of strings with row 0 holding the
// header labels. No retry happens here; transient failures surface to
// the caller immediately.
func (c *Client) Rows(ctx context.Context, spec model.QuerySpec) (*model.RawTable, error) {
	requestURL := DataURL(c.host, c.apiKey, spec)

	slog.Debug("Requesting PUMS rows",
		"year", spec.Year,
		"url", DataURL(c.host, "", spec))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("census API: %w", common.ErrRateLimit)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("census API error: %d - %s", resp.StatusCode, string(body))
	}

	var rows [][]string
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return model.NewRawTable(rows), nil
}

// Dictionary fetches the code to label map for one variable in one
// survey year.
func (c *Client) Dictionary(ctx context.Context, varName string, year int) (map[string]string, error) {
	requestURL := DictionaryURL(c.host, varName, year)

	slog.Debug("Requesting PUMS dictionary", "variable", varName, "year", year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dictionary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("variable %s has no %d dictionary: %w", varName, year, common.ErrNotFound)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("census API: %w", common.ErrRateLimit)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("census API error: %d - %s", resp.StatusCode, string(body))
	}

	var v variable
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary: %w", err)
	}
	if len(v.Values.Item) == 0 {
		return nil, fmt.Errorf("variable %s publishes no value codes: %w", varName, common.ErrNotFound)
	}

	return v.Values.Item, nil
}

// Ensure Client implements the fetcher interfaces.
var (
	_ service.RowsFetcher       = (*Client)(nil)
	_ service.DictionaryFetcher = (*Client)(nil)
)
