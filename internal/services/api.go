// Raw HTTP client for a running relay
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/desertthunder/nowplaying/internal/shared"
)

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// OK reports whether the status is 2xx.
func (r *APIResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func readAPIResponse(resp *http.Response) (*APIResponse, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	var jsonData any
	if len(body) > 0 {
		if err := json.Unmarshal(body, &jsonData); err == nil {
			apiResp.IsJSON = true
			apiResp.JSONData = jsonData
		}
	}

	return apiResp, nil
}

// RelayClient makes raw HTTP requests to a running relay.
type RelayClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRelayClient creates a new client for the relay at baseURL.
//
// Redirects are not followed so the /login Location can be inspected.
func NewRelayClient(baseURL string, client *http.Client) *RelayClient {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:3000"
	}
	if client == nil {
		client = &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}

	return &RelayClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
	}
}

// BaseURL returns the relay's base URL.
func (c *RelayClient) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request to the specified path and returns the raw response.
func (c *RelayClient) Get(ctx context.Context, path string) (*APIResponse, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	return readAPIResponse(resp)
}

// NowPlaying fetches /currently-playing from the relay.
func (c *RelayClient) NowPlaying(ctx context.Context) (*APIResponse, error) {
	return c.Get(ctx, "/currently-playing")
}
