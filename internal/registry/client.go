// Package registry queries the npm registry for package versions.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	oerrors "github.com/cepress/cli/internal/errors"
)

// DefaultURL is the public npm registry.
const DefaultURL = "https://registry.npmjs.org"

const userAgent = "cepress-cli"

// latestResponse is the subset of the dist-tag document cepress reads.
type latestResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Client looks up the latest published version of npm packages.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the registry at baseURL.
// A nil client gets a 10 second timeout.
func NewClient(baseURL string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Latest returns the caret range for the latest version of pkg, for example
// "^4.18.2". Network failures and non-2xx responses wrap ErrConnectivity.
func (c *Client) Latest(ctx context.Context, pkg string) (string, error) {
	url := fmt.Sprintf("%s/%s/latest", c.baseURL, pkg)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("registry: create request for %s: %w", pkg, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("registry: %s: %w: %w", pkg, oerrors.ErrConnectivity, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("registry: %s: %w: unexpected status %d", pkg, oerrors.ErrConnectivity, resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("registry: decode %s: %w", pkg, err)
	}
	if body.Version == "" {
		return "", fmt.Errorf("registry: %s: response has no version", pkg)
	}

	return "^" + body.Version, nil
}
