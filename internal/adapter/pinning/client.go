// Package pinning talks to an IPFS pinning service. Uploads go to the
// provider's add endpoint with a static API key; downloads are plain GETs
// against a public gateway.
package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"visionland/config"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.ContentStorage against a pinning service.
type Client struct {
	endpoint    string
	apiKey      string
	gatewayHost string
	httpClient  HTTPClient
	log         zerolog.Logger
}

// NewClient creates a pinning-service client.
func NewClient(cfg config.PinningConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		endpoint:    cfg.Endpoint,
		apiKey:      cfg.APIKey,
		gatewayHost: cfg.GatewayHost,
		httpClient:  httpClient,
		log:         log,
	}
}

// addResponse is the provider's upload response shape.
type addResponse struct {
	Name string `json:"Name"`
	Hash string `json:"Hash"`
}

// Upload pins data with the provider and returns the content identifier.
// Every call produces storage usage; identical payloads are not
// de-duplicated.
func (c *Client) Upload(ctx context.Context, data []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/v0/add", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("pinning upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pinning upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("pinning upload: provider returned %d", resp.StatusCode)
	}

	var out addResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("pinning upload response: %w", err)
	}
	if out.Hash == "" {
		return "", fmt.Errorf("pinning upload: provider returned empty hash")
	}

	c.log.Debug().Str("cid", out.Hash).Str("name", out.Name).Msg("payload pinned")
	return out.Hash, nil
}

// Download fetches the bytes behind a content identifier from the public
// gateway.
func (c *Client) Download(ctx context.Context, contentID string) ([]byte, error) {
	url := fmt.Sprintf("https://%s/ipfs/%s", c.gatewayHost, contentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("pinning download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pinning download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pinning download: gateway returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pinning download body: %w", err)
	}
	return data, nil
}
