// Package pieces talks to a piece-storage provider (Filecoin-style
// addressing). Uploads and downloads are authenticated by a session token
// obtained once per process by signing a provider challenge.
package pieces

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"visionland/config"
	"visionland/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// MessageSigner signs the provider's authentication challenge.
type MessageSigner interface {
	SignMessage(ctx context.Context, message string) (string, error)
}

// Client implements ports.ContentStorage against a piece-storage provider.
// Construct once at composition time; the session is established lazily on
// first use and shared read-only by all subsequent calls.
type Client struct {
	endpoint   string
	signer     MessageSigner
	httpClient HTTPClient
	log        zerolog.Logger

	sessionOnce  sync.Once
	sessionToken string
	sessionErr   error
}

// NewClient creates a piece-storage client. signer may be nil, in which case
// every call fails with ports.ErrNoSigner.
func NewClient(cfg config.PiecesConfig, signer MessageSigner, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		endpoint:   cfg.Endpoint,
		signer:     signer,
		httpClient: httpClient,
		log:        log,
	}
}

// Upload stores data with the provider and returns the piece identifier.
// Fire-and-forget: no retry, no chunking, no integrity verification.
func (c *Client) Upload(ctx context.Context, data []byte) (string, error) {
	token, err := c.session(ctx)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/pieces", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("pieces upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pieces upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("pieces upload: provider returned %d", resp.StatusCode)
	}

	var out struct {
		PieceCid string `json:"pieceCid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("pieces upload response: %w", err)
	}
	if out.PieceCid == "" {
		return "", fmt.Errorf("pieces upload: provider returned empty piece cid")
	}

	c.log.Debug().Str("piece_cid", out.PieceCid).Int("bytes", len(data)).Msg("piece uploaded")
	return out.PieceCid, nil
}

// Download fetches the bytes stored under the piece identifier. The caller
// deserializes them.
func (c *Client) Download(ctx context.Context, contentID string) ([]byte, error) {
	token, err := c.session(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/pieces/"+contentID, nil)
	if err != nil {
		return nil, fmt.Errorf("pieces download request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pieces download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pieces download: provider returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pieces download body: %w", err)
	}
	return data, nil
}

// session establishes the provider session at most once per process.
func (c *Client) session(ctx context.Context) (string, error) {
	if c.signer == nil {
		return "", ports.ErrNoSigner
	}

	c.sessionOnce.Do(func() {
		c.sessionToken, c.sessionErr = c.authenticate(ctx)
		if c.sessionErr == nil {
			c.log.Info().Msg("piece-storage session established")
		}
	})
	return c.sessionToken, c.sessionErr
}

func (c *Client) authenticate(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/auth/challenge", nil)
	if err != nil {
		return "", fmt.Errorf("pieces challenge request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pieces challenge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("pieces challenge: provider returned %d", resp.StatusCode)
	}

	var challenge struct {
		Challenge string `json:"challenge"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&challenge); err != nil {
		return "", fmt.Errorf("pieces challenge response: %w", err)
	}

	signature, err := c.signer.SignMessage(ctx, challenge.Challenge)
	if err != nil {
		return "", fmt.Errorf("signing challenge: %w", err)
	}

	body, _ := json.Marshal(map[string]string{
		"challenge": challenge.Challenge,
		"signature": signature,
	})
	req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/auth/session", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("pieces session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err = c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pieces session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("pieces session: provider returned %d", resp.StatusCode)
	}

	var session struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("pieces session response: %w", err)
	}
	return session.Token, nil
}
