// Package chain is a read-only projection over a wallet-connected JSON-RPC
// endpoint. It reads chain id and balances and signs provider challenges for
// the piece-storage adapter; no transaction submission exists.
package chain

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"visionland/config"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.ChainReader. Constructed explicitly at composition
// time with a defined lifecycle: build once, Disconnect to tear down.
type Client struct {
	rpcURL     string
	httpClient HTTPClient
	log        zerolog.Logger

	reqID atomic.Int64

	mu      sync.Mutex
	chainID *big.Int // cached after first read, cleared on Disconnect
}

// NewClient creates a chain RPC client.
func NewClient(cfg config.ChainConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		rpcURL:     cfg.RPCURL,
		httpClient: httpClient,
		log:        log,
	}
}

// ChainID returns the connected network's chain id. The value is cached for
// the session lifetime.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	c.mu.Lock()
	if c.chainID != nil {
		id := new(big.Int).Set(c.chainID)
		c.mu.Unlock()
		return id, nil
	}
	c.mu.Unlock()

	result, err := c.call(ctx, "eth_chainId")
	if err != nil {
		return nil, err
	}
	id, err := parseQuantity(result)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}

	c.mu.Lock()
	c.chainID = new(big.Int).Set(id)
	c.mu.Unlock()
	return id, nil
}

// BalanceAt returns the latest balance of address in the smallest unit.
func (c *Client) BalanceAt(ctx context.Context, address string) (*big.Int, error) {
	result, err := c.call(ctx, "eth_getBalance", address, "latest")
	if err != nil {
		return nil, err
	}
	bal, err := parseQuantity(result)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}
	return bal, nil
}

// SignMessage produces a demo signature over message. It is derived from the
// message alone, not from any keypair, and verifies nothing.
func (c *Client) SignMessage(ctx context.Context, message string) (string, error) {
	sum := sha256.Sum256([]byte(message))
	return "0x" + hex.EncodeToString(sum[:]), nil
}

// Disconnect tears the session down: the cached chain id is dropped so a
// later reconnect re-reads it. Never forces a process restart.
func (c *Client) Disconnect() {
	c.mu.Lock()
	c.chainID = nil
	c.mu.Unlock()
	c.log.Info().Msg("chain session disconnected")
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result string `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params ...any) (string, error) {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.reqID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return "", fmt.Errorf("rpc marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("rpc %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("rpc %s: endpoint returned %d", method, resp.StatusCode)
	}

	var out rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("rpc %s response: %w", method, err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("rpc %s: %s (code %d)", method, out.Error.Message, out.Error.Code)
	}
	return out.Result, nil
}

// parseQuantity decodes a 0x-prefixed hex quantity.
func parseQuantity(s string) (*big.Int, error) {
	hexPart := strings.TrimPrefix(s, "0x")
	if hexPart == "" {
		return nil, fmt.Errorf("empty quantity %q", s)
	}
	v, ok := new(big.Int).SetString(hexPart, 16)
	if !ok {
		return nil, fmt.Errorf("malformed quantity %q", s)
	}
	return v, nil
}
