package chain

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"visionland/config"
	"visionland/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeRPC(t *testing.T, chainIDCalls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     int64  `json:"id"`
			Method string `json:"method"`
			Params []any  `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		var result string
		switch req.Method {
		case "eth_chainId":
			chainIDCalls.Add(1)
			result = "0x13a" // 314, Filecoin mainnet
		case "eth_getBalance":
			require.Len(t, req.Params, 2)
			result = "0xde0b6b3a7640000" // 1e18
		default:
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  result,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(url string) *Client {
	log := logger.NewWithWriter("error", io.Discard)
	return NewClient(config.ChainConfig{RPCURL: url}, http.DefaultClient, log)
}

func TestClient_ChainID(t *testing.T) {
	var calls atomic.Int32
	srv := fakeRPC(t, &calls)
	c := newTestClient(srv.URL)

	id, err := c.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(314), id)
}

func TestClient_ChainIDCachedUntilDisconnect(t *testing.T) {
	var calls atomic.Int32
	srv := fakeRPC(t, &calls)
	c := newTestClient(srv.URL)
	ctx := context.Background()

	_, err := c.ChainID(ctx)
	require.NoError(t, err)
	_, err = c.ChainID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())

	c.Disconnect()

	_, err = c.ChainID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_BalanceAt(t *testing.T) {
	var calls atomic.Int32
	srv := fakeRPC(t, &calls)
	c := newTestClient(srv.URL)

	bal, err := c.BalanceAt(context.Background(), "0xabc")
	require.NoError(t, err)

	want, _ := new(big.Int).SetString("de0b6b3a7640000", 16)
	assert.Equal(t, want, bal)
}

func TestClient_RPCError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      1,
			"error":   map[string]any{"code": -32601, "message": "method not found"},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.BalanceAt(context.Background(), "0xabc")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "method not found")
}

func TestClient_SignMessageDeterministic(t *testing.T) {
	c := newTestClient("http://unused")

	a, err := c.SignMessage(context.Background(), "challenge-1")
	require.NoError(t, err)
	b, err := c.SignMessage(context.Background(), "challenge-1")
	require.NoError(t, err)
	other, err := c.SignMessage(context.Background(), "challenge-2")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, other)
	assert.Regexp(t, `^0x[0-9a-f]{64}$`, a)
}

func TestParseQuantity(t *testing.T) {
	v, err := parseQuantity("0x0")
	require.NoError(t, err)
	// Compare by value: big.Int internals differ between constructions.
	assert.Zero(t, v.Cmp(big.NewInt(0)))

	v, err = parseQuantity("0xde0b6b3a7640000")
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", v.String())

	_, err = parseQuantity("0x")
	assert.Error(t, err)

	_, err = parseQuantity("0xzz")
	assert.Error(t, err)
}
