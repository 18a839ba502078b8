package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// fakePiecesProvider emulates the piece-storage provider: challenge/session
// authentication plus piece upload and download.
type fakePiecesProvider struct {
	mu     sync.Mutex
	pieces map[string][]byte
	nextID int
}

func newFakePiecesProvider() (*fakePiecesProvider, *httptest.Server) {
	p := &fakePiecesProvider{pieces: make(map[string][]byte)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/challenge", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"challenge": "prove-it"})
	})
	mux.HandleFunc("POST /auth/session", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Challenge string `json:"challenge"`
			Signature string `json:"signature"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Signature == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "session-token"})
	})
	mux.HandleFunc("POST /pieces", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer session-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		data, _ := io.ReadAll(r.Body)
		p.mu.Lock()
		p.nextID++
		cid := fmt.Sprintf("piece-%04d", p.nextID)
		p.pieces[cid] = data
		p.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]string{"pieceCid": cid})
	})
	mux.HandleFunc("GET /pieces/{cid}", func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		data, ok := p.pieces[r.PathValue("cid")]
		p.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(data)
	})

	return p, httptest.NewServer(mux)
}

// stubSigner produces deterministic fake signatures without a chain session.
type stubSigner struct{}

func (stubSigner) SignMessage(_ context.Context, message string) (string, error) {
	return "signed:" + message, nil
}

// newFakeRPC serves eth_chainId and eth_getBalance over JSON-RPC.
func newFakeRPC() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
			ID     int64  `json:"id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		result := ""
		switch req.Method {
		case "eth_chainId":
			result = "0x13a" // 314
		case "eth_getBalance":
			result = "0xde0b6b3a7640000" // 1e18
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      req.ID,
				"error":   map[string]any{"code": -32601, "message": "method not found"},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  result,
		})
	}))
}
