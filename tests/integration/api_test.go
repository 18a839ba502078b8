package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"visionland/config"
	chainAdapter "visionland/internal/adapter/chain"
	httpHandler "visionland/internal/adapter/http/handler"
	"visionland/internal/adapter/pieces"
	redisStorage "visionland/internal/adapter/storage/redis"
	"visionland/internal/core/domain"
	"visionland/internal/core/ports"
	"visionland/internal/service"
	"visionland/pkg/logger"
	"visionland/pkg/mockid"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires the full stack: real router, middleware, handlers, services
// and simulation store over miniredis, with fake upstream providers for
// piece storage and the chain RPC.
type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	rdb    *goredis.Client
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := logger.New("error", false)
	docs := redisStorage.NewDocumentStore(rdb)
	store := service.NewSimStore(context.Background(), docs, mockid.New(), log)

	_, providerSrv := newFakePiecesProvider()
	t.Cleanup(providerSrv.Close)

	rpcSrv := newFakeRPC()
	t.Cleanup(rpcSrv.Close)

	piecesClient := pieces.NewClient(
		config.PiecesConfig{Endpoint: providerSrv.URL},
		stubSigner{},
		providerSrv.Client(),
		log,
	)
	chainClient := chainAdapter.NewClient(
		config.ChainConfig{RPCURL: rpcSrv.URL},
		rpcSrv.Client(),
		log,
	)

	tokenSvc := service.NewJWTTokenService("test-session-secret-32-bytes!!!!", 24*time.Hour, "visionland-test")
	walletSvc := service.NewWalletService(store, tokenSvc, chainClient, log)
	rentalSvc := service.NewRentalService(store, log)
	backupSvc := service.NewBackupService(store, map[string]ports.ContentStorage{
		ports.BackendPieces: piecesClient,
	}, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Store:          store,
		RentalSvc:      rentalSvc,
		WalletSvc:      walletSvc,
		BackupSvc:      backupSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testApp{server: srv, redis: mr, rdb: rdb}
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
}

// do sends a JSON request and decodes the response envelope.
func (app *testApp) do(t *testing.T, method, path string, body any, token string) (int, envelope) {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, app.server.URL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decodeInto(t *testing.T, raw json.RawMessage, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestPropertyLifecycle(t *testing.T) {
	app := newTestApp(t)

	// First read seeds the example set.
	code, env := app.do(t, http.MethodGet, "/api/v1/properties", nil, "")
	require.Equal(t, http.StatusOK, code)
	var listed []domain.Property
	decodeInto(t, env.Data, &listed)
	require.Len(t, listed, 3)

	// Seeded state survives in the document store.
	assert.True(t, app.redis.Exists("doc:visionland:properties"))

	// New listings land at the head.
	code, env = app.do(t, http.MethodPost, "/api/v1/properties", map[string]any{
		"title":         "Canal House",
		"location":      "Amsterdam, NL",
		"pricePerMonth": 210.0,
	}, "")
	require.Equal(t, http.StatusCreated, code)
	var created domain.Property
	decodeInto(t, env.Data, &created)
	assert.True(t, created.Active)
	assert.Equal(t, domain.PlaceholderImage, created.Image)

	code, env = app.do(t, http.MethodGet, "/api/v1/properties", nil, "")
	require.Equal(t, http.StatusOK, code)
	decodeInto(t, env.Data, &listed)
	require.Len(t, listed, 4)
	assert.Equal(t, created.ID, listed[0].ID)

	// Toggling delists without deleting.
	code, env = app.do(t, http.MethodPost, "/api/v1/properties/"+created.ID+"/toggle", nil, "")
	require.Equal(t, http.StatusOK, code)
	var toggled domain.Property
	decodeInto(t, env.Data, &toggled)
	assert.False(t, toggled.Active)

	code, env = app.do(t, http.MethodGet, "/api/v1/properties/active", nil, "")
	require.Equal(t, http.StatusOK, code)
	var active []domain.Property
	decodeInto(t, env.Data, &active)
	for _, p := range active {
		assert.NotEqual(t, created.ID, p.ID)
	}

	// Unknown ids are a 404, not a new listing.
	code, env = app.do(t, http.MethodPost, "/api/v1/properties/prop_nope/toggle", nil, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "LST_001", env.ErrorCode)
}

func TestRentalFlow(t *testing.T) {
	app := newTestApp(t)

	code, env := app.do(t, http.MethodGet, "/api/v1/properties/active", nil, "")
	require.Equal(t, http.StatusOK, code)
	var active []domain.Property
	decodeInto(t, env.Data, &active)
	require.NotEmpty(t, active)
	target := active[0]

	code, env = app.do(t, http.MethodPost, "/api/v1/rentals", map[string]any{
		"propertyId": target.ID,
		"months":     3,
	}, "")
	require.Equal(t, http.StatusCreated, code)
	var receipt domain.Receipt
	decodeInto(t, env.Data, &receipt)
	assert.Equal(t, target.PricePerMonth*3, receipt.Amount)
	assert.Equal(t, domain.SimulatedTenantAddress, receipt.TenantAddress)
	assert.Len(t, receipt.TxHash, mockid.TxHashLength)
	assert.Len(t, receipt.Cid, mockid.CIDLength)

	code, env = app.do(t, http.MethodGet, "/api/v1/receipts/"+receipt.ID, nil, "")
	require.Equal(t, http.StatusOK, code)

	code, env = app.do(t, http.MethodGet, "/api/v1/receipts", nil, "")
	require.Equal(t, http.StatusOK, code)
	var receipts []domain.Receipt
	decodeInto(t, env.Data, &receipts)
	require.Len(t, receipts, 1)
	assert.Equal(t, receipt.ID, receipts[0].ID)

	// Renting a delisted property is rejected.
	app.do(t, http.MethodPost, "/api/v1/properties/"+target.ID+"/toggle", nil, "")
	code, env = app.do(t, http.MethodPost, "/api/v1/rentals", map[string]any{
		"propertyId": target.ID,
		"months":     1,
	}, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VAL_001", env.ErrorCode)
}

func TestWalletSessionFlow(t *testing.T) {
	app := newTestApp(t)

	// Seed listings first so a rental target exists.
	code, env := app.do(t, http.MethodGet, "/api/v1/properties/active", nil, "")
	require.Equal(t, http.StatusOK, code)
	var active []domain.Property
	decodeInto(t, env.Data, &active)
	require.NotEmpty(t, active)

	// Connect issues an address and a session token.
	code, env = app.do(t, http.MethodPost, "/api/v1/wallet/connect", nil, "")
	require.Equal(t, http.StatusCreated, code)
	var connected struct {
		Address string `json:"address"`
		Token   string `json:"token"`
	}
	decodeInto(t, env.Data, &connected)
	require.NotEmpty(t, connected.Token)
	assert.Regexp(t, "^0x[0-9a-f]{40}$", connected.Address)

	code, env = app.do(t, http.MethodGet, "/api/v1/wallet", nil, "")
	require.Equal(t, http.StatusOK, code)
	var status struct {
		Connected bool   `json:"connected"`
		Address   string `json:"address"`
	}
	decodeInto(t, env.Data, &status)
	assert.True(t, status.Connected)
	assert.Equal(t, connected.Address, status.Address)

	// Rentals under a session token bill the session address.
	code, env = app.do(t, http.MethodPost, "/api/v1/rentals", map[string]any{
		"propertyId": active[0].ID,
		"months":     2,
	}, connected.Token)
	require.Equal(t, http.StatusCreated, code)
	var receipt domain.Receipt
	decodeInto(t, env.Data, &receipt)
	assert.Equal(t, connected.Address, receipt.TenantAddress)

	// Balance reads go through the fake RPC.
	code, env = app.do(t, http.MethodGet, "/api/v1/wallet/balance", nil, connected.Token)
	require.Equal(t, http.StatusOK, code)
	var balance struct {
		Address string `json:"address"`
		Balance string `json:"balance"`
		ChainID string `json:"chainId"`
	}
	decodeInto(t, env.Data, &balance)
	assert.Equal(t, connected.Address, balance.Address)
	assert.Equal(t, "1000000000000000000", balance.Balance)
	assert.Equal(t, "314", balance.ChainID)

	// Garbage tokens are rejected outright.
	code, env = app.do(t, http.MethodGet, "/api/v1/wallet", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "SES_001", env.ErrorCode)

	// Disconnect clears the session and balance reads start failing.
	code, _ = app.do(t, http.MethodPost, "/api/v1/wallet/disconnect", nil, "")
	require.Equal(t, http.StatusOK, code)

	code, env = app.do(t, http.MethodGet, "/api/v1/wallet", nil, "")
	require.Equal(t, http.StatusOK, code)
	decodeInto(t, env.Data, &status)
	assert.False(t, status.Connected)

	code, env = app.do(t, http.MethodGet, "/api/v1/wallet/balance", nil, "")
	assert.Equal(t, http.StatusPreconditionFailed, code)
	assert.Equal(t, "CHN_002", env.ErrorCode)
}

func TestBackupAndRestore(t *testing.T) {
	app := newTestApp(t)

	code, env := app.do(t, http.MethodGet, "/api/v1/properties", nil, "")
	require.Equal(t, http.StatusOK, code)
	var listed []domain.Property
	decodeInto(t, env.Data, &listed)
	require.NotEmpty(t, listed)
	target := listed[0]

	code, env = app.do(t, http.MethodPost, "/api/v1/properties/"+target.ID+"/backup", map[string]any{
		"backend": "pieces",
	}, "")
	require.Equal(t, http.StatusOK, code)
	var backup struct {
		PropertyID string `json:"propertyId"`
		Backend    string `json:"backend"`
		Cid        string `json:"cid"`
	}
	decodeInto(t, env.Data, &backup)
	require.NotEmpty(t, backup.Cid)

	// The content id is linked to the listing.
	code, env = app.do(t, http.MethodGet, "/api/v1/properties/"+target.ID, nil, "")
	require.Equal(t, http.StatusOK, code)
	var linked domain.Property
	decodeInto(t, env.Data, &linked)
	assert.Equal(t, backup.Cid, linked.PieceCid)

	// Restore round-trips the snapshot taken before linking.
	code, env = app.do(t, http.MethodGet, "/api/v1/backups/pieces/"+backup.Cid, nil, "")
	require.Equal(t, http.StatusOK, code)
	var restored domain.Property
	decodeInto(t, env.Data, &restored)
	assert.Equal(t, target, restored)

	// Unknown backends fail request validation.
	code, env = app.do(t, http.MethodPost, "/api/v1/properties/"+target.ID+"/backup", map[string]any{
		"backend": "tape",
	}, "")
	assert.Equal(t, http.StatusBadRequest, code)

	// Unconfigured backends are rejected by the service.
	code, env = app.do(t, http.MethodGet, "/api/v1/backups/pinning/"+backup.Cid, nil, "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "LST_002", env.ErrorCode)

	// Unknown content ids surface as a provider failure.
	code, env = app.do(t, http.MethodGet, "/api/v1/backups/pieces/piece-9999", nil, "")
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, "STO_002", env.ErrorCode)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.server.Client().Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
}

func TestStateSurvivesRestart(t *testing.T) {
	app := newTestApp(t)

	code, env := app.do(t, http.MethodPost, "/api/v1/properties", map[string]any{
		"title":         "Harbor Flat",
		"location":      "Oslo, NO",
		"pricePerMonth": 95.0,
	}, "")
	require.Equal(t, http.StatusCreated, code)
	var created domain.Property
	decodeInto(t, env.Data, &created)

	// A second store over the same document store sees the same state.
	log := logger.New("error", false)
	reloaded := service.NewSimStore(
		context.Background(),
		redisStorage.NewDocumentStore(app.rdb),
		mockid.New(),
		log,
	)
	properties := reloaded.Properties(context.Background())
	require.NotEmpty(t, properties)
	assert.Equal(t, created.ID, properties[0].ID)
	assert.Equal(t, "Harbor Flat", properties[0].Title)
}
