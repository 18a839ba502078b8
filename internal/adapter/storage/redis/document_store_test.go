package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStore_GetMissingKey(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDocumentStore(client)
	ctx := context.Background()

	val, err := store.Get(ctx, "visionland:properties")
	assert.NoError(t, err)
	assert.Nil(t, val)
}

func TestDocumentStore_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDocumentStore(client)
	ctx := context.Background()

	doc := []byte(`[{"id":"prop_abc1231xyz","title":"Modern Loft","active":true}]`)
	require.NoError(t, store.Set(ctx, "visionland:properties", doc))

	got, err := store.Get(ctx, "visionland:properties")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestDocumentStore_FullRewrite(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDocumentStore(client)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "visionland:receipts", []byte(`[]`)))
	require.NoError(t, store.Set(ctx, "visionland:receipts", []byte(`[{"id":"rcpt_1"}]`)))

	got, err := store.Get(ctx, "visionland:receipts")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"rcpt_1"}]`), got)
}

func TestDocumentStore_KeysAreIndependent(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewDocumentStore(client)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "visionland:wallet", []byte(`{"address":"0xabc"}`)))

	other, err := store.Get(ctx, "visionland:properties")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestHealthCheck_Ping(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	h := NewHealthCheck(client)

	assert.NoError(t, h.Ping(context.Background()))
	assert.Equal(t, "redis", h.Name())
}
