package cache_test

import (
	"context"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventas-admin/internal/common/pagination"
	"ventas-admin/internal/config"
	"ventas-admin/internal/domain/entity"
	"ventas-admin/internal/infra/api"
	"ventas-admin/internal/infra/api/mockapi"
	"ventas-admin/internal/infra/cache"
)

var _ api.PageCache = (*cache.RedisPageCache)(nil)

func newCache(t *testing.T) (*cache.RedisPageCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	c := cache.New(client, nil)
	t.Cleanup(func() { _ = c.Close() })
	return c, server
}

func TestRedisPageCache_GetSet(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "ventas:page:vendedores:1:10")
	require.NoError(t, err)
	assert.False(t, ok)

	body := []byte(`{"data":[],"totalPages":3}`)
	require.NoError(t, c.Set(ctx, "ventas:page:vendedores:1:10", body, time.Minute))

	got, ok, err := c.Get(ctx, "ventas:page:vendedores:1:10")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, body, got)
	assert.Equal(t, time.Minute, server.TTL("ventas:page:vendedores:1:10"))

	server.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx, "ventas:page:vendedores:1:10")
	require.NoError(t, err)
	assert.False(t, ok, "entry expires after its TTL")
}

func TestRedisPageCache_InvalidatePrefix(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	for i := 1; i <= 250; i++ {
		require.NoError(t, c.Set(ctx, api.PageKey("/vendedores", paramsFor(i)), []byte("x"), time.Minute))
	}
	require.NoError(t, c.Set(ctx, "ventas:page:productos:1:10", []byte("y"), time.Minute))
	require.NoError(t, c.Set(ctx, "ventas:page:vendedores-archivo:1:10", []byte("z"), time.Minute))

	require.NoError(t, c.InvalidatePrefix(ctx, api.CollectionPrefix("/vendedores")))

	keys := server.Keys()
	sort.Strings(keys)
	assert.Equal(t, []string{"ventas:page:productos:1:10", "ventas:page:vendedores-archivo:1:10"}, keys)
}

func TestRedisPageCache_Errors(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()
	server.Close()

	_, _, err := c.Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, c.Set(ctx, "k", []byte("v"), time.Second))
	assert.Error(t, c.InvalidatePrefix(ctx, "ventas:page:"))
}

func TestConnect(t *testing.T) {
	server := miniredis.RunT(t)

	c, err := cache.Connect(context.Background(), config.CacheConfig{RedisAddr: server.Addr()}, nil)
	require.NoError(t, err)
	require.NoError(t, c.Ping(context.Background()))
	require.NoError(t, c.Close())

	_, err = cache.Connect(context.Background(), config.CacheConfig{RedisAddr: "127.0.0.1:1"}, nil)
	assert.Error(t, err)
}

func paramsFor(page int) pagination.Params {
	return pagination.Params{Page: page, Limit: 10}
}

func TestRedisPageCache_WithClient(t *testing.T) {
	c, _ := newCache(t)
	backend := mockapi.New(mockapi.Options{Seed: true})
	ts := httptest.NewServer(backend)
	t.Cleanup(ts.Close)

	cfg := config.DefaultAPIConfig()
	cfg.BaseURL = ts.URL
	client, err := api.New(cfg, api.WithCache(c, time.Minute))
	require.NoError(t, err)
	ctx := context.Background()
	params := pagination.Params{Page: 2, Limit: 10}

	first, err := api.List[entity.Product](ctx, client, "/productos", params)
	require.NoError(t, err)
	second, err := api.List[entity.Product](ctx, client, "/productos", params)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, backend.Requests())

	_, err = api.Create(ctx, client, "/productos", entity.Product{SKU: "N-1", Name: "Nuevo"})
	require.NoError(t, err)

	third, err := api.List[entity.Product](ctx, client, "/productos", params)
	require.NoError(t, err)
	assert.Equal(t, 3, backend.Requests())
	assert.Equal(t, 6, pagination.NewResult(third, 10).TotalPages)
}
