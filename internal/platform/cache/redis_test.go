package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/MichalMitros/catalog-feed-importer/internal/platform/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitRedis(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	rc := cache.NewRedis(client)
	ctx := context.TODO()

	_, found, err := rc.Get(ctx, "attr_match_Color")
	require.NoError(t, err, "shouldn't return any error")
	assert.False(t, found, "shouldn't find missing key")

	require.NoError(t, rc.Set(ctx, "attr_match_Color", 42, time.Hour), "shouldn't return any error")

	id, found, err := rc.Get(ctx, "attr_match_Color")
	require.NoError(t, err, "shouldn't return any error")
	assert.True(t, found, "should find stored key")
	assert.Equal(t, int64(42), id, "should return stored id")
	assert.Equal(t, time.Hour, srv.TTL("attr_match_Color"), "should store key with ttl")

	srv.FastForward(time.Hour)

	_, found, err = rc.Get(ctx, "attr_match_Color")
	require.NoError(t, err, "shouldn't return any error")
	assert.False(t, found, "shouldn't find expired key")
}

func TestUnitRedisErrors(t *testing.T) {
	srv, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	rc := cache.NewRedis(client)
	ctx := context.TODO()

	require.NoError(t, srv.Set("attr_match_Size", "not-a-number"))

	_, found, err := rc.Get(ctx, "attr_match_Size")
	assert.Error(t, err, "should return error for non-numeric value")
	assert.False(t, found, "shouldn't report found key")

	srv.Close()

	_, _, err = rc.Get(ctx, "attr_match_Size")
	assert.ErrorContains(t, err, "can't get", "should return connection error")

	err = rc.Set(ctx, "attr_match_Size", 1, time.Hour)
	assert.ErrorContains(t, err, "can't set", "should return connection error")
}
