package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitInvalidURL(t *testing.T) {
	err := Init("://invalid-url", "")
	assert.Error(t, err)
}

func TestBasicOpsRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	assert.NotNil(t, GetClient())

	ctx := context.Background()

	require.NoError(t, Set(ctx, "draft:lizexpress_1_x", "payload", time.Minute))
	got, err := Get(ctx, "draft:lizexpress_1_x")
	require.NoError(t, err)
	assert.Equal(t, "payload", got)

	ok, err := SetNX(ctx, "idempotency:lock:k", "1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = SetNX(ctx, "idempotency:lock:k", "1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, Del(ctx, "draft:lizexpress_1_x"))
	_, err = Get(ctx, "draft:lizexpress_1_x")
	assert.ErrorIs(t, err, goredis.Nil)
}

func TestBasicOpsWithUnreachableRedis(t *testing.T) {
	cli := goredis.NewClient(&goredis.Options{
		Addr:         "127.0.0.1:0", // invalid/unreachable
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
	})
	SetClient(cli)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.Error(t, Set(ctx, "k", "v", time.Second))
	_, err := Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, Del(ctx, "k"))
	_, err = SetNX(ctx, "k", "v", time.Second)
	assert.Error(t, err)
}
