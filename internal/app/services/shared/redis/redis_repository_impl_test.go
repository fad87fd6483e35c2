package redis

import (
	"context"
	"medvault-client/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*redisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return &redisRepository{client: client}, mr
}

func TestRedisRepositorySetGetDelete(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t)

	t.Run("Struct Values Are Stored As JSON", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "user", map[string]string{"id": "42", "role": "PATIENT"}, 0))

		raw, err := mr.Get("user")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"42","role":"PATIENT"}`, raw)
	})

	t.Run("Strings Are Stored Verbatim", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "plain", `{"id":"7"}`, 0))

		value, err := repo.Get(ctx, "plain")
		require.NoError(t, err)
		assert.Equal(t, `{"id":"7"}`, value, "string values must not be double encoded")
	})

	t.Run("Missing Key", func(t *testing.T) {
		value, err := repo.Get(ctx, "nope")
		assert.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Expiry", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "short", "x", time.Minute))
		mr.FastForward(2 * time.Minute)

		value, err := repo.Get(ctx, "short")
		assert.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "plain"))
		assert.False(t, mr.Exists("plain"))
	})
}

func TestRedisRepositoryServerError(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepository(t)
	mr.SetError("LOADING dataset in memory")

	_, err := repo.Get(ctx, "user")
	assert.Error(t, err)
	assert.True(t, exceptions.IsClass(err, exceptions.ClassInternal))
}
