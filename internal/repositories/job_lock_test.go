package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestJobLockRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewJobLockRepository(rdb)

	t.Run("acquire, contend, release", func(t *testing.T) {
		token, ok, err := repo.Acquire(ctx, "weekly_summary", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NotEmpty(t, token)

		_, ok, err = repo.Acquire(ctx, "weekly_summary", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok, "lock is held")

		// A foreign token must not release someone else's lock.
		require.NoError(t, repo.Release(ctx, "weekly_summary", "not-the-owner"))
		_, ok, err = repo.Acquire(ctx, "weekly_summary", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, repo.Release(ctx, "weekly_summary", token))
		token, ok, err = repo.Acquire(ctx, "weekly_summary", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
		require.NoError(t, repo.Release(ctx, "weekly_summary", token))
	})

	t.Run("lock expires after ttl", func(t *testing.T) {
		_, ok, err := repo.Acquire(ctx, "short", 500*time.Millisecond)
		require.NoError(t, err)
		assert.True(t, ok)

		time.Sleep(time.Second)

		_, ok, err = repo.Acquire(ctx, "short", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
