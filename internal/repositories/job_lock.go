package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-levelup/internal/logger"
)

// releaseScript deletes the lock only when it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// JobLockRepository provides best-effort mutual exclusion for scheduled jobs using Redis
type JobLockRepository struct {
	client *redis.Client
}

// NewJobLockRepository creates a new repository instance
func NewJobLockRepository(client *redis.Client) *JobLockRepository {
	return &JobLockRepository{client: client}
}

// Acquire tries to take the named lock for ttl. It returns the token needed to
// release the lock and whether the lock was obtained.
func (r *JobLockRepository) Acquire(ctx context.Context, name string, ttl time.Duration) (string, bool, error) {
	key := fmt.Sprintf("job_lock:%s", name)
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, key, token, ttl).Result()

	logger.Log.Debugw("job lock acquire",
		"key", key,
		"ttl", ttl,
		"result", ok,
		"error", err,
	)

	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release frees the named lock if token still owns it.
func (r *JobLockRepository) Release(ctx context.Context, name, token string) error {
	key := fmt.Sprintf("job_lock:%s", name)

	deleted, err := releaseScript.Run(ctx, r.client, []string{key}, token).Int64()

	logger.Log.Debugw("job lock release",
		"key", key,
		"result", deleted,
		"error", err,
	)

	return err
}
