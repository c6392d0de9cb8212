package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/motiv8-batch/internal/logger"
)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// RunLockRepository guards a calendar day against concurrent scheduled runs using Redis
type RunLockRepository struct {
	client *redis.Client
	ttl    time.Duration // lock lifetime, released earlier on normal exit
	tokens map[string]string
}

// NewRunLockRepository creates a new repository instance with the given lock TTL
func NewRunLockRepository(client *redis.Client, ttl time.Duration) *RunLockRepository {
	return &RunLockRepository{
		client: client,
		ttl:    ttl,
		tokens: make(map[string]string),
	}
}

func runLockKey(generationDate string) string {
	return fmt.Sprintf("batch_run_lock:%s", generationDate)
}

// Acquire takes the lock for the day. It returns false when another run holds it.
func (r *RunLockRepository) Acquire(ctx context.Context, generationDate string) (bool, error) {
	key := runLockKey(generationDate)
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()

	logger.Log.Infow(
		"key", key,
		"ttl", r.ttl,
		"result", ok,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	if ok {
		r.tokens[key] = token
	}

	return ok, nil
}

// Extend resets the lock TTL if this repository still owns it. It returns false
// when the lock expired or was taken over by another run.
func (r *RunLockRepository) Extend(ctx context.Context, generationDate string) (bool, error) {
	key := runLockKey(generationDate)
	token, ok := r.tokens[key]
	if !ok {
		return false, nil
	}

	n, err := extendScript.Run(ctx, r.client, []string{key}, token, r.ttl.Milliseconds()).Int()

	logger.Log.Infow(
		"key", key,
		"ttl", r.ttl,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	if n == 0 {
		delete(r.tokens, key)
		return false, nil
	}

	return true, nil
}

// Release drops the lock if this repository still owns it.
func (r *RunLockRepository) Release(ctx context.Context, generationDate string) error {
	key := runLockKey(generationDate)
	token, ok := r.tokens[key]
	if !ok {
		return nil
	}

	n, err := releaseScript.Run(ctx, r.client, []string{key}, token).Int()

	logger.Log.Infow(
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return err
	}

	delete(r.tokens, key)
	return nil
}
