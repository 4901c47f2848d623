package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/promptcraft/templates/internal/logger"
)

// UserCacheRepository caches user ids by email in Redis. The mapping is
// safe to cache without invalidation because emails are immutable after
// signup; the TTL only bounds memory.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached entries
}

// NewUserCacheRepository creates a new repository instance with the given TTL.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetUserIDByEmail fetches a cached user id. A cache miss is an error;
// callers fall back to the database on any error.
func (r *UserCacheRepository) GetUserIDByEmail(ctx context.Context, email string) (int64, error) {
	key := fmt.Sprintf("user_id:%s", email)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache miss",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return 0, fmt.Errorf("user id not found in cache for %s", email)
		}
		return 0, err
	}

	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logger.Log.Infow("cache entry malformed",
			"key", key,
			"value", val,
			"error", err,
		)
		return 0, err
	}

	return id, nil
}

// SetUserIDByEmail caches a user id with the configured expiration.
func (r *UserCacheRepository) SetUserIDByEmail(ctx context.Context, email string, id int64) error {
	key := fmt.Sprintf("user_id:%s", email)
	err := r.client.Set(ctx, key, strconv.FormatInt(id, 10), r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"value", id,
		"error", err,
	)

	return err
}
