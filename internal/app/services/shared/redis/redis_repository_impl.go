package redis

import (
	"context"
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

// Set stores value as JSON. Strings and byte slices are stored verbatim so
// that values written by the portal itself round-trip unchanged.
func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	var stored interface{}
	switch v := value.(type) {
	case string:
		stored = v
	case []byte:
		stored = v
	default:
		jsonValue, err := json.Marshal(value)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		stored = jsonValue
	}

	err := r.client.Set(ctx, key, stored, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

// Get returns an empty string without error when the key does not exist.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}
	return data, nil
}
