package repository

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-clinic-service/pkg/cache"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "clinic:state:"

type RedisRepository struct {
	cache *cache.RedisClient
}

func NewRedisRepository(c *cache.RedisClient) *RedisRepository {
	return &RedisRepository{cache: c}
}

func (r *RedisRepository) Get(ctx context.Context, bucket string) ([]byte, error) {
	val, err := r.cache.Client.Get(ctx, redisKeyPrefix+bucket).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return val, nil
}

func (r *RedisRepository) Put(ctx context.Context, bucket string, payload []byte) error {
	return r.cache.Client.Set(ctx, redisKeyPrefix+bucket, payload, 0).Err()
}
