package docstore

import (
	"context"

	"github.com/go-redis/redis/v8"
)

const redisKey = "barber_mvp:document"

// RedisBlob guarda o documento em uma única chave do Redis.
type RedisBlob struct {
	client *redis.Client
}

func NewRedisBlob(url string) (*RedisBlob, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisBlob{client: redis.NewClient(opts)}, nil
}

func (r *RedisBlob) Close() error {
	return r.client.Close()
}

func (r *RedisBlob) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, redisKey).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *RedisBlob) Save(ctx context.Context, data []byte) error {
	// sem TTL: o documento vive para sempre
	return r.client.Set(ctx, redisKey, data, 0).Err()
}

func (r *RedisBlob) Delete(ctx context.Context) error {
	return r.client.Del(ctx, redisKey).Err()
}
