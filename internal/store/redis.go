package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "beezer"
	pingTimeout      = 5 * time.Second
)

// RedisOptions configures the Redis store.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string // defaults to "beezer"
}

// Redis is a Store backed by Redis. Each partition is one list of
// JSON-encoded records, so list order is the ranking order.
type Redis struct {
	client *redis.Client
	prefix string
}

// Verify Redis implements Store at compile time.
var _ Store = (*Redis)(nil)

type redisRecord struct {
	ID   int64           `json:"id"`
	Data json.RawMessage `json:"data"`
}

// OpenRedis connects to Redis and checks the connection.
func OpenRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, unavailable("connect", "", err)
	}

	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &Redis{client: client, prefix: prefix}, nil
}

func (s *Redis) key(p Partition) string {
	return fmt.Sprintf("%s:%s", s.prefix, p)
}

// ReadAll returns the list for p in insertion order.
func (s *Redis) ReadAll(ctx context.Context, p Partition) ([]Record, error) {
	if err := checkPartition("read", p); err != nil {
		return nil, err
	}

	values, err := s.client.LRange(ctx, s.key(p), 0, -1).Result()
	if err != nil {
		return nil, unavailable("read", p, err)
	}

	records := make([]Record, 0, len(values))
	for _, v := range values {
		var rr redisRecord
		if err := json.Unmarshal([]byte(v), &rr); err != nil {
			return nil, unavailable("read", p, err)
		}
		records = append(records, Record{ID: rr.ID, Data: []byte(rr.Data)})
	}
	return records, nil
}

// ReplaceAll deletes the list for p and pushes records inside MULTI/EXEC.
func (s *Redis) ReplaceAll(ctx context.Context, p Partition, records []Record) error {
	if err := checkPartition("replace", p); err != nil {
		return err
	}

	seen := make(map[int64]struct{}, len(records))
	values := make([]any, 0, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			return unavailable("replace", p, fmt.Errorf("duplicate id %d", r.ID))
		}
		seen[r.ID] = struct{}{}

		b, err := json.Marshal(redisRecord{ID: r.ID, Data: json.RawMessage(r.Data)})
		if err != nil {
			return unavailable("replace", p, err)
		}
		values = append(values, string(b))
	}

	key := s.key(p)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) > 0 {
			pipe.RPush(ctx, key, values...)
		}
		return nil
	})
	if err != nil {
		return unavailable("replace", p, err)
	}
	return nil
}

// Close closes the Redis client.
func (s *Redis) Close() error {
	return s.client.Close()
}
