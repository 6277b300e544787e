package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestRedis connects to the Redis named by BEEZER_TEST_REDIS_ADDR.
// Each test uses its own key prefix.
func openTestRedis(t *testing.T) *Redis {
	t.Helper()
	addr := os.Getenv("BEEZER_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("BEEZER_TEST_REDIS_ADDR not set")
	}

	s, err := OpenRedis(context.Background(), RedisOptions{
		Addr:      addr,
		KeyPrefix: "beezer-test-" + uuid.NewString(),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx := context.Background()
		for _, p := range Partitions {
			s.client.Del(ctx, s.key(p))
		}
		s.Close()
	})
	return s
}

func TestRedis_RoundTrip_PreservesOrder(t *testing.T) {
	s := openTestRedis(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceAll(ctx, PartitionTopTracks, tracks()))

	got, err := s.ReadAll(ctx, PartitionTopTracks)
	require.NoError(t, err)
	assert.Equal(t, tracks(), got)
}

func TestRedis_ReplaceAll_Idempotent(t *testing.T) {
	s := openTestRedis(t)
	ctx := context.Background()

	for range 3 {
		require.NoError(t, s.ReplaceAll(ctx, PartitionTopTracks, tracks()))
	}

	got, err := s.ReadAll(ctx, PartitionTopTracks)
	require.NoError(t, err)
	assert.Equal(t, tracks(), got)
}

func TestRedis_ReplaceAll_DuplicateIDKeepsPrevious(t *testing.T) {
	s := openTestRedis(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceAll(ctx, PartitionTopTracks, tracks()))

	dup := []Record{{ID: 5, Data: []byte(`{}`)}, {ID: 5, Data: []byte(`{}`)}}
	require.ErrorIs(t, s.ReplaceAll(ctx, PartitionTopTracks, dup), ErrUnavailable)

	got, err := s.ReadAll(ctx, PartitionTopTracks)
	require.NoError(t, err)
	assert.Equal(t, tracks(), got)
}

func TestOpenRedis_Unreachable(t *testing.T) {
	// Port 1 on localhost is reserved and refuses connections.
	_, err := OpenRedis(context.Background(), RedisOptions{Addr: "127.0.0.1:1"})
	require.ErrorIs(t, err, ErrUnavailable)
}
