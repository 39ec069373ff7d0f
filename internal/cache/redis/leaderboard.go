package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aldonunez05/sb-hacks/internal/model"
)

const (
	keyPrefix = "leaderboard:top:"
	// keyIndex tracks every cached page so Invalidate can drop them together.
	keyIndex = "leaderboard:keys"
)

var _ model.LeaderboardCache = (*LeaderboardCache)(nil)

// LeaderboardCache keeps serialized leaderboard pages in Redis, one key per
// requested limit.
type LeaderboardCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewLeaderboardCache creates cache with ttl applied to every page.
func NewLeaderboardCache(client redis.UniversalClient, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{client: client, ttl: ttl}
}

func pageKey(limit int) string {
	return keyPrefix + strconv.Itoa(limit)
}

// Get returns the cached page for limit. The bool is false on a miss.
func (c *LeaderboardCache) Get(ctx context.Context, limit int) ([]model.User, bool, error) {
	raw, err := c.client.Get(ctx, pageKey(limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read leaderboard cache: %w", err)
	}

	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, false, fmt.Errorf("failed to decode leaderboard cache: %w", err)
	}
	return users, true, nil
}

// Set stores the page for limit.
func (c *LeaderboardCache) Set(ctx context.Context, limit int, users []model.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode leaderboard cache: %w", err)
	}

	key := pageKey(limit)
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, raw, c.ttl)
		pipe.SAdd(ctx, keyIndex, key)
		pipe.Expire(ctx, keyIndex, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write leaderboard cache: %w", err)
	}
	return nil
}

// Invalidate drops every cached page.
func (c *LeaderboardCache) Invalidate(ctx context.Context) error {
	keys, err := c.client.SMembers(ctx, keyIndex).Result()
	if err != nil {
		return fmt.Errorf("failed to list leaderboard cache keys: %w", err)
	}

	keys = append(keys, keyIndex)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate leaderboard cache: %w", err)
	}
	return nil
}
