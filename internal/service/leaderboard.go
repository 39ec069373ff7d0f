package service

import (
	"context"
	"fmt"

	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/model"
)

// Leaderboard ranks users by points, reading through an optional cache.
type Leaderboard struct {
	users  model.UserStore
	cache  model.LeaderboardCache
	logger *logger.Logger
}

// NewLeaderboard creates a Leaderboard. cache may be nil.
func NewLeaderboard(users model.UserStore, cache model.LeaderboardCache, logger *logger.Logger) *Leaderboard {
	return &Leaderboard{
		users:  users,
		cache:  cache,
		logger: logger,
	}
}

// Top returns up to limit users sorted by points descending. Cache failures
// fall back to the store.
func (s *Leaderboard) Top(ctx context.Context, limit int) ([]model.User, error) {
	limit, _, _ = normalizePage(limit, 0, DefaultLeaderboardLimit)

	if s.cache != nil {
		users, ok, err := s.cache.Get(ctx, limit)
		if err != nil {
			s.logger.Warn("leaderboard cache read failed", "error", err)
		}
		if ok {
			return users, nil
		}
	}

	users, err := s.users.TopByPoints(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, limit, users); err != nil {
			s.logger.Warn("leaderboard cache write failed", "error", err)
		}
	}
	return users, nil
}
