package model

import "context"

// ImageStorage stores raw image bytes and returns an opaque public URL.
type ImageStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// LeaderboardCache caches the top of the leaderboard.
type LeaderboardCache interface {
	Get(ctx context.Context, limit int) ([]User, bool, error)
	Set(ctx context.Context, limit int, users []User) error
	Invalidate(ctx context.Context) error
}
