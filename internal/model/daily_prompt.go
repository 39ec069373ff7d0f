package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DailyPromptStore persists published challenges. Create must enforce date
// uniqueness atomically and return ErrAlreadyPublished on violation.
type DailyPromptStore interface {
	Create(ctx context.Context, dailyPrompt DailyPrompt) (DailyPrompt, error)
	GetByID(ctx context.Context, id uuid.UUID) (DailyPrompt, error)
	GetByDate(ctx context.Context, date time.Time) (DailyPrompt, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]DailyPrompt, error)
	List(ctx context.Context, limit, offset int) ([]DailyPrompt, error)
}

// DailyPrompt is the single prompt published for one calendar day.
// Prompt is populated by read paths that join the catalog.
type DailyPrompt struct {
	ID               uuid.UUID
	PromptID         uuid.UUID
	Prompt           Prompt
	Date             time.Time
	ExpiresAt        time.Time
	TotalSubmissions int
	CreatedAt        time.Time
}

// IsExpired reports whether submissions are closed at now.
func (d DailyPrompt) IsExpired(now time.Time) bool {
	return now.After(d.ExpiresAt)
}

// TimeRemaining is max(0, ExpiresAt - now).
func (d DailyPrompt) TimeRemaining(now time.Time) time.Duration {
	if left := d.ExpiresAt.Sub(now); left > 0 {
		return left
	}
	return 0
}

// TodayChallenge is the result of looking up the current challenge.
// Available is false when nothing has been published for today yet.
type TodayChallenge struct {
	Available     bool
	DailyPrompt   DailyPrompt
	TimeRemaining time.Duration
}
