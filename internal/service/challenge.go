package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aldonunez05/sb-hacks/internal/model"
)

// Challenge serves the read side of published daily prompts.
type Challenge struct {
	dailyPrompts model.DailyPromptStore
	loc          *time.Location
}

func NewChallenge(dailyPrompts model.DailyPromptStore, loc *time.Location) *Challenge {
	return &Challenge{
		dailyPrompts: dailyPrompts,
		loc:          loc,
	}
}

// Today returns the challenge for the calendar day containing now. A day
// without a published challenge is reported with Available=false.
func (s *Challenge) Today(ctx context.Context, now time.Time) (model.TodayChallenge, error) {
	dp, err := s.dailyPrompts.GetByDate(ctx, model.CalendarDay(now, s.loc))
	if errors.Is(err, model.ErrNotFound) {
		return model.TodayChallenge{}, nil
	}
	if err != nil {
		return model.TodayChallenge{}, fmt.Errorf("failed to get today's challenge: %w", err)
	}

	return model.TodayChallenge{
		Available:     true,
		DailyPrompt:   dp,
		TimeRemaining: dp.TimeRemaining(now),
	}, nil
}

// History lists published challenges, newest date first.
func (s *Challenge) History(ctx context.Context, limit, offset int) ([]model.DailyPrompt, error) {
	limit, offset, err := normalizePage(limit, offset, DefaultHistoryLimit)
	if err != nil {
		return nil, err
	}

	dps, err := s.dailyPrompts.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}
	return dps, nil
}
