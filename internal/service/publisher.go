package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/metrics"
	"github.com/aldonunez05/sb-hacks/internal/model"
)

// DefaultOrphanGrace is how long a prompt may stay marked used without a
// daily prompt before the next publish releases it. It must exceed the time
// between MarkUsed and the daily prompt insert of an in-flight publish.
const DefaultOrphanGrace = time.Minute

// maxClaimAttempts bounds how often a publish re-picks after a concurrent
// publish claimed the prompt it chose.
const maxClaimAttempts = 8

// Publisher selects and publishes one prompt per calendar day, never
// repeating a prompt until the whole catalog has been shown.
type Publisher struct {
	catalog      *Catalog
	dailyPrompts model.DailyPromptStore
	loc          *time.Location
	now          Clock
	intn         func(n int) int
	orphanGrace  time.Duration
	metrics      *metrics.Metrics
	logger       *logger.Logger
}

func NewPublisher(
	catalog *Catalog,
	dailyPrompts model.DailyPromptStore,
	loc *time.Location,
	now Clock,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Publisher {
	return &Publisher{
		catalog:      catalog,
		dailyPrompts: dailyPrompts,
		loc:          loc,
		now:          now,
		intn:         rand.IntN,
		orphanGrace:  DefaultOrphanGrace,
		metrics:      metrics,
		logger:       logger,
	}
}

// PublishToday publishes the challenge for the current calendar day.
func (s *Publisher) PublishToday(ctx context.Context) (model.DailyPrompt, error) {
	return s.PublishForDate(ctx, s.now())
}

// PublishForDate publishes the challenge for the calendar day containing
// date. It returns ErrAlreadyPublished when that day already has one,
// including when a concurrent publish wins the insert.
func (s *Publisher) PublishForDate(ctx context.Context, date time.Time) (model.DailyPrompt, error) {
	day := model.CalendarDay(date, s.loc)
	log := s.logger.With("date", day.Format(time.DateOnly))

	dp, err := s.publish(ctx, day, log)
	switch {
	case err == nil:
		s.metrics.RecordPublish(metrics.ResultOK)
		log.Info("daily challenge published", "daily_prompt_id", dp.ID, "prompt_id", dp.PromptID)
	case errors.Is(err, model.ErrConflict):
		s.metrics.RecordPublish(metrics.ResultConflict)
	default:
		s.metrics.RecordPublish(metrics.ResultError)
	}
	return dp, err
}

func (s *Publisher) publish(ctx context.Context, day time.Time, log *logger.Logger) (model.DailyPrompt, error) {
	_, err := s.dailyPrompts.GetByDate(ctx, day)
	if err == nil {
		return model.DailyPrompt{}, model.ErrAlreadyPublished
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.DailyPrompt{}, fmt.Errorf("failed to look up daily prompt: %w", err)
	}

	released, err := s.catalog.ReleaseOrphaned(ctx, s.orphanGrace)
	if err != nil {
		return model.DailyPrompt{}, err
	}
	if released > 0 {
		log.Warn("released prompts marked used without a daily prompt", "count", released)
	}

	chosen, err := s.claim(ctx, day, log)
	if err != nil {
		return model.DailyPrompt{}, err
	}

	dp, err := s.dailyPrompts.Create(ctx, model.DailyPrompt{
		ID:        uuid.New(),
		PromptID:  chosen.ID,
		Prompt:    chosen,
		Date:      day,
		ExpiresAt: day.Add(model.DayDuration),
	})
	if errors.Is(err, model.ErrAlreadyPublished) {
		s.yieldToWinner(ctx, day, chosen, log)
		return model.DailyPrompt{}, err
	}
	if err != nil {
		// No retry here: the mark stays until ReleaseOrphaned picks it up.
		log.Error("prompt marked used without a published daily prompt",
			"prompt_id", chosen.ID, "error", err)
		return model.DailyPrompt{}, fmt.Errorf("failed to create daily prompt: %w", err)
	}

	dp.Prompt = chosen
	return dp, nil
}

// claim picks a prompt from the pool and marks it used for day. When another
// publish marks the same prompt first, the pool is re-read and a new pick is
// made, unless day got published in the meantime.
func (s *Publisher) claim(ctx context.Context, day time.Time, log *logger.Logger) (model.Prompt, error) {
	for attempt := 1; ; attempt++ {
		pool, err := s.candidates(ctx, log)
		if err != nil {
			return model.Prompt{}, err
		}
		chosen := pool[s.intn(len(pool))]

		err = s.catalog.MarkUsed(ctx, chosen.ID, day)
		if err == nil {
			return chosen, nil
		}
		if !errors.Is(err, model.ErrPromptTaken) || attempt == maxClaimAttempts {
			return model.Prompt{}, err
		}
		log.Debug("prompt claimed by a concurrent publish, picking again", "prompt_id", chosen.ID, "attempt", attempt)

		if _, err := s.dailyPrompts.GetByDate(ctx, day); err == nil {
			return model.Prompt{}, model.ErrAlreadyPublished
		}
	}
}

// candidates returns the unused pool, resetting the catalog first when every
// prompt has been shown.
func (s *Publisher) candidates(ctx context.Context, log *logger.Logger) ([]model.Prompt, error) {
	pool, err := s.catalog.ListUnused(ctx)
	if err != nil {
		return nil, err
	}
	if len(pool) > 0 {
		return pool, nil
	}

	n, err := s.catalog.ResetAll(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("prompt pool exhausted, catalog reset", "prompts", n)

	pool, err = s.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, model.ErrPromptPoolEmpty
	}
	return pool, nil
}

// yieldToWinner undoes our mark after losing the insert race, unless the
// winner happened to pick the same prompt.
func (s *Publisher) yieldToWinner(ctx context.Context, day time.Time, chosen model.Prompt, log *logger.Logger) {
	winner, err := s.dailyPrompts.GetByDate(ctx, day)
	if err != nil {
		log.Warn("lost publish race, winner unreadable", "prompt_id", chosen.ID, "error", err)
		return
	}
	if winner.PromptID == chosen.ID {
		return
	}
	if err := s.catalog.Release(ctx, chosen.ID); err != nil {
		log.Warn("lost publish race, failed to release prompt", "prompt_id", chosen.ID, "error", err)
		return
	}
	log.Debug("lost publish race, prompt released", "prompt_id", chosen.ID, "winner_prompt_id", winner.PromptID)
}
