package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/model"
)

const publishJobName = "publish-daily-challenge"

// DefaultRunTimeout bounds a single publish run.
const DefaultRunTimeout = 30 * time.Second

// Publisher publishes the challenge for the current day.
type Publisher interface {
	PublishToday(ctx context.Context) (model.DailyPrompt, error)
}

// Options of the daily trigger.
type Options struct {
	Cron       string
	RunOnStart bool
	Location   *time.Location
	RunTimeout time.Duration
}

// Scheduler fires the daily publish on a cron expression.
type Scheduler struct {
	scheduler gocron.Scheduler
	publisher Publisher
	timeout   time.Duration
	logger    *logger.Logger
}

// New registers the publish job. The cron expression is evaluated in
// opts.Location so midnight means the configured calendar day boundary.
func New(publisher Publisher, opts Options, logger *logger.Logger) (*Scheduler, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	timeout := opts.RunTimeout
	if timeout <= 0 {
		timeout = DefaultRunTimeout
	}

	gs, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	s := &Scheduler{
		scheduler: gs,
		publisher: publisher,
		timeout:   timeout,
		logger:    logger,
	}

	jobOpts := []gocron.JobOption{
		gocron.WithName(publishJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if opts.RunOnStart {
		jobOpts = append(jobOpts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	if _, err := gs.NewJob(gocron.CronJob(opts.Cron, false), gocron.NewTask(s.run), jobOpts...); err != nil {
		_ = gs.Shutdown()
		return nil, fmt.Errorf("failed to register publish job: %w", err)
	}

	return s, nil
}

// Start begins firing jobs in the background.
func (s *Scheduler) Start() {
	s.scheduler.Start()
	s.logger.Info("scheduler started", "job", publishJobName)
}

// Stop waits for a running publish to finish and stops the scheduler.
func (s *Scheduler) Stop() error {
	if err := s.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to stop scheduler: %w", err)
	}
	return nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	s.publish(ctx)
}

// publish runs one trigger. Losing to another instance or a manual trigger
// is the expected outcome on every instance but one.
func (s *Scheduler) publish(ctx context.Context) {
	dp, err := s.publisher.PublishToday(ctx)
	switch {
	case err == nil:
		s.logger.Info("daily challenge published",
			"daily_prompt_id", dp.ID,
			"date", dp.Date.Format(time.DateOnly),
		)
	case errors.Is(err, model.ErrAlreadyPublished):
		s.logger.Info("daily challenge already published")
	case errors.Is(err, model.ErrPromptPoolEmpty):
		s.logger.Warn("daily challenge not published: prompt catalog is empty")
	default:
		s.logger.Error("daily challenge publish failed", "error", err)
	}
}
