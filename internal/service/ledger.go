package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/metrics"
	"github.com/aldonunez05/sb-hacks/internal/model"
)

// Ledger accepts photo submissions, enforcing one per user per daily prompt,
// and awards points and streaks in the same unit of work.
type Ledger struct {
	submissions  model.SubmissionStore
	dailyPrompts model.DailyPromptStore
	images       model.ImageStorage
	leaderboard  model.LeaderboardCache
	loc          *time.Location
	now          Clock
	metrics      *metrics.Metrics
	logger       *logger.Logger
}

// NewLedger creates a Ledger. leaderboard may be nil.
func NewLedger(
	submissions model.SubmissionStore,
	dailyPrompts model.DailyPromptStore,
	images model.ImageStorage,
	leaderboard model.LeaderboardCache,
	loc *time.Location,
	now Clock,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Ledger {
	return &Ledger{
		submissions:  submissions,
		dailyPrompts: dailyPrompts,
		images:       images,
		leaderboard:  leaderboard,
		loc:          loc,
		now:          now,
		metrics:      metrics,
		logger:       logger,
	}
}

// Submit stores the photo and records the submission. The uniqueness of
// (user, daily prompt) is enforced by the store, so of several concurrent
// calls exactly one succeeds and the rest get ErrAlreadySubmitted.
func (s *Ledger) Submit(ctx context.Context, params model.SubmitParams) (model.SubmitResult, error) {
	res, err := s.submit(ctx, params)
	switch {
	case err == nil:
		s.metrics.RecordSubmission(metrics.ResultOK)
	case errors.Is(err, model.ErrConflict):
		s.metrics.RecordSubmission(metrics.ResultConflict)
	case errors.Is(err, model.ErrStorage) || model.Kind(err) == nil:
		s.metrics.RecordSubmission(metrics.ResultError)
	default:
		s.metrics.RecordSubmission(metrics.ResultRejected)
	}
	return res, err
}

func (s *Ledger) submit(ctx context.Context, params model.SubmitParams) (model.SubmitResult, error) {
	log := s.logger.With("user_id", params.UserID, "daily_prompt_id", params.DailyPromptID)
	log.Debug("submit photo")

	if len(params.Image) == 0 {
		return model.SubmitResult{}, fmt.Errorf("%w: image is required", model.ErrInvalidInput)
	}
	if utf8.RuneCountInString(params.Caption) > model.MaxCaptionLength {
		return model.SubmitResult{}, fmt.Errorf("%w: caption exceeds %d characters", model.ErrInvalidInput, model.MaxCaptionLength)
	}

	dp, err := s.dailyPrompts.GetByID(ctx, params.DailyPromptID)
	if err != nil {
		return model.SubmitResult{}, fmt.Errorf("failed to get daily prompt: %w", err)
	}

	now := s.now()
	if dp.IsExpired(now) {
		return model.SubmitResult{}, model.ErrChallengeExpired
	}

	exists, err := s.submissions.Exists(ctx, params.UserID, params.DailyPromptID)
	if err != nil {
		return model.SubmitResult{}, fmt.Errorf("failed to check existing submission: %w", err)
	}
	if exists {
		return model.SubmitResult{}, model.ErrAlreadySubmitted
	}

	submissionID := uuid.New()
	key := fmt.Sprintf("submissions/%s/%s", params.UserID, submissionID)
	url, err := s.images.Upload(ctx, key, params.Image, params.ContentType)
	if err != nil {
		return model.SubmitResult{}, fmt.Errorf("failed to upload image: %w", err)
	}

	submission, user, err := s.submissions.CreateWithAward(ctx, model.Submission{
		ID:            submissionID,
		UserID:        params.UserID,
		DailyPromptID: params.DailyPromptID,
		ImageURL:      url,
		ImageKey:      key,
		Caption:       params.Caption,
		SubmittedAt:   now,
	}, model.Award{
		Points: model.SubmissionPoints,
		Day:    model.CalendarDay(now, s.loc),
	})
	if err != nil {
		s.discardImage(ctx, key, log)
		if errors.Is(err, model.ErrAlreadySubmitted) {
			return model.SubmitResult{}, err
		}
		return model.SubmitResult{}, fmt.Errorf("failed to create submission: %w", err)
	}

	s.invalidateLeaderboard(ctx, log)
	log.Info("submission accepted", "submission_id", submission.ID, "points", user.Points, "streak", user.Streak)

	return model.SubmitResult{
		Submission: submission,
		Points:     user.Points,
		Streak:     user.Streak,
	}, nil
}

// Delete removes a submission owned by userID. Points, streak and the
// challenge counter are left as they are.
func (s *Ledger) Delete(ctx context.Context, submissionID, userID uuid.UUID) error {
	log := s.logger.With("user_id", userID, "submission_id", submissionID)
	log.Debug("delete submission")

	submission, err := s.submissions.GetByID(ctx, submissionID)
	if err != nil {
		return fmt.Errorf("failed to get submission: %w", err)
	}
	if submission.UserID != userID {
		return fmt.Errorf("%w: submission belongs to another user", model.ErrForbidden)
	}

	if err := s.submissions.Delete(ctx, submissionID); err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	if submission.ImageKey != "" {
		s.discardImage(ctx, submission.ImageKey, log)
	}
	return nil
}

func (s *Ledger) discardImage(ctx context.Context, key string, log *logger.Logger) {
	if err := s.images.Delete(ctx, key); err != nil {
		log.Warn("failed to delete image", "key", key, "error", err)
	}
}

func (s *Ledger) invalidateLeaderboard(ctx context.Context, log *logger.Logger) {
	if s.leaderboard == nil {
		return
	}
	if err := s.leaderboard.Invalidate(ctx); err != nil {
		log.Warn("failed to invalidate leaderboard cache", "error", err)
	}
}
