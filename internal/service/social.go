package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/metrics"
	"github.com/aldonunez05/sb-hacks/internal/model"
)

// Social applies likes and comments to submissions.
type Social struct {
	submissions model.SubmissionStore
	users       model.UserStore
	now         Clock
	metrics     *metrics.Metrics
	logger      *logger.Logger
}

func NewSocial(
	submissions model.SubmissionStore,
	users model.UserStore,
	now Clock,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Social {
	return &Social{
		submissions: submissions,
		users:       users,
		now:         now,
		metrics:     metrics,
		logger:      logger,
	}
}

// ToggleLike flips userID's like on the submission and returns the result.
func (s *Social) ToggleLike(ctx context.Context, submissionID, userID uuid.UUID) (model.LikeState, error) {
	s.logger.Debug("toggle like", "submission_id", submissionID, "user_id", userID)

	state, err := s.submissions.ToggleLike(ctx, submissionID, userID)
	if err != nil {
		return model.LikeState{}, fmt.Errorf("failed to toggle like: %w", err)
	}

	s.metrics.RecordLike(state.IsLiked)
	return state, nil
}

// AddComment appends a comment and returns the whole thread in insertion
// order with authors resolved.
func (s *Social) AddComment(ctx context.Context, submissionID, userID uuid.UUID, text string) ([]model.Comment, error) {
	s.logger.Debug("add comment", "submission_id", submissionID, "user_id", userID)

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", model.ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > model.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", model.ErrInvalidInput, model.MaxCommentLength)
	}

	comments, err := s.submissions.AddComment(ctx, model.Comment{
		ID:           uuid.New(),
		SubmissionID: submissionID,
		AuthorID:     userID,
		Text:         text,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	s.metrics.RecordComment()

	authorIDs := make([]uuid.UUID, 0, len(comments))
	for _, c := range comments {
		authorIDs = append(authorIDs, c.AuthorID)
	}
	users, err := s.users.GetByIDs(ctx, authorIDs)
	if err != nil {
		// The comment is stored; authors are display-only.
		s.logger.Warn("failed to resolve comment authors", "submission_id", submissionID, "error", err)
		return comments, nil
	}
	return withAuthors(comments, users), nil
}
