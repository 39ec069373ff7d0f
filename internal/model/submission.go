package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SubmissionStore persists submissions and their social state.
//
// CreateWithAward is the commit point of a submission: it inserts the row,
// applies the award to the owner and bumps the challenge counter atomically,
// and returns ErrAlreadySubmitted when (user, daily prompt) already exists.
type SubmissionStore interface {
	CreateWithAward(ctx context.Context, submission Submission, award Award) (Submission, User, error)
	Exists(ctx context.Context, userID, dailyPromptID uuid.UUID) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (Submission, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByOwners(ctx context.Context, query FeedQuery) ([]Submission, error)
	ToggleLike(ctx context.Context, submissionID, userID uuid.UUID) (LikeState, error)
	AddComment(ctx context.Context, comment Comment) ([]Comment, error)
}

// Submission is one user's photo for one daily prompt.
type Submission struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	DailyPromptID uuid.UUID
	ImageURL      string
	ImageKey      string
	Caption       string
	Likes         []uuid.UUID
	Comments      []Comment
	SubmittedAt   time.Time
}

// LikedBy reports whether userID is in the like set.
func (s Submission) LikedBy(userID uuid.UUID) bool {
	for _, id := range s.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// Comment is appended to a submission; insertion order is display order.
type Comment struct {
	ID           uuid.UUID
	SubmissionID uuid.UUID
	AuthorID     uuid.UUID
	Author       *User
	Text         string
	CreatedAt    time.Time
}

// LikeState is the result of a like toggle.
type LikeState struct {
	LikeCount int
	IsLiked   bool
}

// MaxCommentLength and MaxCaptionLength bound user text in characters.
const (
	MaxCommentLength = 200
	MaxCaptionLength = 200
)

// SubmitParams carries a photo submission.
type SubmitParams struct {
	UserID        uuid.UUID
	DailyPromptID uuid.UUID
	Image         []byte
	ContentType   string
	Caption       string
}

// SubmitResult is a created submission with the owner's updated progression.
type SubmitResult struct {
	Submission Submission
	Points     int
	Streak     int
}

// FeedQuery selects submissions owned by any of OwnerIDs, newest first,
// with ties broken by descending submission ID.
type FeedQuery struct {
	OwnerIDs      []uuid.UUID
	DailyPromptID *uuid.UUID
	Limit         int
	Offset        int
}

// FeedItem is a submission enriched for display.
type FeedItem struct {
	Submission  Submission
	Owner       User
	DailyPrompt DailyPrompt
	LikeCount   int
	IsLiked     bool
}
