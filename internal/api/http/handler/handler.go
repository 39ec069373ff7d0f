package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aldonunez05/sb-hacks/internal/model"
)

// ChallengeService reads published challenges.
type ChallengeService interface {
	Today(ctx context.Context, now time.Time) (model.TodayChallenge, error)
	History(ctx context.Context, limit, offset int) ([]model.DailyPrompt, error)
}

// PublishService publishes daily challenges.
type PublishService interface {
	PublishToday(ctx context.Context) (model.DailyPrompt, error)
	PublishForDate(ctx context.Context, date time.Time) (model.DailyPrompt, error)
}

// SubmissionService accepts and removes photo submissions.
type SubmissionService interface {
	Submit(ctx context.Context, params model.SubmitParams) (model.SubmitResult, error)
	Delete(ctx context.Context, submissionID, userID uuid.UUID) error
}

// FeedService lists submissions visible to a user.
type FeedService interface {
	Get(ctx context.Context, userID uuid.UUID, dailyPromptID *uuid.UUID, limit, offset int) ([]model.FeedItem, error)
}

// SocialService handles likes and comments.
type SocialService interface {
	ToggleLike(ctx context.Context, submissionID, userID uuid.UUID) (model.LikeState, error)
	AddComment(ctx context.Context, submissionID, userID uuid.UUID, text string) ([]model.Comment, error)
}

// LeaderboardService ranks users by points.
type LeaderboardService interface {
	Top(ctx context.Context, limit int) ([]model.User, error)
}

// UserService manages profiles and friendships.
type UserService interface {
	Register(ctx context.Context, id uuid.UUID, username, profilePicture string) (model.User, error)
	Profile(ctx context.Context, id uuid.UUID) (model.User, error)
	View(ctx context.Context, viewerID, id uuid.UUID) (model.ProfileView, error)
	Search(ctx context.Context, viewerID uuid.UUID, query string, limit int) ([]model.User, error)
	AddFriend(ctx context.Context, userID, friendID uuid.UUID) error
	RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error
}

var errUnauthenticated = errors.New("unauthenticated")

func currentUser(c *gin.Context, cm model.ContextManager) (uuid.UUID, bool) {
	userID, ok := cm.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: errUnauthenticated.Error(), Code: "unauthenticated"})
		return uuid.Nil, false
	}
	return userID, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a UUID", model.ErrInvalidInput, name)
	}
	return id, nil
}

// pagination reads limit and offset, accepting skip as an alias for offset.
// Absent values are zero and the services apply their defaults.
func pagination(c *gin.Context) (limit, offset int, err error) {
	if limit, err = queryInt(c, "limit"); err != nil {
		return 0, 0, err
	}
	key := "offset"
	if _, ok := c.GetQuery(key); !ok {
		key = "skip"
	}
	if offset, err = queryInt(c, key); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", model.ErrInvalidInput, key)
	}
	return v, nil
}
