package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/model"
)

// Feed composes the friend-scoped, newest-first view of submissions.
type Feed struct {
	submissions  model.SubmissionStore
	users        model.UserStore
	dailyPrompts model.DailyPromptStore
	logger       *logger.Logger
}

func NewFeed(
	submissions model.SubmissionStore,
	users model.UserStore,
	dailyPrompts model.DailyPromptStore,
	logger *logger.Logger,
) *Feed {
	return &Feed{
		submissions:  submissions,
		users:        users,
		dailyPrompts: dailyPrompts,
		logger:       logger,
	}
}

// Get returns one page of submissions owned by userID or a friend of userID,
// optionally restricted to one daily prompt.
func (s *Feed) Get(ctx context.Context, userID uuid.UUID, dailyPromptID *uuid.UUID, limit, offset int) ([]model.FeedItem, error) {
	limit, offset, err := normalizePage(limit, offset, DefaultFeedLimit)
	if err != nil {
		return nil, err
	}

	friends, err := s.users.FriendIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get friends: %w", err)
	}

	page, err := s.submissions.ListByOwners(ctx, model.FeedQuery{
		OwnerIDs:      append(friends, userID),
		DailyPromptID: dailyPromptID,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	if len(page) == 0 {
		return []model.FeedItem{}, nil
	}

	return enrichPage(ctx, s.users, s.dailyPrompts, userID, page)
}

// enrichPage resolves owners, comment authors and challenges for page and
// computes the like state seen by viewerID.
func enrichPage(
	ctx context.Context,
	userStore model.UserStore,
	dailyPrompts model.DailyPromptStore,
	viewerID uuid.UUID,
	page []model.Submission,
) ([]model.FeedItem, error) {
	userIDs := make([]uuid.UUID, 0, len(page))
	promptIDs := make([]uuid.UUID, 0, len(page))
	seenUsers := make(map[uuid.UUID]struct{})
	seenPrompts := make(map[uuid.UUID]struct{})

	addUser := func(id uuid.UUID) {
		if _, ok := seenUsers[id]; !ok {
			seenUsers[id] = struct{}{}
			userIDs = append(userIDs, id)
		}
	}
	for _, sub := range page {
		addUser(sub.UserID)
		for _, c := range sub.Comments {
			addUser(c.AuthorID)
		}
		if _, ok := seenPrompts[sub.DailyPromptID]; !ok {
			seenPrompts[sub.DailyPromptID] = struct{}{}
			promptIDs = append(promptIDs, sub.DailyPromptID)
		}
	}

	users, err := userStore.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	prompts, err := dailyPrompts.GetByIDs(ctx, promptIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily prompts: %w", err)
	}

	items := make([]model.FeedItem, 0, len(page))
	for _, sub := range page {
		sub.Comments = withAuthors(sub.Comments, users)
		items = append(items, model.FeedItem{
			Submission:  sub,
			Owner:       users[sub.UserID],
			DailyPrompt: prompts[sub.DailyPromptID],
			LikeCount:   len(sub.Likes),
			IsLiked:     sub.LikedBy(viewerID),
		})
	}
	return items, nil
}

// withAuthors resolves comment authors from users. Authors missing from the
// map keep a nil Author.
func withAuthors(comments []model.Comment, users map[uuid.UUID]model.User) []model.Comment {
	out := make([]model.Comment, len(comments))
	for i, c := range comments {
		if u, ok := users[c.AuthorID]; ok {
			c.Author = &u
		}
		out[i] = c
	}
	return out
}
