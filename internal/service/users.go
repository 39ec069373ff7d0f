package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/model"
)

// MaxUsernameLength bounds registered usernames.
const MaxUsernameLength = 32

// DefaultSearchLimit is the number of users a search returns by default.
const DefaultSearchLimit = 10

// Users manages profiles and the symmetric friend relation.
type Users struct {
	users        model.UserStore
	submissions  model.SubmissionStore
	dailyPrompts model.DailyPromptStore
	logger       *logger.Logger
}

func NewUsers(
	users model.UserStore,
	submissions model.SubmissionStore,
	dailyPrompts model.DailyPromptStore,
	logger *logger.Logger,
) *Users {
	return &Users{
		users:        users,
		submissions:  submissions,
		dailyPrompts: dailyPrompts,
		logger:       logger,
	}
}

// Register creates the profile for an authenticated identity.
func (s *Users) Register(ctx context.Context, id uuid.UUID, username, profilePicture string) (model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(username) > MaxUsernameLength {
		return model.User{}, fmt.Errorf("%w: username must be 1-%d characters", model.ErrInvalidInput, MaxUsernameLength)
	}

	user, err := s.users.Create(ctx, model.User{
		ID:             id,
		Username:       username,
		ProfilePicture: profilePicture,
	})
	if errors.Is(err, model.ErrConflict) {
		return model.User{}, fmt.Errorf("%w: profile or username already exists", model.ErrConflict)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Profile returns a user.
func (s *Users) Profile(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// View returns id's profile with its latest submissions and friends, and
// whether viewerID is one of those friends.
func (s *Users) View(ctx context.Context, viewerID, id uuid.UUID) (model.ProfileView, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.ProfileView{}, fmt.Errorf("failed to get user: %w", err)
	}

	friendIDs, err := s.users.FriendIDs(ctx, id)
	if err != nil {
		return model.ProfileView{}, fmt.Errorf("failed to get friends: %w", err)
	}
	byID, err := s.users.GetByIDs(ctx, friendIDs)
	if err != nil {
		return model.ProfileView{}, fmt.Errorf("failed to get friends: %w", err)
	}

	view := model.ProfileView{User: user, Friends: make([]model.User, 0, len(friendIDs))}
	for _, fid := range friendIDs {
		if fid == viewerID {
			view.IsFriend = true
		}
		if f, ok := byID[fid]; ok {
			view.Friends = append(view.Friends, f)
		}
	}
	sort.Slice(view.Friends, func(i, j int) bool { return view.Friends[i].Username < view.Friends[j].Username })

	recent, err := s.submissions.ListByOwners(ctx, model.FeedQuery{
		OwnerIDs: []uuid.UUID{id},
		Limit:    model.ProfileRecentSubmissions,
	})
	if err != nil {
		return model.ProfileView{}, fmt.Errorf("failed to list submissions: %w", err)
	}
	view.RecentSubmissions = []model.FeedItem{}
	if len(recent) > 0 {
		if view.RecentSubmissions, err = enrichPage(ctx, s.users, s.dailyPrompts, viewerID, recent); err != nil {
			return model.ProfileView{}, err
		}
	}

	return view, nil
}

// Search finds other users whose username contains query, ignoring case.
func (s *Users) Search(ctx context.Context, viewerID uuid.UUID, query string, limit int) ([]model.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", model.ErrInvalidInput)
	}
	if len(query) > MaxUsernameLength {
		return []model.User{}, nil
	}
	limit, _, err := normalizePage(limit, 0, DefaultSearchLimit)
	if err != nil {
		return nil, err
	}

	found, err := s.users.Search(ctx, query, viewerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	if found == nil {
		found = []model.User{}
	}
	return found, nil
}

// AddFriend links both users to each other in one operation.
func (s *Users) AddFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	if userID == friendID {
		return fmt.Errorf("%w: cannot befriend yourself", model.ErrInvalidInput)
	}
	if _, err := s.users.GetByID(ctx, friendID); err != nil {
		return fmt.Errorf("failed to get friend: %w", err)
	}

	if err := s.users.AddFriendship(ctx, userID, friendID); err != nil {
		return fmt.Errorf("failed to add friendship: %w", err)
	}
	s.logger.Debug("friendship added", "user_id", userID, "friend_id", friendID)
	return nil
}

// RemoveFriend unlinks both users.
func (s *Users) RemoveFriend(ctx context.Context, userID, friendID uuid.UUID) error {
	if err := s.users.RemoveFriendship(ctx, userID, friendID); err != nil {
		return fmt.Errorf("failed to remove friendship: %w", err)
	}
	s.logger.Debug("friendship removed", "user_id", userID, "friend_id", friendID)
	return nil
}
