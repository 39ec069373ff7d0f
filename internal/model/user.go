package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore exposes the parts of the user record the challenge core reads
// and the symmetric friendship writes.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]User, error)
	Create(ctx context.Context, user User) (User, error)
	FriendIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	AddFriendship(ctx context.Context, a, b uuid.UUID) error
	RemoveFriendship(ctx context.Context, a, b uuid.UUID) error
	TopByPoints(ctx context.Context, limit int) ([]User, error)
	// Search matches usernames containing query, ignoring case, and never
	// returns excludeID.
	Search(ctx context.Context, query string, excludeID uuid.UUID, limit int) ([]User, error)
}

// User holds the identity, display and progression fields of an account.
// Credentials live with the external auth service.
type User struct {
	ID                 uuid.UUID
	Username           string
	ProfilePicture     string
	Points             int
	Streak             int
	LastSubmissionDate *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ProfileView is a user's public profile as seen by viewer.
type ProfileView struct {
	User              User
	RecentSubmissions []FeedItem
	Friends           []User
	IsFriend          bool
}

// ProfileRecentSubmissions is how many submissions a profile view shows.
const ProfileRecentSubmissions = 9

// SubmissionPoints is awarded for every accepted submission.
const SubmissionPoints = 10

// Award is applied to the submitter in the same unit of work that creates
// the submission.
type Award struct {
	Points int
	Day    time.Time
}

// ApplyAward returns u with points added and the streak advanced to day.
func (u User) ApplyAward(a Award) User {
	u.Points += a.Points
	u.Streak = NextStreak(u.Streak, u.LastSubmissionDate, a.Day)
	day := a.Day
	u.LastSubmissionDate = &day
	return u
}

// NextStreak applies the consecutive-day rule at calendar-day granularity:
// first submission or a gap of more than a day yields 1, the next day
// increments, and the same day (or a clock running backwards) leaves the
// streak as is.
func NextStreak(current int, last *time.Time, day time.Time) int {
	if last == nil {
		return 1
	}
	switch gap := DaysBetween(*last, day); {
	case gap == 1:
		return current + 1
	case gap > 1:
		return 1
	default:
		return current
	}
}
