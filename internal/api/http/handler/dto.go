package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/aldonunez05/sb-hacks/internal/model"
)

type promptResponse struct {
	ID       uuid.UUID `json:"id"`
	Text     string    `json:"text"`
	Category string    `json:"category"`
}

type dailyPromptResponse struct {
	ID               uuid.UUID      `json:"id"`
	Prompt           promptResponse `json:"prompt"`
	Date             string         `json:"date"`
	ExpiresAt        time.Time      `json:"expiresAt"`
	TotalSubmissions int            `json:"totalSubmissions"`
}

type todayResponse struct {
	Challenge       *dailyPromptResponse `json:"challenge"`
	TimeRemainingMs int64                `json:"timeRemaining"`
	Message         string               `json:"message,omitempty"`
}

type userResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Username           string     `json:"username"`
	ProfilePicture     string     `json:"profilePicture"`
	Points             int        `json:"points"`
	Streak             int        `json:"streak"`
	LastSubmissionDate *time.Time `json:"lastSubmissionDate,omitempty"`
}

type userSummary struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	ProfilePicture string    `json:"profilePicture"`
	Points         int       `json:"points"`
	Streak         int       `json:"streak"`
}

type commentResponse struct {
	ID        uuid.UUID    `json:"id"`
	Text      string       `json:"text"`
	User      *userSummary `json:"user,omitempty"`
	UserID    uuid.UUID    `json:"userId"`
	CreatedAt time.Time    `json:"createdAt"`
}

type submissionResponse struct {
	ID            uuid.UUID         `json:"id"`
	UserID        uuid.UUID         `json:"userId"`
	DailyPromptID uuid.UUID         `json:"dailyPromptId"`
	ImageURL      string            `json:"imageUrl"`
	Caption       string            `json:"caption"`
	Comments      []commentResponse `json:"comments"`
	SubmittedAt   time.Time         `json:"submittedAt"`
}

type submitResponse struct {
	Submission submissionResponse `json:"submission"`
	Points     int                `json:"points"`
	Streak     int                `json:"streak"`
}

type feedItemResponse struct {
	submissionResponse
	User        userSummary         `json:"user"`
	DailyPrompt dailyPromptResponse `json:"dailyPrompt"`
	LikeCount   int                 `json:"likeCount"`
	IsLiked     bool                `json:"isLiked"`
}

type profileResponse struct {
	User              userSummary        `json:"user"`
	RecentSubmissions []feedItemResponse `json:"recentSubmissions"`
	Friends           []userSummary      `json:"friends"`
	IsFriend          bool               `json:"isFriend"`
}

type likeResponse struct {
	Likes   int  `json:"likes"`
	IsLiked bool `json:"isLiked"`
}

type leaderboardEntry struct {
	Rank int `json:"rank"`
	userSummary
}

type registerRequest struct {
	Username       string `json:"username" binding:"required"`
	ProfilePicture string `json:"profilePicture"`
}

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

func toDailyPrompt(d model.DailyPrompt) dailyPromptResponse {
	return dailyPromptResponse{
		ID: d.ID,
		Prompt: promptResponse{
			ID:       d.Prompt.ID,
			Text:     d.Prompt.Text,
			Category: string(d.Prompt.Category),
		},
		Date:             d.Date.Format(time.DateOnly),
		ExpiresAt:        d.ExpiresAt,
		TotalSubmissions: d.TotalSubmissions,
	}
}

func toUser(u model.User) userResponse {
	return userResponse{
		ID:                 u.ID,
		Username:           u.Username,
		ProfilePicture:     u.ProfilePicture,
		Points:             u.Points,
		Streak:             u.Streak,
		LastSubmissionDate: u.LastSubmissionDate,
	}
}

func toSummary(u model.User) userSummary {
	return userSummary{
		ID:             u.ID,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
		Points:         u.Points,
		Streak:         u.Streak,
	}
}

func toComments(comments []model.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		r := commentResponse{ID: c.ID, Text: c.Text, UserID: c.AuthorID, CreatedAt: c.CreatedAt}
		if c.Author != nil {
			s := toSummary(*c.Author)
			r.User = &s
		}
		out = append(out, r)
	}
	return out
}

func toSubmission(s model.Submission) submissionResponse {
	return submissionResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		DailyPromptID: s.DailyPromptID,
		ImageURL:      s.ImageURL,
		Caption:       s.Caption,
		Comments:      toComments(s.Comments),
		SubmittedAt:   s.SubmittedAt,
	}
}

func toFeedItem(item model.FeedItem) feedItemResponse {
	return feedItemResponse{
		submissionResponse: toSubmission(item.Submission),
		User:               toSummary(item.Owner),
		DailyPrompt:        toDailyPrompt(item.DailyPrompt),
		LikeCount:          item.LikeCount,
		IsLiked:            item.IsLiked,
	}
}

func toSummaries(users []model.User) []userSummary {
	out := make([]userSummary, 0, len(users))
	for _, u := range users {
		out = append(out, toSummary(u))
	}
	return out
}

func toProfile(v model.ProfileView) profileResponse {
	items := make([]feedItemResponse, 0, len(v.RecentSubmissions))
	for _, item := range v.RecentSubmissions {
		items = append(items, toFeedItem(item))
	}
	return profileResponse{
		User:              toSummary(v.User),
		RecentSubmissions: items,
		Friends:           toSummaries(v.Friends),
		IsFriend:          v.IsFriend,
	}
}
