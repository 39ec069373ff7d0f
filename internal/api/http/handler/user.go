package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/model"
)

// User serves profiles, friendships and the leaderboard.
type User struct {
	users          UserService
	leaderboard    LeaderboardService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewUser(users UserService, leaderboard LeaderboardService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{users: users, leaderboard: leaderboard, contextManager: contextManager, logger: logger}
}

// Register creates the profile of the authenticated user.
func (h *User) Register(c *gin.Context) {
	userID, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, h.logger, fmt.Errorf("%w: username is required", model.ErrInvalidInput))
		return
	}

	u, err := h.users.Register(c.Request.Context(), userID, req.Username, req.ProfilePicture)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, toUser(u))
}

func (h *User) Me(c *gin.Context) {
	userID, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	u, err := h.users.Profile(c.Request.Context(), userID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toUser(u))
}

// Profile shows another user with their recent submissions and friends.
func (h *User) Profile(c *gin.Context) {
	viewerID, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}
	id, err := pathID(c, "userId")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	view, err := h.users.View(c.Request.Context(), viewerID, id)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toProfile(view))
}

func (h *User) Search(c *gin.Context) {
	viewerID, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	found, err := h.users.Search(c.Request.Context(), viewerID, c.Query("q"), limit)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": toSummaries(found)})
}

func (h *User) Leaderboard(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	top, err := h.leaderboard.Top(c.Request.Context(), limit)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	out := make([]leaderboardEntry, 0, len(top))
	for i, u := range top {
		out = append(out, leaderboardEntry{Rank: i + 1, userSummary: toSummary(u)})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

func (h *User) AddFriend(c *gin.Context) {
	h.friendship(c, h.users.AddFriend, http.StatusCreated)
}

func (h *User) RemoveFriend(c *gin.Context) {
	h.friendship(c, h.users.RemoveFriend, http.StatusNoContent)
}

func (h *User) friendship(c *gin.Context, apply func(ctx context.Context, userID, friendID uuid.UUID) error, status int) {
	userID, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}
	friendID, err := pathID(c, "userId")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	if err := apply(c.Request.Context(), userID, friendID); err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.Status(status)
}
