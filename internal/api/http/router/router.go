package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aldonunez05/sb-hacks/internal/api/http/handler"
	"github.com/aldonunez05/sb-hacks/internal/api/http/middleware"
	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/metrics"
	"github.com/aldonunez05/sb-hacks/internal/model"
)

// Services groups the application services behind the HTTP surface.
type Services struct {
	Challenges  handler.ChallengeService
	Publisher   handler.PublishService
	Submissions handler.SubmissionService
	Feed        handler.FeedService
	Social      handler.SocialService
	Leaderboard handler.LeaderboardService
	Users       handler.UserService
}

// Options tunes the HTTP surface.
type Options struct {
	AdminToken     string
	MaxUploadBytes int64
	RateLimitRPS   float64
	RateLimitBurst int
	Location       *time.Location
}

// Router represents the HTTP router for the challenge API.
type Router struct {
	services       Services
	tokens         model.TokenManager
	contextManager model.ContextManager
	metrics        *metrics.Metrics
	limiter        *middleware.RateLimiter
	opts           Options
	logger         *logger.Logger
}

// New creates new Router instance.
func New(
	services Services,
	tokens model.TokenManager,
	contextManager model.ContextManager,
	m *metrics.Metrics,
	opts Options,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		tokens:         tokens,
		contextManager: contextManager,
		metrics:        m,
		limiter:        middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, contextManager, logger),
		opts:           opts,
		logger:         logger,
	}
}

// Limiter exposes the write-path rate limiter so its cleanup loop can be
// started by the caller.
func (r *Router) Limiter() *middleware.RateLimiter {
	return r.limiter
}

// Register builds the engine with every route and middleware.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			r.logger.Error("panic recovered", "route", c.FullPath(), "panic", recovered)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "code": "internal"})
		}),
		middleware.NewLogging(r.logger).Handle(),
		middleware.Metrics(r.metrics),
	)

	engine.GET("/health", handler.Health)
	if r.metrics != nil {
		engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	}

	challenges := handler.NewChallenge(r.services.Challenges, r.services.Publisher, nil, r.opts.Location, r.logger)
	submissions := handler.NewSubmission(
		r.services.Submissions,
		r.services.Feed,
		r.services.Social,
		r.contextManager,
		r.opts.MaxUploadBytes,
		r.logger,
	)
	users := handler.NewUser(r.services.Users, r.services.Leaderboard, r.contextManager, r.logger)

	api := engine.Group("/api/v1")

	// Operator trigger authenticates with the admin token instead of a user.
	api.POST("/challenges/trigger-daily", middleware.AdminToken(r.opts.AdminToken), challenges.TriggerDaily)

	authed := api.Group("", middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger).Handle())
	limited := r.limiter.Handle()

	authed.GET("/challenges/today", challenges.Today)
	authed.GET("/challenges/history", challenges.History)

	authed.POST("/submissions", limited, submissions.Submit)
	authed.GET("/submissions/feed", submissions.Feed)
	authed.POST("/submissions/:id/like", limited, submissions.Like)
	authed.POST("/submissions/:id/comment", limited, submissions.Comment)
	authed.DELETE("/submissions/:id", submissions.Delete)

	authed.POST("/users/me", users.Register)
	authed.GET("/users/me", users.Me)
	authed.GET("/users/leaderboard/top", users.Leaderboard)
	authed.GET("/users/search", users.Search)
	authed.GET("/users/:userId", users.Profile)
	authed.POST("/users/friends/:userId", users.AddFriend)
	authed.DELETE("/users/friends/:userId", users.RemoveFriend)

	return engine
}
