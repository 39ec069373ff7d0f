package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpContext "github.com/aldonunez05/sb-hacks/internal/api/http/context"
	"github.com/aldonunez05/sb-hacks/internal/metrics"
	"github.com/aldonunez05/sb-hacks/internal/mocks"
	"github.com/aldonunez05/sb-hacks/internal/model"
	"github.com/aldonunez05/sb-hacks/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	engine      *gin.Engine
	tokens      *mocks.TokenManager
	challenges  *mocks.ChallengeService
	publisher   *mocks.PublishService
	submissions *mocks.SubmissionService
	leaderboard *mocks.LeaderboardService
}

func newFixture(t *testing.T, opts Options) fixture {
	f := fixture{
		tokens:      mocks.NewTokenManager(t),
		challenges:  mocks.NewChallengeService(t),
		publisher:   mocks.NewPublishService(t),
		submissions: mocks.NewSubmissionService(t),
		leaderboard: mocks.NewLeaderboardService(t),
	}
	r := New(Services{
		Challenges:  f.challenges,
		Publisher:   f.publisher,
		Submissions: f.submissions,
		Feed:        mocks.NewFeedService(t),
		Social:      mocks.NewSocialService(t),
		Leaderboard: f.leaderboard,
		Users:       mocks.NewUserService(t),
	}, f.tokens, httpContext.NewManager(), metrics.New(), opts, testutil.MakeNoopLogger())
	f.engine = r.Register()
	return f
}

func (f fixture) do(method, target, token string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newFixture(t, Options{RateLimitRPS: 1, RateLimitBurst: 1})

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/health", "").Code)

	w := f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "snapdaily_http_requests_total")
}

func TestRouter_RequiresToken(t *testing.T) {
	f := newFixture(t, Options{RateLimitRPS: 1, RateLimitBurst: 1})

	for _, target := range []string{
		"/api/v1/challenges/today",
		"/api/v1/challenges/history",
		"/api/v1/submissions/feed",
		"/api/v1/users/leaderboard/top",
		"/api/v1/users/me",
	} {
		assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, target, "").Code, target)
	}
}

func TestRouter_AuthenticatedRoute(t *testing.T) {
	f := newFixture(t, Options{RateLimitRPS: 1, RateLimitBurst: 1})
	userID := uuid.New()
	f.tokens.On("ParseAccessToken", "tok").Return(userID, nil)
	f.challenges.On("Today", mock.Anything, mock.AnythingOfType("time.Time")).Return(model.TodayChallenge{}, nil)

	w := f.do(http.MethodGet, "/api/v1/challenges/today", "tok")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_StaticUserRoutesWinOverParam(t *testing.T) {
	f := newFixture(t, Options{RateLimitRPS: 1, RateLimitBurst: 1})
	f.tokens.On("ParseAccessToken", "tok").Return(uuid.New(), nil)
	f.leaderboard.On("Top", mock.Anything, 0).Return([]model.User{}, nil)

	w := f.do(http.MethodGet, "/api/v1/users/leaderboard/top", "tok")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"users":[]}`, w.Body.String())
}

func TestRouter_TriggerDaily(t *testing.T) {
	f := newFixture(t, Options{AdminToken: "ops", RateLimitRPS: 1, RateLimitBurst: 1})
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	f.publisher.On("PublishToday", mock.Anything).Return(model.DailyPrompt{ID: uuid.New(), Date: day, ExpiresAt: day.Add(model.DayDuration)}, nil).Once()

	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/api/v1/challenges/trigger-daily", "").Code)
	assert.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/v1/challenges/trigger-daily", "", "X-Admin-Token", "ops").Code)
}

func TestRouter_RateLimitsWrites(t *testing.T) {
	f := newFixture(t, Options{RateLimitRPS: 0.001, RateLimitBurst: 1})
	userID := uuid.New()
	f.tokens.On("ParseAccessToken", "tok").Return(userID, nil)
	f.submissions.On("Delete", mock.Anything, mock.Anything, userID).Return(nil)

	target := "/api/v1/submissions/" + uuid.NewString() + "/like"
	// The limiter runs before the handler, so a rejected ID still spends the burst.
	first := f.do(http.MethodPost, "/api/v1/submissions/not-a-uuid/like", "tok")
	assert.Equal(t, http.StatusBadRequest, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, f.do(http.MethodPost, target, "tok").Code)

	// Deletes are not rate limited.
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/api/v1/submissions/"+uuid.NewString(), "tok").Code)
}
