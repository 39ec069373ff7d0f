package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/model"
)

// Challenge serves the daily challenge endpoints.
type Challenge struct {
	challenges ChallengeService
	publisher  PublishService
	now        func() time.Time
	loc        *time.Location
	logger     *logger.Logger
}

func NewChallenge(challenges ChallengeService, publisher PublishService, now func() time.Time, loc *time.Location, logger *logger.Logger) *Challenge {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Challenge{challenges: challenges, publisher: publisher, now: now, loc: loc, logger: logger}
}

// Today returns the challenge for the current calendar day, or a null
// challenge when none has been published yet.
func (h *Challenge) Today(c *gin.Context) {
	today, err := h.challenges.Today(c.Request.Context(), h.now())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	if !today.Available {
		c.JSON(http.StatusOK, todayResponse{Message: "no challenge available yet"})
		return
	}

	dp := toDailyPrompt(today.DailyPrompt)
	c.JSON(http.StatusOK, todayResponse{
		Challenge:       &dp,
		TimeRemainingMs: today.TimeRemaining.Milliseconds(),
	})
}

func (h *Challenge) History(c *gin.Context) {
	limit, offset, err := pagination(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	history, err := h.challenges.History(c.Request.Context(), limit, offset)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	out := make([]dailyPromptResponse, 0, len(history))
	for _, d := range history {
		out = append(out, toDailyPrompt(d))
	}
	c.JSON(http.StatusOK, gin.H{"challenges": out})
}

// TriggerDaily publishes today's challenge on demand. An optional date
// query parameter (YYYY-MM-DD) publishes that calendar day instead.
func (h *Challenge) TriggerDaily(c *gin.Context) {
	var (
		dp  model.DailyPrompt
		err error
	)
	if raw := c.Query("date"); raw != "" {
		date, perr := time.ParseInLocation(time.DateOnly, raw, h.loc)
		if perr != nil {
			handleError(c, h.logger, fmt.Errorf("%w: date must be YYYY-MM-DD", model.ErrInvalidInput))
			return
		}
		dp, err = h.publisher.PublishForDate(c.Request.Context(), date)
	} else {
		dp, err = h.publisher.PublishToday(c.Request.Context())
	}
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.logger.Info("daily challenge triggered manually", "daily_prompt_id", dp.ID, "date", dp.Date.Format(time.DateOnly))
	c.JSON(http.StatusCreated, gin.H{"challenge": toDailyPrompt(dp)})
}
