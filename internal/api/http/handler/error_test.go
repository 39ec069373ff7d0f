package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/aldonunez05/sb-hacks/internal/model"
	"github.com/aldonunez05/sb-hacks/internal/testutil"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", fmt.Errorf("failed to get: %w", model.ErrNotFound), http.StatusNotFound, "not_found"},
		{"pool empty", model.ErrPromptPoolEmpty, http.StatusNotFound, "not_found"},
		{"already submitted", model.ErrAlreadySubmitted, http.StatusConflict, "conflict"},
		{"already published", model.ErrAlreadyPublished, http.StatusConflict, "conflict"},
		{"expired", model.ErrChallengeExpired, http.StatusGone, "expired"},
		{"forbidden", model.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"invalid", fmt.Errorf("%w: bad", model.ErrInvalidInput), http.StatusBadRequest, "invalid_input"},
		{"storage", fmt.Errorf("%w: db down", model.ErrStorage), http.StatusServiceUnavailable, "storage_unavailable"},
		{"too large", errTooLarge, http.StatusRequestEntityTooLarge, "too_large"},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := statusFor(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestHandleError_HidesServerErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	handleError(c, testutil.MakeNoopLogger(), fmt.Errorf("%w: password=hunter2", model.ErrStorage))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.Contains(t, w.Body.String(), "storage_unavailable")
}

func TestHandleError_ClientErrorsKeepMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	handleError(c, testutil.MakeNoopLogger(), model.ErrChallengeExpired)

	assert.Equal(t, http.StatusGone, w.Code)
	assert.JSONEq(t, `{"error":"challenge has expired","code":"expired"}`, w.Body.String())
}
