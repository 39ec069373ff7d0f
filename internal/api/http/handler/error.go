package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var errTooLarge = errors.New("upload exceeds size limit")

// statusFor maps an error kind to its HTTP status and response code.
func statusFor(err error) (int, string) {
	if errors.Is(err, errTooLarge) {
		return http.StatusRequestEntityTooLarge, "too_large"
	}
	switch model.Kind(err) {
	case model.ErrNotFound:
		return http.StatusNotFound, "not_found"
	case model.ErrConflict:
		return http.StatusConflict, "conflict"
	case model.ErrExpired:
		return http.StatusGone, "expired"
	case model.ErrForbidden:
		return http.StatusForbidden, "forbidden"
	case model.ErrInvalidInput:
		return http.StatusBadRequest, "invalid_input"
	case model.ErrStorage:
		return http.StatusServiceUnavailable, "storage_unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// handleError writes err as a JSON error body. Server-side failures are
// logged and replaced with a generic message.
func handleError(c *gin.Context, log *logger.Logger, err error) {
	status, code := statusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "route", c.FullPath(), "error", err)
		msg = http.StatusText(status)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, errorResponse{Error: msg, Code: code})
}
