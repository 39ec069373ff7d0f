package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aldonunez05/sb-hacks/internal/logger"
	"github.com/aldonunez05/sb-hacks/internal/model"
)

// Submission serves photo submissions and their social endpoints.
type Submission struct {
	submissions    SubmissionService
	feed           FeedService
	social         SocialService
	contextManager model.ContextManager
	maxUploadBytes int64
	logger         *logger.Logger
}

func NewSubmission(
	submissions SubmissionService,
	feed FeedService,
	social SocialService,
	contextManager model.ContextManager,
	maxUploadBytes int64,
	logger *logger.Logger,
) *Submission {
	return &Submission{
		submissions:    submissions,
		feed:           feed,
		social:         social,
		contextManager: contextManager,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Submit accepts a multipart form with image, dailyPromptId and caption.
func (h *Submission) Submit(c *gin.Context) {
	userID, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	form, err := c.MultipartForm()
	if err != nil {
		if tooLarge(err) {
			handleError(c, h.logger, errTooLarge)
			return
		}
		handleError(c, h.logger, fmt.Errorf("%w: multipart form expected", model.ErrInvalidInput))
		return
	}

	dailyPromptID, err := uuid.Parse(formValue(form, "dailyPromptId"))
	if err != nil {
		handleError(c, h.logger, fmt.Errorf("%w: dailyPromptId must be a UUID", model.ErrInvalidInput))
		return
	}

	image, contentType, err := readImage(form)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	result, err := h.submissions.Submit(c.Request.Context(), model.SubmitParams{
		UserID:        userID,
		DailyPromptID: dailyPromptID,
		Image:         image,
		ContentType:   contentType,
		Caption:       formValue(form, "caption"),
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, submitResponse{
		Submission: toSubmission(result.Submission),
		Points:     result.Points,
		Streak:     result.Streak,
	})
}

func formValue(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func readImage(form *multipart.Form) ([]byte, string, error) {
	files := form.File["image"]
	if len(files) == 0 {
		return nil, "", fmt.Errorf("%w: image is required", model.ErrInvalidInput)
	}
	header := files[0]

	f, err := header.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read upload: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// Feed lists submissions by the user and their friends, optionally
// restricted to one challenge via dailyPromptId.
func (h *Submission) Feed(c *gin.Context) {
	userID, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}

	limit, offset, err := pagination(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	var dailyPromptID *uuid.UUID
	if raw := c.Query("dailyPromptId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(c, h.logger, fmt.Errorf("%w: dailyPromptId must be a UUID", model.ErrInvalidInput))
			return
		}
		dailyPromptID = &id
	}

	items, err := h.feed.Get(c.Request.Context(), userID, dailyPromptID, limit, offset)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	out := make([]feedItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toFeedItem(item))
	}
	c.JSON(http.StatusOK, gin.H{"submissions": out})
}

func (h *Submission) Like(c *gin.Context) {
	userID, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}
	submissionID, err := pathID(c, "id")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	state, err := h.social.ToggleLike(c.Request.Context(), submissionID, userID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, likeResponse{Likes: state.LikeCount, IsLiked: state.IsLiked})
}

func (h *Submission) Comment(c *gin.Context) {
	userID, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}
	submissionID, err := pathID(c, "id")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, h.logger, fmt.Errorf("%w: comment text is required", model.ErrInvalidInput))
		return
	}

	comments, err := h.social.AddComment(c.Request.Context(), submissionID, userID, req.Text)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comments": toComments(comments)})
}

func (h *Submission) Delete(c *gin.Context) {
	userID, ok := currentUser(c, h.contextManager)
	if !ok {
		return
	}
	submissionID, err := pathID(c, "id")
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	if err := h.submissions.Delete(c.Request.Context(), submissionID, userID); err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
