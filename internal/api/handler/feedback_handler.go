package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alozievictor/feedbackapp/internal/api/metrics"
	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

// FeedbackHandler handles HTTP requests for positioned feedback on files.
type FeedbackHandler struct {
	feedbackService ports.FeedbackService
}

func NewFeedbackHandler(feedbackService ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

type createFeedbackRequest struct {
	Content string   `json:"content" validate:"required"`
	X       *float64 `json:"x"`
	Y       *float64 `json:"y"`
	Width   *float64 `json:"width"`
	Height  *float64 `json:"height"`
}

type updateFeedbackRequest struct {
	Content *string  `json:"content"`
	Status  *string  `json:"status" validate:"omitempty,oneof=open resolved rejected"`
	X       *float64 `json:"x"`
	Y       *float64 `json:"y"`
	Width   *float64 `json:"width"`
	Height  *float64 `json:"height"`
}

// ListByFile returns a file's feedback, newest first.
//
// @Summary      List feedback on a file
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        id       path     string  true  "File ID"
// @Success      200      {array}  domain.Feedback
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /files/{id}/feedback [get]
func (h *FeedbackHandler) ListByFile(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	items, err := h.feedbackService.ListByFile(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

// Create adds feedback on a file at an optional position.
//
// @Summary      Add feedback to a file
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "File ID"
// @Param        body     body      createFeedbackRequest  true  "Feedback content and position"
// @Success      201      {object}  domain.Feedback
// @Failure      400      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /files/{id}/feedback [post]
func (h *FeedbackHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.feedbackService.Create(c.Request().Context(), actor, ports.CreateFeedbackInput{
		FileID:  c.Param("id"),
		Content: req.Content,
		X:       req.X,
		Y:       req.Y,
		Width:   req.Width,
		Height:  req.Height,
	})
	if err != nil {
		return err
	}

	metrics.FeedbackCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, item)
}

// Update edits feedback content, status, or position; creator or admin only.
//
// @Summary      Update feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Feedback ID"
// @Param        body  body      updateFeedbackRequest  true  "Fields to change"
// @Success      200   {object}  domain.Feedback
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /feedback/{id} [put]
func (h *FeedbackHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.UpdateFeedbackInput{
		Content: req.Content,
		X:       req.X,
		Y:       req.Y,
		Width:   req.Width,
		Height:  req.Height,
	}
	if req.Status != nil {
		status := domain.FeedbackStatus(*req.Status)
		in.Status = &status
	}

	item, err := h.feedbackService.Update(c.Request().Context(), actor, c.Param("id"), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, item)
}

// Delete removes feedback; creator or admin only.
//
// @Summary      Delete feedback
// @Tags         feedback
// @Security     BearerAuth
// @Param        id  path  string  true  "Feedback ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /feedback/{id} [delete]
func (h *FeedbackHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.feedbackService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ToggleResolve flips feedback between open and resolved (admin only).
//
// @Summary      Toggle feedback resolution
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Feedback ID"
// @Success      200  {object}  domain.Feedback
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /feedback/{id}/resolve [patch]
func (h *FeedbackHandler) ToggleResolve(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	item, err := h.feedbackService.ToggleResolve(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, item)
}
