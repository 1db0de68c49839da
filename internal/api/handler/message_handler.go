package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alozievictor/feedbackapp/internal/api/metrics"
	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

// MessageHandler handles HTTP requests for the project message thread.
type MessageHandler struct {
	messageService ports.MessageService
}

func NewMessageHandler(messageService ports.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// ListByProject returns a project's message thread, oldest first.
//
// @Summary      List a project's messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id          path     string  true  "Project ID"
// @Success      200         {array}  domain.Message
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /projects/{id}/messages [get]
func (h *MessageHandler) ListByProject(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	messages, err := h.messageService.ListByProject(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messages)
}

// Create posts a message with optional attachments, sent as multipart form
// data: a "text" field plus up to five "attachments" file parts. A plain
// JSON body with a "text" field also works when there are no attachments.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true   "Project ID"
// @Param        text         formData  string  false  "Message text"
// @Param        attachments  formData  file    false  "Up to five attachments"
// @Success      201          {object}  domain.Message
// @Failure      400          {object}  errorResponse
// @Failure      403          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /projects/{id}/messages [post]
func (h *MessageHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	in := ports.CreateMessageInput{ProjectID: c.Param("id")}

	form, err := c.MultipartForm()
	if err == nil {
		if vals := form.Value["text"]; len(vals) > 0 {
			in.Text = vals[0]
		}
		parts := form.File["attachments"]
		if len(parts) > domain.MaxMessageAttachments {
			return fmt.Errorf("%w: at most %d attachments per message", domain.ErrValidation, domain.MaxMessageAttachments)
		}
		for _, part := range parts {
			src, err := part.Open()
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "unreadable attachment")
			}
			defer src.Close()
			in.Attachments = append(in.Attachments, ports.AttachmentUpload{
				Filename: part.Filename,
				MIMEType: part.Header.Get("Content-Type"),
				Size:     part.Size,
				Content:  src,
			})
		}
	} else {
		var req struct {
			Text string `json:"text"`
		}
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		in.Text = req.Text
	}

	msg, err := h.messageService.Create(c.Request().Context(), actor, in)
	if err != nil {
		return err
	}

	metrics.MessagesSentTotal.Inc()

	return c.JSON(http.StatusCreated, msg)
}

// MarkRead marks a message as read. Already-read messages are left as they
// are and still return 204.
//
// @Summary      Mark a message read
// @Tags         messages
// @Security     BearerAuth
// @Param        id  path  string  true  "Message ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /messages/{id}/read [patch]
func (h *MessageHandler) MarkRead(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.messageService.MarkRead(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
