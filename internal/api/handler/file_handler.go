package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alozievictor/feedbackapp/internal/api/metrics"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

// FileHandler handles HTTP requests for project assets.
type FileHandler struct {
	fileService ports.FileService
}

func NewFileHandler(fileService ports.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// Upload stores one asset sent as multipart form data (admin only).
// The blob is read from the "file" part; an optional "name" field overrides
// the display name.
//
// @Summary      Upload a file to a project
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      string  true   "Project ID"
// @Param        file        formData  file    true   "The asset"
// @Param        name        formData  string  false  "Display name override"
// @Success      201         {object}  domain.File
// @Failure      400         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /projects/{id}/files [post]
func (h *FileHandler) Upload(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	file, err := h.fileService.Upload(c.Request().Context(), actor, ports.UploadFileInput{
		ProjectID:    c.Param("id"),
		Name:         c.FormValue("name"),
		OriginalName: fh.Filename,
		MIMEType:     fh.Header.Get("Content-Type"),
		Size:         fh.Size,
		Content:      src,
	})
	if err != nil {
		return err
	}

	metrics.FilesUploadedTotal.WithLabelValues(file.MIMEType).Inc()
	metrics.UploadBytesTotal.Add(float64(file.Size))

	return c.JSON(http.StatusCreated, file)
}

// ListByProject returns a project's files, newest first.
//
// @Summary      List a project's files
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id          path     string  true  "Project ID"
// @Success      200         {array}  domain.File
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /projects/{id}/files [get]
func (h *FileHandler) ListByProject(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	files, err := h.fileService.ListByProject(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, files)
}

// Get returns a single file record.
//
// @Summary      Get a file
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "File ID"
// @Success      200  {object}  domain.File
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /files/{id} [get]
func (h *FileHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	file, err := h.fileService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, file)
}

// Delete removes a file, its blob, and its feedback (admin only).
//
// @Summary      Delete a file
// @Tags         files
// @Security     BearerAuth
// @Param        id  path  string  true  "File ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /files/{id} [delete]
func (h *FileHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.fileService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
