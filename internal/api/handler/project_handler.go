package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project lifecycle operations.
type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

type createProjectRequest struct {
	Name        string `json:"name"         validate:"required"`
	Description string `json:"description"`
	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email" validate:"omitempty,email"`
}

type updateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=awaiting_feedback feedback_received in_progress completed"`
}

type createProjectResponse struct {
	Project     *domain.Project `json:"project"`
	InviteToken string          `json:"invite_token,omitempty"`
}

type projectDetailResponse struct {
	Project  *domain.Project         `json:"project"`
	Files    []*domain.File          `json:"files"`
	Activity []*domain.ActivityEntry `json:"activity"`
}

// List returns projects visible to the caller, most recently updated first.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        clientId   query     string  false  "Filter by owning client (admin only)"
// @Param        status     query     string  false  "Filter by status"
// @Param        search     query     string  false  "Case-insensitive name search"
// @Success      200        {array}   domain.Project
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	projects, err := h.projectService.List(c.Request().Context(), actor, ports.ListProjectsFilter{
		ClientID: c.QueryParam("clientId"),
		Status:   domain.ProjectStatus(c.QueryParam("status")),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projects)
}

// Create creates a project for an existing client, or provisions a new
// client inline when client_name and client_email are given (admin only).
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  createProjectResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.projectService.Create(c.Request().Context(), actor, ports.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createProjectResponse{
		Project:     result.Project,
		InviteToken: result.InviteToken,
	})
}

// Get returns the full project view: document, files, and activity log.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  projectDetailResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	detail, err := h.projectService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectDetailResponse{
		Project:  detail.Project,
		Files:    detail.Files,
		Activity: detail.Activity,
	})
}

// Update partially updates a project (admin only).
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project ID"
// @Param        body  body      updateProjectRequest  true  "Fields to change"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		in.Status = &status
	}

	project, err := h.projectService.Update(c.Request().Context(), actor, c.Param("id"), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, project)
}

// Delete removes a project and everything attached to it (admin only).
//
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "Project ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.projectService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
