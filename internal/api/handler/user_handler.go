package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/ports"
)

// UserHandler handles HTTP requests for account management.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Company  *string `json:"company"`
	Position *string `json:"position"`
	Avatar   *string `json:"avatar"`
}

type createClientRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Company string `json:"company"`
}

type createClientResponse struct {
	User        *domain.User `json:"user"`
	InviteToken string       `json:"invite_token"`
}

// List returns all users, optionally filtered to clients (admin only).
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        clients  query     bool    false  "When true, return client accounts only"
// @Success      200      {array}   domain.User
// @Failure      403      {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	clientsOnly := c.QueryParam("clients") == "true"
	users, err := h.userService.List(c.Request().Context(), actor, clientsOnly)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

// Get returns a single user; callers may fetch themselves, admins anyone.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Update edits a user's profile; callers may edit themselves, admins anyone.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.userService.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateUserInput{
		Name:     req.Name,
		Company:  req.Company,
		Position: req.Position,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// Delete removes a user account (admin only). Projects owned by the client
// are left in place.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ToggleActive flips the account's active flag (admin only).
//
// @Summary      Toggle user active status
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/status [patch]
func (h *UserHandler) ToggleActive(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	user, err := h.userService.ToggleActive(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// CreateClient provisions a client account and returns its invite token
// (admin only).
//
// @Summary      Create a client account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  createClientResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /users/clients [post]
func (h *UserHandler) CreateClient(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.userService.CreateClient(c.Request().Context(), actor, ports.CreateClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createClientResponse{
		User:        result.User,
		InviteToken: result.InviteToken,
	})
}

// Profile returns the caller's own record.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), actor, actor.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateProfile edits the caller's own record.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      401   {object}  errorResponse
// @Router       /profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.userService.Update(c.Request().Context(), actor, actor.ID, ports.UpdateUserInput{
		Name:     req.Name,
		Company:  req.Company,
		Position: req.Position,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}
