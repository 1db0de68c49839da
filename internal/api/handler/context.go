package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alozievictor/feedbackapp/internal/api/middleware"
	"github.com/alozievictor/feedbackapp/internal/core/domain"
)

// ctxActor extracts the identity injected by the Auth middleware and
// fast-fails before any service call. An empty actor means the route was
// registered without the middleware, which is a wiring bug — reject with 401
// rather than letting an anonymous request through.
func ctxActor(c echo.Context) (domain.Actor, error) {
	actor, ok := middleware.ActorFrom(c)
	if !ok || actor.ID == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return actor, nil
}
