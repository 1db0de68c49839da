package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/alozievictor/feedbackapp/internal/core/domain"
)

const actorKey = "actor"

// Auth validates the bearer token and attaches the caller's identity to the
// request context.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims["sub"].(string)
			name, _ := claims["name"].(string)
			role, _ := claims["role"].(string)
			if sub == "" || !domain.ValidRole(role) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			c.Set(actorKey, domain.Actor{ID: sub, Name: name, Role: role})
			return next(c)
		}
	}
}

// ActorFrom extracts the identity the Auth middleware attached.
func ActorFrom(c echo.Context) (domain.Actor, bool) {
	actor, ok := c.Get(actorKey).(domain.Actor)
	return actor, ok
}
