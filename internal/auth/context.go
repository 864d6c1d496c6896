package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ErrNoAuthenticatedUser is returned when the request carries no valid token.
var ErrNoAuthenticatedUser = errors.New("no authenticated user in context")

// UserIDFromContext returns the authenticated user's ID from the JWT the
// echo-jwt middleware stored on the request context.
func UserIDFromContext(c echo.Context) (uint, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, ErrNoAuthenticatedUser
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 {
		return 0, ErrNoAuthenticatedUser
	}
	return claims.UserID, nil
}
