package middleware

import (
	"errors"
	"net/http"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// APIKeyHeader carries the caller's static credential
const APIKeyHeader = "api-key"

// UserContextKey is where the authenticated user is stored on the echo context
const UserContextKey = "user"

// APIKeyAuthMiddleware resolves the api-key header to a user. A missing header
// or unknown key is rejected with 403.
func APIKeyAuthMiddleware(userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return echo.NewHTTPError(http.StatusForbidden, "Invalid API Key")
			}

			user, err := userRepo.GetUserByAPIKey(c.Request().Context(), apiKey)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusForbidden, "Invalid API Key")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user stored by APIKeyAuthMiddleware, or nil
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(UserContextKey).(*models.User)
	return user
}
