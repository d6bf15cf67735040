package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/tweetbox/backend/internal/middleware"
	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.DELETE("/users/:id/follow", h.UnfollowUser)
}

// FollowUser adds an edge from the caller to the target user. Self-follows
// and repeated follows are accepted.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	user := middleware.CurrentUser(c)
	ctx := c.Request().Context()

	targetID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.userRepository.GetUserByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	follow := &models.Follower{
		FollowerID:  user.ID,
		FollowingID: targetID,
	}
	if err := h.followRepository.CreateFollow(ctx, follow); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true})
}

// UnfollowUser removes one edge from the caller to the target user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	user := middleware.CurrentUser(c)
	ctx := c.Request().Context()

	targetID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	follow, err := h.followRepository.GetFollow(ctx, user.ID, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Follower not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	if err := h.followRepository.DeleteFollow(ctx, follow); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Follower not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true})
}
