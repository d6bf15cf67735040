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

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository  repositories.LikeRepository
	tweetRepository repositories.TweetRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, tweetRepo repositories.TweetRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository:  likeRepo,
		tweetRepository: tweetRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/tweets/:id/likes", h.LikeTweet)
	g.DELETE("/tweets/:id/likes", h.UnlikeTweet)
}

// LikeTweet records a like. Repeated likes each add a row.
func (h *LikeHandler) LikeTweet(c echo.Context) error {
	user := middleware.CurrentUser(c)
	ctx := c.Request().Context()

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	// Verify tweet exists
	if _, err := h.tweetRepository.GetTweetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Tweet not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	like := &models.Like{UserID: user.ID, TweetID: id}
	if err := h.likeRepository.CreateLike(ctx, like); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true})
}

// UnlikeTweet removes one of the caller's likes on the tweet
func (h *LikeHandler) UnlikeTweet(c echo.Context) error {
	user := middleware.CurrentUser(c)
	ctx := c.Request().Context()

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	like, err := h.likeRepository.GetLike(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Like not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	if err := h.likeRepository.DeleteLike(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Like not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true})
}
