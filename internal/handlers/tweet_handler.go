package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/tweetbox/backend/internal/middleware"
	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TweetHandler handles HTTP requests related to tweets
type TweetHandler struct {
	tweetRepository repositories.TweetRepository
	mediaRepository repositories.MediaRepository
	log             *zap.Logger
}

// NewTweetHandler creates a new TweetHandler
func NewTweetHandler(tweetRepo repositories.TweetRepository, mediaRepo repositories.MediaRepository, log *zap.Logger) *TweetHandler {
	return &TweetHandler{
		tweetRepository: tweetRepo,
		mediaRepository: mediaRepo,
		log:             log,
	}
}

// RegisterTweetRoutes registers tweet-related routes
func (h *TweetHandler) RegisterTweetRoutes(g *echo.Group) {
	g.POST("/tweets", h.CreateTweet)
	g.DELETE("/tweets/:id", h.DeleteTweet)
}

// CreateTweet creates a tweet and attaches the listed media to it. If an
// attachment fails the tweet itself is kept.
func (h *TweetHandler) CreateTweet(c echo.Context) error {
	user := middleware.CurrentUser(c)
	ctx := c.Request().Context()

	var req models.CreateTweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tweet := &models.Tweet{
		ContentText: *req.TweetData,
		OwnerID:     user.ID,
	}
	if err := h.tweetRepository.CreateTweet(ctx, tweet); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	if err := h.mediaRepository.AttachMedia(ctx, tweet.ID, req.TweetMediaIDs); err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			h.log.Info("tweet created without attachments",
				zap.Uint("tweet_id", tweet.ID),
				zap.Error(err),
			)
			return echo.NewHTTPError(http.StatusNotFound, "Media not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true, "tweet_id": tweet.ID})
}

// DeleteTweet deletes a tweet owned by the caller, along with its likes
func (h *TweetHandler) DeleteTweet(c echo.Context) error {
	user := middleware.CurrentUser(c)
	ctx := c.Request().Context()

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	tweet, err := h.tweetRepository.GetTweetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Tweet not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	// Ensure the user deleting the tweet is the owner
	if tweet.OwnerID != user.ID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this tweet")
	}

	if err := h.tweetRepository.DeleteTweet(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Tweet not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true})
}
