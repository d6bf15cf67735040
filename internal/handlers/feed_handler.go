package handlers

import (
	"net/http"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler lists tweets with their authors, attachments and likes
type FeedHandler struct {
	tweetRepository repositories.TweetRepository
	mediaRepository repositories.MediaRepository
	likeRepository  repositories.LikeRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(tweetRepo repositories.TweetRepository, mediaRepo repositories.MediaRepository, likeRepo repositories.LikeRepository) *FeedHandler {
	return &FeedHandler{
		tweetRepository: tweetRepo,
		mediaRepository: mediaRepo,
		likeRepository:  likeRepo,
	}
}

// RegisterFeedRoutes registers feed routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/tweets", h.GetTweets)
}

// GetTweets returns every tweet in the system, unfiltered and unpaginated
func (h *FeedHandler) GetTweets(c echo.Context) error {
	ctx := c.Request().Context()

	tweets, err := h.tweetRepository.GetTweets(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	ids := make([]uint, 0, len(tweets))
	for _, t := range tweets {
		ids = append(ids, t.ID)
	}

	medias, err := h.mediaRepository.GetMediaByTweetIDs(ctx, ids)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}
	likes, err := h.likeRepository.GetLikesByTweetIDs(ctx, ids)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}

	feed := make([]models.FeedTweet, 0, len(tweets))
	for _, t := range tweets {
		attachments := make([]string, 0, len(medias[t.ID]))
		for _, m := range medias[t.ID] {
			attachments = append(attachments, models.MediaURL(m.ID))
		}
		likeList := make([]models.FeedLike, 0, len(likes[t.ID]))
		for _, l := range likes[t.ID] {
			likeList = append(likeList, models.FeedLike{UserID: l.UserID, Name: l.User.Name})
		}
		feed = append(feed, models.FeedTweet{
			ID:          t.ID,
			Content:     t.ContentText,
			Attachments: attachments,
			Author:      models.UserSummary{ID: t.Owner.ID, Name: t.Owner.Name},
			Likes:       likeList,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true, "tweets": feed})
}
