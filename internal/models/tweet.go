package models

import "fmt"

// Tweet is a short text post owned by a user
type Tweet struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ContentText string `json:"content_text"`
	OwnerID     uint   `json:"owner_id" gorm:"index"`
	Owner       User   `json:"-" gorm:"foreignKey:OwnerID"`
}

// CreateTweetRequest defines the request body for creating a tweet.
// TweetData must be present but may be empty.
type CreateTweetRequest struct {
	TweetData     *string `json:"tweet_data" validate:"required"`
	TweetMediaIDs []int64 `json:"tweet_media_ids"`
}

// FeedLike is a single like as shown in the feed
type FeedLike struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// FeedTweet is one entry of the tweet listing
type FeedTweet struct {
	ID          uint        `json:"id"`
	Content     string      `json:"content"`
	Attachments []string    `json:"attachments"`
	Author      UserSummary `json:"author"`
	Likes       []FeedLike  `json:"likes"`
}

// MediaURL returns the public retrieval path of a media row
func MediaURL(mediaID uint) string {
	return fmt.Sprintf("/api/media/%d", mediaID)
}
