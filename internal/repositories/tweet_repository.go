package repositories

import (
	"context"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"gorm.io/gorm"
)

// TweetRepository defines the interface for tweet data operations
type TweetRepository interface {
	CreateTweet(ctx context.Context, tweet *models.Tweet) error
	GetTweetByID(ctx context.Context, id uint) (*models.Tweet, error)
	GetTweets(ctx context.Context) ([]models.Tweet, error)
	DeleteTweet(ctx context.Context, id uint) error
}

// PostgresTweetRepository implements TweetRepository for PostgreSQL
type PostgresTweetRepository struct {
	db *gorm.DB
}

// NewPostgresTweetRepository creates a new PostgresTweetRepository
func NewPostgresTweetRepository(db *gorm.DB) *PostgresTweetRepository {
	return &PostgresTweetRepository{db: db}
}

// CreateTweet inserts a tweet and commits it on its own
func (r *PostgresTweetRepository) CreateTweet(ctx context.Context, tweet *models.Tweet) error {
	return r.db.WithContext(ctx).Omit("Owner").Create(tweet).Error
}

func (r *PostgresTweetRepository) GetTweetByID(ctx context.Context, id uint) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := r.db.WithContext(ctx).First(&tweet, id).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

// GetTweets returns every tweet with its owner loaded
func (r *PostgresTweetRepository) GetTweets(ctx context.Context) ([]models.Tweet, error) {
	var tweets []models.Tweet
	if err := r.db.WithContext(ctx).Preload("Owner").Order("id").Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

// DeleteTweet removes a tweet together with its likes. Media rows keep their
// tweet_id.
func (r *PostgresTweetRepository) DeleteTweet(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tweet_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Tweet{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
