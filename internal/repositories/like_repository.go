package repositories

import (
	"context"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	CreateLike(ctx context.Context, like *models.Like) error
	GetLike(ctx context.Context, tweetID, userID uint) (*models.Like, error)
	DeleteLike(ctx context.Context, like *models.Like) error
	GetLikesByTweetIDs(ctx context.Context, tweetIDs []uint) (map[uint][]models.Like, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike inserts a like without checking for an existing one
func (r *PostgresLikeRepository) CreateLike(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).Omit("User", "Tweet").Create(like).Error
}

// GetLike retrieves the first like of tweetID by userID
func (r *PostgresLikeRepository) GetLike(ctx context.Context, tweetID, userID uint) (*models.Like, error) {
	var like models.Like
	if err := r.db.WithContext(ctx).Where("tweet_id = ? AND user_id = ?", tweetID, userID).Order("id").First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

// DeleteLike removes exactly one like row
func (r *PostgresLikeRepository) DeleteLike(ctx context.Context, like *models.Like) error {
	res := r.db.WithContext(ctx).Delete(&models.Like{}, like.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetLikesByTweetIDs loads the likes of several tweets with their users in one
// round, keyed by tweet id
func (r *PostgresLikeRepository) GetLikesByTweetIDs(ctx context.Context, tweetIDs []uint) (map[uint][]models.Like, error) {
	out := make(map[uint][]models.Like)
	if len(tweetIDs) == 0 {
		return out, nil
	}
	var likes []models.Like
	if err := r.db.WithContext(ctx).Preload("User").Where("tweet_id IN ?", tweetIDs).Order("id").Find(&likes).Error; err != nil {
		return nil, err
	}
	for _, l := range likes {
		out[l.TweetID] = append(out[l.TweetID], l)
	}
	return out, nil
}
