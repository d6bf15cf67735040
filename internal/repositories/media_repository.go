package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"gorm.io/gorm"
)

// ErrMediaNotFound is returned when a media id to attach does not exist
var ErrMediaNotFound = errors.New("media not found")

// MediaRepository defines the interface for media data operations
type MediaRepository interface {
	CreateMedia(ctx context.Context, media *models.Media) error
	GetMediaByID(ctx context.Context, id uint) (*models.Media, error)
	AttachMedia(ctx context.Context, tweetID uint, mediaIDs []int64) error
	GetMediaByTweetIDs(ctx context.Context, tweetIDs []uint) (map[uint][]models.Media, error)
}

// PostgresMediaRepository implements MediaRepository for PostgreSQL
type PostgresMediaRepository struct {
	db *gorm.DB
}

// NewPostgresMediaRepository creates a new PostgresMediaRepository
func NewPostgresMediaRepository(db *gorm.DB) *PostgresMediaRepository {
	return &PostgresMediaRepository{db: db}
}

// CreateMedia stores an unattached media row
func (r *PostgresMediaRepository) CreateMedia(ctx context.Context, media *models.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *PostgresMediaRepository) GetMediaByID(ctx context.Context, id uint) (*models.Media, error) {
	var media models.Media
	if err := r.db.WithContext(ctx).First(&media, id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

// AttachMedia points every listed media at tweetID, in order. Either all of
// them are attached or, on the first missing id, none are. Ids below 1 can
// never exist and count as missing.
func (r *PostgresMediaRepository) AttachMedia(ctx context.Context, tweetID uint, mediaIDs []int64) error {
	if len(mediaIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range mediaIDs {
			if id <= 0 {
				return fmt.Errorf("%w: %d", ErrMediaNotFound, id)
			}
			var media models.Media
			err := tx.Select("id").First(&media, id).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %d", ErrMediaNotFound, id)
			}
			if err != nil {
				return err
			}
			if err := tx.Model(&media).Update("tweet_id", tweetID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetMediaByTweetIDs loads the media of several tweets in one query, keyed by
// tweet id and ordered by media id
func (r *PostgresMediaRepository) GetMediaByTweetIDs(ctx context.Context, tweetIDs []uint) (map[uint][]models.Media, error) {
	out := make(map[uint][]models.Media)
	if len(tweetIDs) == 0 {
		return out, nil
	}
	var medias []models.Media
	err := r.db.WithContext(ctx).
		Select("id", "file_name", "tweet_id").
		Where("tweet_id IN ?", tweetIDs).
		Order("id").
		Find(&medias).Error
	if err != nil {
		return nil, err
	}
	for _, m := range medias {
		if m.TweetID != nil {
			out[*m.TweetID] = append(out[*m.TweetID], m)
		}
	}
	return out, nil
}
