package repositories

import (
	"context"
	"testing"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateAndGetMedia(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresMediaRepository(db)
	media := createMedia(t, db, "x.jpg")

	got, err := repo.GetMediaByID(context.Background(), media.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("img:x.jpg"), got.Data)
	assert.Equal(t, "x.jpg", got.FileName)
	assert.Nil(t, got.TweetID)

	_, err = repo.GetMediaByID(context.Background(), media.ID+1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAttachMedia(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPostgresMediaRepository(db)
	alice := createUser(t, db, "alice", "k1")
	tweet := createTweet(t, db, alice, "pics")
	m1 := createMedia(t, db, "1.png")
	m2 := createMedia(t, db, "2.png")
	m3 := createMedia(t, db, "3.png")

	require.NoError(t, repo.AttachMedia(ctx, tweet.ID, mediaIDs(m2, m1)))

	assert.Equal(t, int64(2), countRows(t, db, &models.Media{}, "tweet_id = ?", tweet.ID))
	got, err := repo.GetMediaByID(ctx, m3.ID)
	require.NoError(t, err)
	assert.Nil(t, got.TweetID)
}

func TestAttachMediaMissingRollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPostgresMediaRepository(db)
	alice := createUser(t, db, "alice", "k1")
	tweet := createTweet(t, db, alice, "pics")
	m1 := createMedia(t, db, "1.png")

	err := repo.AttachMedia(ctx, tweet.ID, []int64{int64(m1.ID), int64(m1.ID) + 50})
	assert.ErrorIs(t, err, ErrMediaNotFound)

	got, err := repo.GetMediaByID(ctx, m1.ID)
	require.NoError(t, err)
	assert.Nil(t, got.TweetID, "attachment must be rolled back")
}

func TestAttachMediaNonPositiveID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPostgresMediaRepository(db)
	alice := createUser(t, db, "alice", "k1")
	tweet := createTweet(t, db, alice, "pics")
	m1 := createMedia(t, db, "1.png")

	for _, bad := range []int64{0, -1} {
		err := repo.AttachMedia(ctx, tweet.ID, []int64{int64(m1.ID), bad})
		assert.ErrorIs(t, err, ErrMediaNotFound)
	}

	got, err := repo.GetMediaByID(ctx, m1.ID)
	require.NoError(t, err)
	assert.Nil(t, got.TweetID)
}

func TestAttachMediaEmpty(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, NewPostgresMediaRepository(db).AttachMedia(context.Background(), 1, nil))
}

func TestGetMediaByTweetIDs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPostgresMediaRepository(db)
	alice := createUser(t, db, "alice", "k1")
	t1 := createTweet(t, db, alice, "one")
	t2 := createTweet(t, db, alice, "two")
	m1 := createMedia(t, db, "1.png")
	m2 := createMedia(t, db, "2.png")
	m3 := createMedia(t, db, "3.png")
	createMedia(t, db, "loose.png")

	require.NoError(t, repo.AttachMedia(ctx, t1.ID, mediaIDs(m1, m3)))
	require.NoError(t, repo.AttachMedia(ctx, t2.ID, mediaIDs(m2)))

	byTweet, err := repo.GetMediaByTweetIDs(ctx, []uint{t1.ID, t2.ID})
	require.NoError(t, err)
	require.Len(t, byTweet[t1.ID], 2)
	assert.Equal(t, m1.ID, byTweet[t1.ID][0].ID)
	assert.Equal(t, m3.ID, byTweet[t1.ID][1].ID)
	require.Len(t, byTweet[t2.ID], 1)
	assert.Equal(t, m2.ID, byTweet[t2.ID][0].ID)

	empty, err := repo.GetMediaByTweetIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
