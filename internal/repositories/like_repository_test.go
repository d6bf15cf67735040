package repositories

import (
	"context"
	"testing"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDuplicateLikesAndSingleUnlike(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPostgresLikeRepository(db)
	alice := createUser(t, db, "alice", "k1")
	tweet := createTweet(t, db, alice, "hi")

	require.NoError(t, repo.CreateLike(ctx, &models.Like{UserID: alice.ID, TweetID: tweet.ID}))
	require.NoError(t, repo.CreateLike(ctx, &models.Like{UserID: alice.ID, TweetID: tweet.ID}))
	assert.Equal(t, int64(2), countRows(t, db, &models.Like{}, "tweet_id = ? AND user_id = ?", tweet.ID, alice.ID))

	like, err := repo.GetLike(ctx, tweet.ID, alice.ID)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteLike(ctx, like))
	assert.Equal(t, int64(1), countRows(t, db, &models.Like{}, "tweet_id = ? AND user_id = ?", tweet.ID, alice.ID))

	like, err = repo.GetLike(ctx, tweet.ID, alice.ID)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteLike(ctx, like))

	_, err = repo.GetLike(ctx, tweet.ID, alice.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.DeleteLike(ctx, like), gorm.ErrRecordNotFound)
}

func TestGetLikesByTweetIDs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPostgresLikeRepository(db)
	alice := createUser(t, db, "alice", "k1")
	bob := createUser(t, db, "bob", "k2")
	t1 := createTweet(t, db, alice, "one")
	t2 := createTweet(t, db, alice, "two")

	require.NoError(t, repo.CreateLike(ctx, &models.Like{UserID: bob.ID, TweetID: t1.ID}))
	require.NoError(t, repo.CreateLike(ctx, &models.Like{UserID: alice.ID, TweetID: t1.ID}))

	byTweet, err := repo.GetLikesByTweetIDs(ctx, []uint{t1.ID, t2.ID})
	require.NoError(t, err)
	require.Len(t, byTweet[t1.ID], 2)
	assert.Equal(t, "bob", byTweet[t1.ID][0].User.Name)
	assert.Equal(t, "alice", byTweet[t1.ID][1].User.Name)
	assert.Empty(t, byTweet[t2.ID])
}
