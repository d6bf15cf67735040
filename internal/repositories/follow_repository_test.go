package repositories

import (
	"context"
	"testing"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFollowThenUnfollow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPostgresFollowRepository(db)
	alice := createUser(t, db, "alice", "k1")
	bob := createUser(t, db, "bob", "k2")

	require.NoError(t, repo.CreateFollow(ctx, &models.Follower{FollowerID: alice.ID, FollowingID: bob.ID}))

	follow, err := repo.GetFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteFollow(ctx, follow))

	assert.Equal(t, int64(0), countRows(t, db, &models.Follower{}, "follower_id = ? AND following_id = ?", alice.ID, bob.ID))
	_, err = repo.GetFollow(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFollowersAndFollowing(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPostgresFollowRepository(db)
	alice := createUser(t, db, "alice", "k1")
	bob := createUser(t, db, "bob", "k2")
	carol := createUser(t, db, "carol", "k3")

	require.NoError(t, repo.CreateFollow(ctx, &models.Follower{FollowerID: bob.ID, FollowingID: alice.ID}))
	require.NoError(t, repo.CreateFollow(ctx, &models.Follower{FollowerID: bob.ID, FollowingID: alice.ID}))
	require.NoError(t, repo.CreateFollow(ctx, &models.Follower{FollowerID: carol.ID, FollowingID: alice.ID}))
	require.NoError(t, repo.CreateFollow(ctx, &models.Follower{FollowerID: alice.ID, FollowingID: carol.ID}))
	require.NoError(t, repo.CreateFollow(ctx, &models.Follower{FollowerID: alice.ID, FollowingID: alice.ID}))

	followers, err := repo.GetFollowers(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, names(followers))

	following, err := repo.GetFollowing(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "carol"}, names(following))

	none, err := repo.GetFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func names(users []models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Name)
	}
	return out
}
