package repositories

import (
	"context"
	"testing"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/pkg/config"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, apiKey string) *models.User {
	t.Helper()
	user := &models.User{Name: name, APIKey: apiKey}
	require.NoError(t, NewPostgresUserRepository(db).CreateUser(context.Background(), user))
	return user
}

func createTweet(t *testing.T, db *gorm.DB, owner *models.User, text string) *models.Tweet {
	t.Helper()
	tweet := &models.Tweet{ContentText: text, OwnerID: owner.ID}
	require.NoError(t, NewPostgresTweetRepository(db).CreateTweet(context.Background(), tweet))
	return tweet
}

func createMedia(t *testing.T, db *gorm.DB, name string) *models.Media {
	t.Helper()
	media := &models.Media{Data: []byte("img:" + name), FileName: name}
	require.NoError(t, NewPostgresMediaRepository(db).CreateMedia(context.Background(), media))
	return media
}

func mediaIDs(medias ...*models.Media) []int64 {
	out := make([]int64, 0, len(medias))
	for _, m := range medias {
		out = append(out, int64(m.ID))
	}
	return out
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}
