package sqlstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yoockh/docchat/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Session{}, &models.Message{}))
	return db
}

func TestSessionRepo_EnsureIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepo(newTestDB(t))

	require.NoError(t, repo.Ensure(ctx, "s1"))
	require.NoError(t, repo.Ensure(ctx, "s1"))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "s1", rows[0].ID)
}

func TestSessionRepo_TouchReordersList(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepo(newTestDB(t))

	require.NoError(t, repo.Ensure(ctx, "a"))
	require.NoError(t, repo.Ensure(ctx, "b"))
	require.NoError(t, repo.Touch(ctx, "a"))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].ID)
	assert.Equal(t, "b", rows[1].ID)
}

func TestSessionRepo_ListEmpty(t *testing.T) {
	rows, err := NewSessionRepo(newTestDB(t)).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestMessageRepo_ListBySessionAscending(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepo(newTestDB(t))

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Insert(ctx, &models.Message{
			SessionID: "s1",
			Role:      models.RoleUser,
			Content:   fmt.Sprintf("msg-%d", i),
		}))
	}
	require.NoError(t, repo.Insert(ctx, &models.Message{
		SessionID: "other",
		Role:      models.RoleUser,
		Content:   "not mine",
	}))

	rows, err := repo.ListBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i := 1; i < len(rows); i++ {
		assert.Greater(t, rows[i].ID, rows[i-1].ID)
		assert.Equal(t, "s1", rows[i].SessionID)
	}
}

func TestMessageRepo_ListBySessionUnknownIsEmpty(t *testing.T) {
	rows, err := NewMessageRepo(newTestDB(t)).ListBySession(context.Background(), "nope")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestMessageRepo_LatestN(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepo(newTestDB(t))

	for i := 1; i <= 15; i++ {
		require.NoError(t, repo.Insert(ctx, &models.Message{
			SessionID: "s1",
			Role:      models.RoleUser,
			Content:   fmt.Sprintf("msg-%d", i),
		}))
	}

	rows, err := repo.LatestN(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, rows, 10)

	// Newest-first.
	assert.Equal(t, "msg-15", rows[0].Content)
	assert.Equal(t, "msg-6", rows[9].Content)
	for i := 1; i < len(rows); i++ {
		assert.Less(t, rows[i].ID, rows[i-1].ID)
	}
}

func TestMessageRepo_LatestNDefaultsLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepo(newTestDB(t))

	for i := 1; i <= 12; i++ {
		require.NoError(t, repo.Insert(ctx, &models.Message{
			SessionID: "s1",
			Role:      models.RoleUser,
			Content:   fmt.Sprintf("msg-%d", i),
		}))
	}

	rows, err := repo.LatestN(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Len(t, rows, 10)
}
