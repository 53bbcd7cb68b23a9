package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Post{}, &domain.Vote{}))
	return db
}

func seedPost(t *testing.T, db *gorm.DB, categoryID string, score int) *domain.Post {
	t.Helper()
	post := &domain.Post{
		ID:         uuid.New().String(),
		CategoryID: categoryID,
		AuthorID:   uuid.New().String(),
		Title:      "test post",
		Body:       "body",
		Score:      score,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestVoteRepository_Cast_NewVote(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)
	post := seedPost(t, db, "street-eats", 24)

	newScore, deleted, err := repo.Cast(post.ID, "voter-1", 1, 500, -10)
	require.NoError(t, err)
	assert.Equal(t, 25, newScore)
	assert.False(t, deleted)

	var stored domain.Post
	require.NoError(t, db.First(&stored, "id = ?", post.ID).Error)
	assert.Equal(t, 25, stored.Score)
	assert.False(t, stored.IsArchived)
}

func TestVoteRepository_ScoreMatchesVoteSum(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)
	post := seedPost(t, db, "street-eats", 1)

	_, _, err := repo.Cast(post.ID, "voter-1", 1, 500, -10)
	require.NoError(t, err)
	_, _, err = repo.Cast(post.ID, "voter-2", 1, 500, -10)
	require.NoError(t, err)
	_, _, err = repo.Cast(post.ID, "voter-3", -1, 500, -10)
	require.NoError(t, err)
	// voter-1 flips to a downvote
	_, _, err = repo.Cast(post.ID, "voter-1", -1, 500, -10)
	require.NoError(t, err)

	sum, err := repo.SumForPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, sum)

	var stored domain.Post
	require.NoError(t, db.First(&stored, "id = ?", post.ID).Error)
	assert.Equal(t, 1+sum, stored.Score)
}

func TestVoteRepository_Cast_SwitchedVoteMovesScoreByTwo(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)
	post := seedPost(t, db, "street-eats", 1)

	newScore, _, err := repo.Cast(post.ID, "voter-1", 1, 500, -10)
	require.NoError(t, err)
	assert.Equal(t, 2, newScore)

	// flipping the same user's vote undoes the old value and applies the new
	newScore, _, err = repo.Cast(post.ID, "voter-1", -1, 500, -10)
	require.NoError(t, err)
	assert.Equal(t, 0, newScore)

	vote, err := repo.Find(post.ID, "voter-1")
	require.NoError(t, err)
	assert.Equal(t, -1, vote.Value)
}

func TestVoteRepository_Cast_SameValueIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)
	post := seedPost(t, db, "street-eats", 5)

	newScore, _, err := repo.Cast(post.ID, "voter-1", 1, 500, -10)
	require.NoError(t, err)
	assert.Equal(t, 6, newScore)

	newScore, _, err = repo.Cast(post.ID, "voter-1", 1, 500, -10)
	require.NoError(t, err)
	assert.Equal(t, 6, newScore)
}

func TestVoteRepository_Cast_AutoDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)
	post := seedPost(t, db, "street-eats", -9)

	newScore, deleted, err := repo.Cast(post.ID, "voter-1", -1, 500, -10)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, -10, newScore)

	err = db.First(&domain.Post{}, "id = ?", post.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var voteCount int64
	require.NoError(t, db.Model(&domain.Vote{}).Where("post_id = ?", post.ID).Count(&voteCount).Error)
	assert.Zero(t, voteCount)
}

func TestVoteRepository_Cast_ArchivesAtThreshold(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)
	post := seedPost(t, db, "street-eats", 499)

	newScore, deleted, err := repo.Cast(post.ID, "voter-1", 1, 500, -10)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 500, newScore)

	var stored domain.Post
	require.NoError(t, db.First(&stored, "id = ?", post.ID).Error)
	assert.True(t, stored.IsArchived)

	// dropping back below the threshold clears the flag again
	newScore, _, err = repo.Cast(post.ID, "voter-2", -1, 500, -10)
	require.NoError(t, err)
	assert.Equal(t, 499, newScore)
	require.NoError(t, db.First(&stored, "id = ?", post.ID).Error)
	assert.False(t, stored.IsArchived)
}

func TestVoteRepository_Cast_MissingPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)

	_, _, err := repo.Cast("nope", "voter-1", 1, 500, -10)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
