package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foodandtravelmag/mag-backend/internal/domain"
)

// VoteRepository accesses the votes table and owns the score
// read-modify-write. Cast runs in a single transaction with the post row
// locked, so two concurrent votes on the same post serialize instead of
// losing an update.
type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// Find returns the (post, user) vote row; gorm.ErrRecordNotFound when absent
func (r *VoteRepository) Find(postID, userID string) (*domain.Vote, error) {
	var vote domain.Vote
	if err := r.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&vote).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}

// Cast applies one vote and recomputes the post's score incrementally.
// A prior vote with a different value contributes delta = new - old; the same
// value is re-written as a no-op. When the new score reaches autoDeleteScore
// the post and all its votes are removed in the same transaction. Otherwise
// the post is persisted with {score, is_archived: score >= archiveScore}.
// Returns gorm.ErrRecordNotFound when the post does not exist.
func (r *VoteRepository) Cast(postID, userID string, value, archiveScore, autoDeleteScore int) (newScore int, deleted bool, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		var post domain.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", postID).First(&post).Error; err != nil {
			return err
		}

		var existing domain.Vote
		findErr := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error

		switch {
		case findErr == nil:
			newScore = post.Score + (value - existing.Value)
			if err := tx.Model(&domain.Vote{}).
				Where("post_id = ? AND user_id = ?", postID, userID).
				Update("value", value).Error; err != nil {
				return err
			}
		case findErr == gorm.ErrRecordNotFound:
			newScore = post.Score + value
			if err := tx.Create(&domain.Vote{PostID: postID, UserID: userID, Value: value}).Error; err != nil {
				return err
			}
		default:
			return findErr
		}

		if newScore <= autoDeleteScore {
			if err := tx.Where("post_id = ?", postID).Delete(&domain.Vote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", postID).Delete(&domain.Post{}).Error; err != nil {
				return err
			}
			deleted = true
			return nil
		}

		return tx.Model(&domain.Post{}).Where("id = ?", postID).Updates(map[string]interface{}{
			"score":       newScore,
			"is_archived": newScore >= archiveScore,
		}).Error
	})
	return newScore, deleted, err
}

// SumForPost aggregates the current vote values of a post (diagnostics; the
// live score is maintained incrementally, never derived from this).
func (r *VoteRepository) SumForPost(postID string) (int, error) {
	var sum *int
	err := r.db.Model(&domain.Vote{}).Where("post_id = ?", postID).
		Select("SUM(value)").Scan(&sum).Error
	if err != nil || sum == nil {
		return 0, err
	}
	return *sum, nil
}
