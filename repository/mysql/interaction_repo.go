package mysql

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/repository"
)

type interactionRepo struct {
	db *gorm.DB
}

// NewInteractionRepository returns a gorm-backed InteractionRepository.
func NewInteractionRepository(db *gorm.DB) repository.InteractionRepository {
	return &interactionRepo{db: db}
}

func (r *interactionRepo) Create(interaction *models.PostInteraction) error {
	return r.db.Create(interaction).Error
}

func (r *interactionRepo) Find(postID, userID string, kind models.InteractionKind) (*models.PostInteraction, error) {
	var row models.PostInteraction
	err := r.db.Where("post_id = ? AND user_id = ? AND interaction_type = ?", postID, userID, kind).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *interactionRepo) ListByPost(postID string) ([]models.PostInteraction, error) {
	var rows []models.PostInteraction
	if err := r.db.Where("post_id = ?", postID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *interactionRepo) ListByPosts(postIDs []string) ([]models.PostInteraction, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var rows []models.PostInteraction
	if err := r.db.Where("post_id IN ?", postIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteMatching removes every row for the exact (post, user, kind) tuple.
func (r *interactionRepo) DeleteMatching(postID, userID string, kind models.InteractionKind) error {
	return r.db.Where("post_id = ? AND user_id = ? AND interaction_type = ?", postID, userID, kind).
		Delete(&models.PostInteraction{}).Error
}
