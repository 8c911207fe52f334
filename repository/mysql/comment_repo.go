package mysql

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/repository"
)

type commentRepo struct {
	db *gorm.DB
}

// NewCommentRepository returns a gorm-backed CommentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepo) FindByID(id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Preload("User").First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// ListByPost returns a post's comments oldest first.
func (r *commentRepo) ListByPost(postID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepo) Delete(id string) error {
	return r.db.Delete(&models.Comment{}, "id = ?", id).Error
}

func (r *commentRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Comment{}).Count(&n).Error
	return n, err
}
