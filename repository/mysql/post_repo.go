package mysql

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/repository"
)

type postRepo struct {
	db *gorm.DB
}

// NewPostRepository returns a gorm-backed PostRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepo) FindByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("User").First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List returns posts newest first; ties on created_at fall back to id so
// pagination stays deterministic.
func (r *postRepo) List(page, pageSize int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64
	if err := r.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Preload("User").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepo) ListByUser(userID string, page, pageSize int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64
	q := r.db.Where("user_id = ?", userID)
	if err := q.Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("User").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Delete removes the post along with its comments and interaction rows.
func (r *postRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostInteraction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, "id = ?", id).Error
	})
}

func (r *postRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Post{}).Count(&n).Error
	return n, err
}
