package mysql

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/repository"
)

type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepository returns a gorm-backed AdminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) FindByEmail(email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := r.db.First(&admin, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) Upsert(admin *models.AdminUser) error {
	existing, err := r.FindByEmail(admin.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return r.db.Create(admin).Error
		}
		return err
	}
	admin.ID = existing.ID
	admin.CreatedAt = existing.CreatedAt
	return r.db.Save(admin).Error
}

func (r *adminRepo) TouchLastLogin(id string, at time.Time) error {
	return r.db.Model(&models.AdminUser{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

func (r *adminRepo) InsertActivity(entry *models.AdminActivityLog) error {
	return r.db.Create(entry).Error
}

// RecentActivity returns the newest entries first, admin identity included.
func (r *adminRepo) RecentActivity(limit int) ([]models.AdminActivityLog, error) {
	var entries []models.AdminActivityLog
	err := r.db.Preload("Admin").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
