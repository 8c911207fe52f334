package mysql

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/repository"
)

type communityRepo struct {
	db *gorm.DB
}

// NewCommunityRepository returns a gorm-backed CommunityRepository.
func NewCommunityRepository(db *gorm.DB) repository.CommunityRepository {
	return &communityRepo{db: db}
}

func (r *communityRepo) Create(community *models.Community) error {
	return r.db.Create(community).Error
}

func (r *communityRepo) FindByID(id string) (*models.Community, error) {
	var community models.Community
	if err := r.db.First(&community, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &community, nil
}

func (r *communityRepo) List(page, pageSize int) ([]models.Community, int64, error) {
	var communities []models.Community
	var total int64
	if err := r.db.Model(&models.Community{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&communities).Error
	if err != nil {
		return nil, 0, err
	}
	return communities, total, nil
}

func (r *communityRepo) Update(community *models.Community) error {
	return r.db.Save(community).Error
}

func (r *communityRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("community_id = ?", id).Delete(&models.CommunityMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Community{}, "id = ?", id).Error
	})
}

func (r *communityRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Community{}).Count(&n).Error
	return n, err
}

// AddMember inserts the membership row and bumps the denormalized counter in
// one transaction. The community row is locked first so concurrent joins do
// not lose an increment.
func (r *communityRepo) AddMember(communityID, userID string, joinedAt time.Time) (*models.CommunityMember, error) {
	member := &models.CommunityMember{
		CommunityID: communityID,
		UserID:      userID,
		JoinedAt:    joinedAt,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var community models.Community
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&community, "id = ?", communityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		return tx.Model(&models.Community{}).
			Where("id = ?", communityID).
			UpdateColumn("member_count", gorm.Expr("member_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveMember deletes the membership row and decrements the counter,
// floored at zero, in one transaction.
func (r *communityRepo) RemoveMember(communityID, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var community models.Community
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&community, "id = ?", communityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}
		res := tx.Where("community_id = ? AND user_id = ?", communityID, userID).
			Delete(&models.CommunityMember{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return tx.Model(&models.Community{}).
			Where("id = ? AND member_count > 0", communityID).
			UpdateColumn("member_count", gorm.Expr("member_count - 1")).Error
	})
}

func (r *communityRepo) IsMember(communityID, userID string) (bool, error) {
	var n int64
	err := r.db.Model(&models.CommunityMember{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *communityRepo) ListMembers(communityID string) ([]models.CommunityMember, error) {
	var members []models.CommunityMember
	err := r.db.Preload("User").
		Where("community_id = ?", communityID).
		Order("joined_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *communityRepo) CountMembers(communityID string) (int64, error) {
	var n int64
	err := r.db.Model(&models.CommunityMember{}).
		Where("community_id = ?", communityID).
		Count(&n).Error
	return n, err
}

func (r *communityRepo) SetMemberCount(communityID string, count int64) error {
	return r.db.Model(&models.Community{}).
		Where("id = ?", communityID).
		UpdateColumn("member_count", count).Error
}
