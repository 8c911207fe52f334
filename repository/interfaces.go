package repository

import (
	"time"

	"github.com/ghostwire/ghostwire/models"
)

// UserRepository exposes user rows to the service layer.
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByIDs(ids []string) ([]models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
}

// PostRepository exposes post rows.
type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id string) (*models.Post, error)
	List(page, pageSize int) ([]models.Post, int64, error)
	ListByUser(userID string, page, pageSize int) ([]models.Post, int64, error)
	Delete(id string) error
	Count() (int64, error)
}

// CommentRepository exposes comment rows, ordered oldest first under a post.
type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(id string) (*models.Comment, error)
	ListByPost(postID string) ([]models.Comment, error)
	Delete(id string) error
	Count() (int64, error)
}

// InteractionRepository exposes post_interactions rows.
type InteractionRepository interface {
	Create(interaction *models.PostInteraction) error
	Find(postID, userID string, kind models.InteractionKind) (*models.PostInteraction, error)
	ListByPost(postID string) ([]models.PostInteraction, error)
	ListByPosts(postIDs []string) ([]models.PostInteraction, error)
	DeleteMatching(postID, userID string, kind models.InteractionKind) error
}

// CommunityRepository exposes communities and their membership relation.
// AddMember and RemoveMember mutate the membership row and the denormalized
// member counter inside one transaction.
type CommunityRepository interface {
	Create(community *models.Community) error
	FindByID(id string) (*models.Community, error)
	List(page, pageSize int) ([]models.Community, int64, error)
	Update(community *models.Community) error
	Delete(id string) error
	Count() (int64, error)

	AddMember(communityID, userID string, joinedAt time.Time) (*models.CommunityMember, error)
	RemoveMember(communityID, userID string) error
	IsMember(communityID, userID string) (bool, error)
	ListMembers(communityID string) ([]models.CommunityMember, error)
	CountMembers(communityID string) (int64, error)
	SetMemberCount(communityID string, count int64) error
}

// AdminRepository exposes admin identities and the activity log.
type AdminRepository interface {
	FindByEmail(email string) (*models.AdminUser, error)
	Upsert(admin *models.AdminUser) error
	TouchLastLogin(id string, at time.Time) error
	InsertActivity(entry *models.AdminActivityLog) error
	RecentActivity(limit int) ([]models.AdminActivityLog, error)
}
