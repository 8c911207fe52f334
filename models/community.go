package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Community is a named group with an owning user. MemberCount is denormalized
// and maintained inside the same transaction as membership mutations; it must
// always agree with the community_members relation.
type Community struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string    `gorm:"size:512" json:"image_url,omitempty"`
	OwnerID     string    `gorm:"type:char(36);index;not null" json:"owner_id"`
	MemberCount int64     `gorm:"not null;default:0" json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Community) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	return nil
}

// CommunityMember relates a user to a community. Membership is a set: the
// unique index rejects a second row for the same pair.
type CommunityMember struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	CommunityID string    `gorm:"type:char(36);uniqueIndex:idx_member_pair;not null" json:"community_id"`
	UserID      string    `gorm:"type:char(36);index;uniqueIndex:idx_member_pair;not null" json:"user_id"`
	JoinedAt    time.Time `json:"joined_at"`
	User        *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
}

func (m *CommunityMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}
	return nil
}
