package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaxPostImages caps the number of image references a post may carry.
const MaxPostImages = 4

// Post is a feed entry authored by a user. ImageURLs holds an ordered JSON
// array of at most MaxPostImages references.
type Post struct {
	ID        string                      `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string                      `gorm:"type:char(36);index;not null" json:"user_id"`
	Content   string                      `gorm:"type:text;not null" json:"content"`
	ImageURLs datatypes.JSONSlice[string] `gorm:"type:json" json:"image_urls,omitempty"`
	Location  string                      `gorm:"size:255" json:"location,omitempty"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
	User      *User                       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return nil
}
