package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminUser is the dashboard identity row. Credentials live in configuration,
// not here; this record only carries display data and the last login mark.
type AdminUser struct {
	ID          string     `gorm:"type:char(36);primaryKey" json:"id"`
	Email       string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name        string     `gorm:"size:128" json:"name"`
	Role        string     `gorm:"size:32;default:'admin'" json:"role"`
	LastLoginAt *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (a *AdminUser) TableName() string { return "admin_users" }

func (a *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return nil
}

// AdminActivityLog is one append-only audit entry for an admin action.
type AdminActivityLog struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	AdminID   string         `gorm:"type:char(36);index;not null" json:"admin_id"`
	Action    string         `gorm:"size:128;not null" json:"action"`
	Details   datatypes.JSON `gorm:"type:json" json:"details,omitempty"`
	IPAddress string         `gorm:"size:45" json:"ip_address"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	Admin     *AdminUser     `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}

func (l *AdminActivityLog) TableName() string { return "admin_activity_logs" }

func (l *AdminActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	return nil
}
