package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InteractionKind enumerates the recognized post interaction types.
type InteractionKind string

const (
	InteractionWire    InteractionKind = "wire"
	InteractionComment InteractionKind = "comment"
	InteractionSupport InteractionKind = "support"
	InteractionShare   InteractionKind = "share"
)

// ValidInteractionKind reports whether k is one of the four recognized kinds.
func ValidInteractionKind(k InteractionKind) bool {
	switch k {
	case InteractionWire, InteractionComment, InteractionSupport, InteractionShare:
		return true
	}
	return false
}

// ToggleKind reports whether k follows toggle semantics: at most one row per
// (post, user, kind). Comment and share rows accumulate.
func ToggleKind(k InteractionKind) bool {
	return k == InteractionWire || k == InteractionSupport
}

// PostInteraction is a single reaction row. Toggle kinds are kept unique per
// (post, user, kind) by the service layer; comment and share rows may repeat,
// so the composite index is not unique.
type PostInteraction struct {
	ID        string          `gorm:"type:char(36);primaryKey" json:"id"`
	PostID    string          `gorm:"type:char(36);index;index:idx_interaction_tuple;not null" json:"post_id"`
	UserID    string          `gorm:"type:char(36);index:idx_interaction_tuple;not null" json:"user_id"`
	Kind      InteractionKind `gorm:"column:interaction_type;size:16;index:idx_interaction_tuple;not null" json:"interaction_type"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName keeps the table aligned with the client-facing schema.
func (PostInteraction) TableName() string { return "post_interactions" }

func (i *PostInteraction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}
	return nil
}

// InteractionCounts aggregates per-kind totals for one post.
type InteractionCounts struct {
	Wire    int `json:"wire"`
	Comment int `json:"comment"`
	Support int `json:"support"`
	Share   int `json:"share"`
}

// Total sums all four kinds.
func (c InteractionCounts) Total() int {
	return c.Wire + c.Comment + c.Support + c.Share
}
