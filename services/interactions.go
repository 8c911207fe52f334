package services

import (
	"errors"
	"time"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/repository"
	"github.com/ghostwire/ghostwire/utils"
)

// CountsFor partitions the given interaction list by kind for one post. Rows
// belonging to other posts are ignored; an empty list yields all zeros.
func CountsFor(postID string, interactions []models.PostInteraction) models.InteractionCounts {
	var counts models.InteractionCounts
	for _, row := range interactions {
		if row.PostID != postID {
			continue
		}
		switch row.Kind {
		case models.InteractionWire:
			counts.Wire++
		case models.InteractionComment:
			counts.Comment++
		case models.InteractionSupport:
			counts.Support++
		case models.InteractionShare:
			counts.Share++
		}
	}
	return counts
}

// InteractionService manages reaction rows for posts.
type InteractionService struct {
	interactions repository.InteractionRepository
	posts        repository.PostRepository
}

// NewInteractionService creates an InteractionService.
func NewInteractionService(interactions repository.InteractionRepository, posts repository.PostRepository) *InteractionService {
	return &InteractionService{interactions: interactions, posts: posts}
}

// Add records one interaction. Toggle kinds (wire, support) are idempotent:
// when a row for the tuple already exists it is returned unchanged. Comment
// and share rows accumulate.
func (s *InteractionService) Add(postID, userID string, kind models.InteractionKind) (*models.PostInteraction, error) {
	if postID == "" || userID == "" || !models.ValidInteractionKind(kind) {
		return nil, ErrValidation
	}
	if _, err := s.posts.FindByID(postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if models.ToggleKind(kind) {
		existing, err := s.interactions.Find(postID, userID, kind)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	row := &models.PostInteraction{
		PostID:    postID,
		UserID:    userID,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	if err := s.interactions.Create(row); err != nil {
		return nil, err
	}
	return row, nil
}

// Remove deletes every row matching the exact (post, user, kind) tuple.
func (s *InteractionService) Remove(postID, userID string, kind models.InteractionKind) error {
	if postID == "" || userID == "" || !models.ValidInteractionKind(kind) {
		return ErrValidation
	}
	return s.interactions.DeleteMatching(postID, userID, kind)
}

// StatsFor aggregates per-kind counts for one post. Store failures degrade to
// zeroed counts on this read path rather than failing the caller.
func (s *InteractionService) StatsFor(postID string) models.InteractionCounts {
	rows, err := s.interactions.ListByPost(postID)
	if err != nil {
		if utils.Sugar != nil {
			utils.Sugar.Warnf("interaction stats unavailable post=%s err=%v", postID, err)
		}
		return models.InteractionCounts{}
	}
	return CountsFor(postID, rows)
}

// HasInteracted reports whether the tuple currently has at least one row.
func (s *InteractionService) HasInteracted(postID, userID string, kind models.InteractionKind) (bool, error) {
	_, err := s.interactions.Find(postID, userID, kind)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return false, err
}
