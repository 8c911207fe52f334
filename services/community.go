package services

import (
	"errors"
	"time"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/repository"
	"github.com/ghostwire/ghostwire/utils"
)

// CommunityService owns community CRUD and the membership relation. The
// denormalized member counter is always mutated in the same transaction as
// the relation (inside the repository) and reconciled from the relation when
// a divergence is observed.
type CommunityService struct {
	communities repository.CommunityRepository
}

// NewCommunityService creates a CommunityService.
func NewCommunityService(communities repository.CommunityRepository) *CommunityService {
	return &CommunityService{communities: communities}
}

// Create validates and stores a new community owned by ownerID.
func (s *CommunityService) Create(name, description, imageURL, ownerID string) (*models.Community, error) {
	if name == "" || ownerID == "" {
		return nil, ErrValidation
	}
	community := &models.Community{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		OwnerID:     ownerID,
	}
	if err := s.communities.Create(community); err != nil {
		return nil, err
	}
	return community, nil
}

// Get loads one community, repairing a diverged member counter from the
// relation before returning it.
func (s *CommunityService) Get(id string) (*models.Community, error) {
	community, err := s.communities.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actual, err := s.communities.CountMembers(id); err == nil && actual != community.MemberCount {
		if utils.Sugar != nil {
			utils.Sugar.Warnf("member count drift community=%s stored=%d actual=%d", id, community.MemberCount, actual)
		}
		if err := s.communities.SetMemberCount(id, actual); err == nil {
			community.MemberCount = actual
		}
	}
	return community, nil
}

// List returns one page of communities, newest first.
func (s *CommunityService) List(page, pageSize int) ([]models.Community, int64, error) {
	return s.communities.List(page, pageSize)
}

// Update applies caller-supplied fields. Only the owner (or an admin, checked
// by the caller) may mutate a community.
func (s *CommunityService) Update(id, callerID string, isAdmin bool, name, description, imageURL string) (*models.Community, error) {
	community, err := s.communities.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if community.OwnerID != callerID && !isAdmin {
		return nil, ErrForbidden
	}
	if name != "" {
		community.Name = name
	}
	community.Description = description
	community.ImageURL = imageURL
	if err := s.communities.Update(community); err != nil {
		return nil, err
	}
	return community, nil
}

// Delete removes a community and its membership rows.
func (s *CommunityService) Delete(id, callerID string, isAdmin bool) error {
	community, err := s.communities.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if community.OwnerID != callerID && !isAdmin {
		return ErrForbidden
	}
	return s.communities.Delete(id)
}

// Join adds userID to the community. A second join of the same pair fails
// with ErrAlreadyMember and leaves the counter untouched.
func (s *CommunityService) Join(communityID, userID string) (*models.CommunityMember, error) {
	if communityID == "" || userID == "" {
		return nil, ErrValidation
	}
	member, err := s.communities.IsMember(communityID, userID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, ErrAlreadyMember
	}
	record, err := s.communities.AddMember(communityID, userID, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

// Leave removes userID from the community. Leaving without a prior join fails
// with ErrNotAMember and leaves the counter untouched.
func (s *CommunityService) Leave(communityID, userID string) error {
	if communityID == "" || userID == "" {
		return ErrValidation
	}
	member, err := s.communities.IsMember(communityID, userID)
	if err != nil {
		return err
	}
	if !member {
		return ErrNotAMember
	}
	if err := s.communities.RemoveMember(communityID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotAMember
		}
		return err
	}
	return nil
}

// IsMember reports current membership for the pair.
func (s *CommunityService) IsMember(communityID, userID string) (bool, error) {
	return s.communities.IsMember(communityID, userID)
}

// Members lists a community's membership rows, oldest join first.
func (s *CommunityService) Members(communityID string) ([]models.CommunityMember, error) {
	if _, err := s.communities.FindByID(communityID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.communities.ListMembers(communityID)
}

// ReconcileMemberCount recomputes the counter from the relation and stores
// it, returning the authoritative value.
func (s *CommunityService) ReconcileMemberCount(communityID string) (int64, error) {
	actual, err := s.communities.CountMembers(communityID)
	if err != nil {
		return 0, err
	}
	if err := s.communities.SetMemberCount(communityID, actual); err != nil {
		return 0, err
	}
	return actual, nil
}
