package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/repository"
)

func TestCreateCommunity(t *testing.T) {
	repo := new(MockCommunityRepository)
	svc := NewCommunityService(repo)

	repo.On("Create", mock.AnythingOfType("*models.Community")).Return(nil)

	community, err := svc.Create("go-devs", "a place for gophers", "", "u1")
	assert.NoError(t, err)
	assert.Equal(t, "go-devs", community.Name)
	assert.Equal(t, "u1", community.OwnerID)
	repo.AssertExpectations(t)
}

func TestCreateCommunityRequiresNameAndOwner(t *testing.T) {
	svc := NewCommunityService(new(MockCommunityRepository))

	_, err := svc.Create("", "desc", "", "u1")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create("go-devs", "desc", "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestJoinAddsMemberOnce(t *testing.T) {
	repo := new(MockCommunityRepository)
	svc := NewCommunityService(repo)

	repo.On("IsMember", "c1", "u1").Return(false, nil).Once()
	repo.On("AddMember", "c1", "u1", mock.AnythingOfType("time.Time")).
		Return(&models.CommunityMember{CommunityID: "c1", UserID: "u1"}, nil).Once()

	member, err := svc.Join("c1", "u1")
	assert.NoError(t, err)
	assert.Equal(t, "u1", member.UserID)

	// A second join of the same pair fails without touching the relation.
	repo.On("IsMember", "c1", "u1").Return(true, nil).Once()

	_, err = svc.Join("c1", "u1")
	assert.ErrorIs(t, err, ErrAlreadyMember)
	repo.AssertNumberOfCalls(t, "AddMember", 1)
}

func TestJoinMissingCommunity(t *testing.T) {
	repo := new(MockCommunityRepository)
	svc := NewCommunityService(repo)

	repo.On("IsMember", "gone", "u1").Return(false, nil)
	repo.On("AddMember", "gone", "u1", mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrNotFound)

	_, err := svc.Join("gone", "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeaveWithoutJoin(t *testing.T) {
	repo := new(MockCommunityRepository)
	svc := NewCommunityService(repo)

	repo.On("IsMember", "c1", "u1").Return(false, nil)

	err := svc.Leave("c1", "u1")
	assert.ErrorIs(t, err, ErrNotAMember)
	repo.AssertNotCalled(t, "RemoveMember", mock.Anything, mock.Anything)
}

func TestLeaveRemovesMember(t *testing.T) {
	repo := new(MockCommunityRepository)
	svc := NewCommunityService(repo)

	repo.On("IsMember", "c1", "u1").Return(true, nil)
	repo.On("RemoveMember", "c1", "u1").Return(nil)

	assert.NoError(t, svc.Leave("c1", "u1"))
	repo.AssertExpectations(t)
}

func TestGetRepairsDivergedCounter(t *testing.T) {
	repo := new(MockCommunityRepository)
	svc := NewCommunityService(repo)

	repo.On("FindByID", "c1").Return(&models.Community{ID: "c1", MemberCount: 7}, nil)
	repo.On("CountMembers", "c1").Return(int64(5), nil)
	repo.On("SetMemberCount", "c1", int64(5)).Return(nil)

	community, err := svc.Get("c1")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), community.MemberCount)
	repo.AssertExpectations(t)
}

func TestGetLeavesAccurateCounterAlone(t *testing.T) {
	repo := new(MockCommunityRepository)
	svc := NewCommunityService(repo)

	repo.On("FindByID", "c1").Return(&models.Community{ID: "c1", MemberCount: 5}, nil)
	repo.On("CountMembers", "c1").Return(int64(5), nil)

	community, err := svc.Get("c1")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), community.MemberCount)
	repo.AssertNotCalled(t, "SetMemberCount", mock.Anything, mock.Anything)
}

func TestUpdateRequiresOwnerOrAdmin(t *testing.T) {
	repo := new(MockCommunityRepository)
	svc := NewCommunityService(repo)

	repo.On("FindByID", "c1").Return(&models.Community{ID: "c1", OwnerID: "owner"}, nil)

	_, err := svc.Update("c1", "intruder", false, "hijacked", "", "")
	assert.ErrorIs(t, err, ErrForbidden)

	repo.On("Update", mock.AnythingOfType("*models.Community")).Return(nil)

	community, err := svc.Update("c1", "someone-else", true, "renamed", "new desc", "")
	assert.NoError(t, err)
	assert.Equal(t, "renamed", community.Name)
}

func TestDeleteRequiresOwnerOrAdmin(t *testing.T) {
	repo := new(MockCommunityRepository)
	svc := NewCommunityService(repo)

	repo.On("FindByID", "c1").Return(&models.Community{ID: "c1", OwnerID: "owner"}, nil)

	assert.ErrorIs(t, svc.Delete("c1", "intruder", false), ErrForbidden)

	repo.On("Delete", "c1").Return(nil)
	assert.NoError(t, svc.Delete("c1", "owner", false))
}

func TestReconcileMemberCount(t *testing.T) {
	repo := new(MockCommunityRepository)
	svc := NewCommunityService(repo)

	repo.On("CountMembers", "c1").Return(int64(3), nil)
	repo.On("SetMemberCount", "c1", int64(3)).Return(nil)

	count, err := svc.ReconcileMemberCount("c1")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	repo.AssertExpectations(t)
}

func TestMembersMissingCommunity(t *testing.T) {
	repo := new(MockCommunityRepository)
	svc := NewCommunityService(repo)

	repo.On("FindByID", "gone").Return(nil, repository.ErrNotFound)

	_, err := svc.Members("gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJoinSurfacesStoreError(t *testing.T) {
	repo := new(MockCommunityRepository)
	svc := NewCommunityService(repo)

	storeErr := errors.New("bad connection")
	repo.On("IsMember", "c1", "u1").Return(false, storeErr)

	_, err := svc.Join("c1", "u1")
	assert.ErrorIs(t, err, storeErr)
}

// Membership timestamps are set at join time, not persisted-at time.
func TestJoinStampsJoinTime(t *testing.T) {
	repo := new(MockCommunityRepository)
	svc := NewCommunityService(repo)

	before := time.Now()
	repo.On("IsMember", "c1", "u1").Return(false, nil)
	repo.On("AddMember", "c1", "u1", mock.MatchedBy(func(at time.Time) bool {
		return !at.Before(before)
	})).Return(&models.CommunityMember{CommunityID: "c1", UserID: "u1"}, nil)

	_, err := svc.Join("c1", "u1")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
