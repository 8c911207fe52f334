package services

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ghostwire/ghostwire/models"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ids []string) ([]models.User, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockPostRepository is a mock implementation of repository.PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(id string) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(page, pageSize int) ([]models.Post, int64, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) ListByUser(userID string, page, pageSize int) ([]models.Post, int64, error) {
	args := m.Called(userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockCommentRepository is a mock implementation of repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *models.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(id string) (*models.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(postID string) ([]models.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCommentRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockInteractionRepository is a mock implementation of repository.InteractionRepository.
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Create(interaction *models.PostInteraction) error {
	args := m.Called(interaction)
	return args.Error(0)
}

func (m *MockInteractionRepository) Find(postID, userID string, kind models.InteractionKind) (*models.PostInteraction, error) {
	args := m.Called(postID, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostInteraction), args.Error(1)
}

func (m *MockInteractionRepository) ListByPost(postID string) ([]models.PostInteraction, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostInteraction), args.Error(1)
}

func (m *MockInteractionRepository) ListByPosts(postIDs []string) ([]models.PostInteraction, error) {
	args := m.Called(postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostInteraction), args.Error(1)
}

func (m *MockInteractionRepository) DeleteMatching(postID, userID string, kind models.InteractionKind) error {
	args := m.Called(postID, userID, kind)
	return args.Error(0)
}

// MockCommunityRepository is a mock implementation of repository.CommunityRepository.
type MockCommunityRepository struct {
	mock.Mock
}

func (m *MockCommunityRepository) Create(community *models.Community) error {
	args := m.Called(community)
	return args.Error(0)
}

func (m *MockCommunityRepository) FindByID(id string) (*models.Community, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Community), args.Error(1)
}

func (m *MockCommunityRepository) List(page, pageSize int) ([]models.Community, int64, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Community), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommunityRepository) Update(community *models.Community) error {
	args := m.Called(community)
	return args.Error(0)
}

func (m *MockCommunityRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCommunityRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommunityRepository) AddMember(communityID, userID string, joinedAt time.Time) (*models.CommunityMember, error) {
	args := m.Called(communityID, userID, joinedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CommunityMember), args.Error(1)
}

func (m *MockCommunityRepository) RemoveMember(communityID, userID string) error {
	args := m.Called(communityID, userID)
	return args.Error(0)
}

func (m *MockCommunityRepository) IsMember(communityID, userID string) (bool, error) {
	args := m.Called(communityID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommunityRepository) ListMembers(communityID string) ([]models.CommunityMember, error) {
	args := m.Called(communityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommunityMember), args.Error(1)
}

func (m *MockCommunityRepository) CountMembers(communityID string) (int64, error) {
	args := m.Called(communityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommunityRepository) SetMemberCount(communityID string, count int64) error {
	args := m.Called(communityID, count)
	return args.Error(0)
}

// MockAdminRepository is a mock implementation of repository.AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByEmail(email string) (*models.AdminUser, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) Upsert(admin *models.AdminUser) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminRepository) TouchLastLogin(id string, at time.Time) error {
	args := m.Called(id, at)
	return args.Error(0)
}

func (m *MockAdminRepository) InsertActivity(entry *models.AdminActivityLog) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockAdminRepository) RecentActivity(limit int) ([]models.AdminActivityLog, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AdminActivityLog), args.Error(1)
}
