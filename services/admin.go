package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/repository"
	"github.com/ghostwire/ghostwire/utils"
)

// CredentialVerifier checks an administrator credential pair. Implementations
// never hold plaintext secrets in source.
type CredentialVerifier interface {
	Verify(email, password string) bool
}

// ConfigCredentialVerifier verifies against a configured email and bcrypt
// password hash.
type ConfigCredentialVerifier struct {
	Email        string
	PasswordHash string
}

// Verify compares the email in constant time and the password against the
// bcrypt hash.
func (v ConfigCredentialVerifier) Verify(email, password string) bool {
	if v.Email == "" || v.PasswordHash == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(v.Email)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(v.PasswordHash), []byte(password)) == nil
	return emailOK && passOK
}

// SiteStats are the dashboard totals.
type SiteStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalPosts       int64 `json:"totalPosts"`
	TotalCommunities int64 `json:"totalCommunities"`
	TotalComments    int64 `json:"totalComments"`
}

// AdminService authenticates administrators and serves dashboard data.
type AdminService struct {
	verifier    CredentialVerifier
	admins      repository.AdminRepository
	users       repository.UserRepository
	posts       repository.PostRepository
	comments    repository.CommentRepository
	communities repository.CommunityRepository
	activity    *ActivityService
	adminName   string
}

// NewAdminService creates an AdminService.
func NewAdminService(
	verifier CredentialVerifier,
	admins repository.AdminRepository,
	users repository.UserRepository,
	posts repository.PostRepository,
	comments repository.CommentRepository,
	communities repository.CommunityRepository,
	activity *ActivityService,
	adminName string,
) *AdminService {
	return &AdminService{
		verifier:    verifier,
		admins:      admins,
		users:       users,
		posts:       posts,
		comments:    comments,
		communities: communities,
		activity:    activity,
		adminName:   adminName,
	}
}

// Login verifies the credential pair, materializes the admin_users row,
// stamps last_login, and records a login activity entry with the caller's
// source address. Any other pair fails with ErrInvalidCredentials.
func (s *AdminService) Login(email, password, sourceAddr string) (*models.AdminUser, error) {
	if email == "" || password == "" {
		return nil, ErrValidation
	}
	if !s.verifier.Verify(email, password) {
		return nil, ErrInvalidCredentials
	}

	admin, err := s.admins.FindByEmail(email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		admin = &models.AdminUser{Email: email, Name: s.adminName, Role: "admin"}
		if err := s.admins.Upsert(admin); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	if err := s.admins.TouchLastLogin(admin.ID, now); err != nil {
		// Non-fatal: the login itself already succeeded.
		if utils.Sugar != nil {
			utils.Sugar.Warnf("failed to stamp admin last_login id=%s err=%v", admin.ID, err)
		}
	} else {
		admin.LastLoginAt = &now
	}

	s.activity.Record(admin.ID, "Admin Login", map[string]interface{}{"email": email}, sourceAddr)
	return admin, nil
}

// Stats aggregates dashboard totals. Each count degrades to zero on store
// failure so the dashboard never 500s over one unavailable table.
func (s *AdminService) Stats() SiteStats {
	var stats SiteStats
	if n, err := s.users.Count(); err == nil {
		stats.TotalUsers = n
	} else if utils.Sugar != nil {
		utils.Sugar.Warnf("user count unavailable err=%v", err)
	}
	if n, err := s.posts.Count(); err == nil {
		stats.TotalPosts = n
	} else if utils.Sugar != nil {
		utils.Sugar.Warnf("post count unavailable err=%v", err)
	}
	if n, err := s.communities.Count(); err == nil {
		stats.TotalCommunities = n
	} else if utils.Sugar != nil {
		utils.Sugar.Warnf("community count unavailable err=%v", err)
	}
	if n, err := s.comments.Count(); err == nil {
		stats.TotalComments = n
	} else if utils.Sugar != nil {
		utils.Sugar.Warnf("comment count unavailable err=%v", err)
	}
	return stats
}
