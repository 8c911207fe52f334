package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/repository"
	"github.com/ghostwire/ghostwire/utils"
)

const userTokenTTL = 72 * time.Hour

// AuthController handles account registration, login and profile endpoints.
type AuthController struct {
	users repository.UserRepository
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(users repository.UserRepository) *AuthController {
	return &AuthController{users: users}
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

// Register creates a local account and returns a token.
func (a *AuthController) Register(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid request payload")
		return
	}

	username := strings.TrimSpace(req.Username)
	if !usernamePattern.MatchString(username) {
		utils.Error(ctx, http.StatusBadRequest, 40011, "username must be 3-32 characters of letters, digits or underscore")
		return
	}

	if _, err := a.users.FindByUsername(username); err == nil {
		utils.Error(ctx, http.StatusConflict, 40910, "username already taken")
		return
	}
	if _, err := a.users.FindByEmail(req.Email); err == nil {
		utils.Error(ctx, http.StatusConflict, 40911, "email already registered")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to hash password")
		return
	}

	user := &models.User{
		Email:        req.Email,
		Username:     username,
		PasswordHash: hash,
	}
	if err := a.users.Create(user); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to create user")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, userTokenTTL)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to issue token")
		return
	}

	utils.Success(ctx, gin.H{"user": user, "token": token})
}

// Login authenticates a local account by email or username.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Identity string `json:"identity" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40012, "invalid request payload")
		return
	}

	identity := strings.TrimSpace(req.Identity)
	user, err := a.users.FindByEmail(identity)
	if err != nil {
		user, err = a.users.FindByUsername(identity)
	}
	if err != nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, userTokenTTL)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50013, "failed to issue token")
		return
	}

	utils.Success(ctx, gin.H{"user": user, "token": token})
}

// Logout revokes the presented token until its natural expiry.
func (a *AuthController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 {
		token := strings.TrimSpace(parts[1])
		if claims, err := utils.ParseToken(token); err == nil && claims.ExpiresAt != nil {
			utils.BlacklistToken(token, claims.ExpiresAt.Time)
		}
	}
	utils.Success(ctx, gin.H{"message": "logged out"})
}

// Me returns the authenticated user's record.
func (a *AuthController) Me(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40111, "unauthorized")
		return
	}
	user, err := a.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50014, "failed to load user")
		return
	}
	utils.Success(ctx, gin.H{"user": user})
}

// UpdateProfile patches bio and avatar for the authenticated user.
func (a *AuthController) UpdateProfile(ctx *gin.Context) {
	var req struct {
		Bio       *string `json:"bio"`
		AvatarURL *string `json:"avatar_url"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40013, "invalid request payload")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40112, "unauthorized")
		return
	}
	user, err := a.users.FindByID(userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50015, "failed to load user")
		return
	}

	if req.Bio != nil {
		user.Bio = utils.Sanitize(*req.Bio)
	}
	if req.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*req.AvatarURL)
	}
	if err := a.users.Update(user); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50016, "failed to update profile")
		return
	}

	utils.InvalidateByPrefix("cache:user:public:" + userID)
	utils.Success(ctx, gin.H{"user": user})
}

// GetUserPublic returns public user info by ID.
func (a *AuthController) GetUserPublic(ctx *gin.Context) {
	id := strings.TrimSpace(ctx.Param("id"))
	if id == "" {
		utils.Error(ctx, http.StatusBadRequest, 40014, "missing user id")
		return
	}
	if b, ok := utils.CacheGetBytes("cache:user:public:" + id); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}
	user, err := a.users.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40411, "user not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50017, "failed to load user")
		return
	}
	payload := gin.H{"user": publicUser(user)}
	utils.CacheSetJSON("cache:user:public:"+id, wrap(payload), time.Hour)
	utils.Success(ctx, payload)
}

// publicUser strips fields that are not part of the public profile.
func publicUser(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"bio":        user.Bio,
		"avatar_url": user.AvatarURL,
		"created_at": user.CreatedAt,
	}
}
