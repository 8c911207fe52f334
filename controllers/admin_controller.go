package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghostwire/ghostwire/services"
	"github.com/ghostwire/ghostwire/utils"
)

const adminTokenTTL = 4 * time.Hour

// AdminController serves the dashboard login and its data endpoints.
type AdminController struct {
	admin    *services.AdminService
	activity *services.ActivityService
}

// NewAdminController creates a new AdminController instance.
func NewAdminController(admin *services.AdminService, activity *services.ActivityService) *AdminController {
	return &AdminController{admin: admin, activity: activity}
}

// Login verifies the configured administrator credential. The response shape
// is the dashboard client's contract and bypasses the standard envelope:
// 200 {success:true, admin, token}, 401 {success:false, error},
// 400 on a missing field, 500 on unexpected failure.
func (a *AdminController) Login(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	}

	admin, err := a.admin.Login(req.Email, req.Password, sourceAddress(ctx))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrValidation) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
			return
		}
		utils.Sugar.Errorf("admin login failed err=%v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	token, err := utils.GenerateAdminToken(admin.ID, admin.Email, adminTokenTTL)
	if err != nil {
		utils.Sugar.Errorf("admin token issue failed err=%v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "admin": admin, "token": token})
}

// Stats returns dashboard totals.
func (a *AdminController) Stats(ctx *gin.Context) {
	utils.Success(ctx, a.admin.Stats())
}

// RecentActivity returns the newest audit entries, default limit 10.
func (a *AdminController) RecentActivity(ctx *gin.Context) {
	limit := services.DefaultActivityLimit
	if v := ctx.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	entries, err := a.activity.Recent(limit)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50070, "failed to load activity")
		return
	}
	utils.Success(ctx, gin.H{"items": entries})
}
