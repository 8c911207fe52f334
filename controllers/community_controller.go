package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghostwire/ghostwire/services"
	"github.com/ghostwire/ghostwire/utils"
)

// CommunityController manages communities and their membership.
type CommunityController struct {
	communities *services.CommunityService
}

// NewCommunityController creates a new CommunityController instance.
func NewCommunityController(communities *services.CommunityService) *CommunityController {
	return &CommunityController{communities: communities}
}

// CreateCommunity creates a community owned by the authenticated user.
func (c *CommunityController) CreateCommunity(ctx *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid request payload")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40140, "unauthorized")
		return
	}

	name := utils.Sanitize(strings.TrimSpace(req.Name))
	if name == "" {
		utils.Error(ctx, http.StatusBadRequest, 40041, "name cannot be empty")
		return
	}

	community, err := c.communities.Create(name, utils.Sanitize(req.Description), strings.TrimSpace(req.ImageURL), userID)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.Error(ctx, http.StatusBadRequest, 40042, "invalid community")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to create community")
		return
	}

	utils.InvalidateByPrefix("cache:communities:")
	utils.Success(ctx, gin.H{"community": community})
}

// ListCommunities returns paginated communities, newest first.
func (c *CommunityController) ListCommunities(ctx *gin.Context) {
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"))

	cacheKey := "cache:communities:list:page=" + ctx.DefaultQuery("page", "1") + ":size=" + ctx.DefaultQuery("page_size", "10")
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	communities, total, err := c.communities.List(page, pageSize)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to list communities")
		return
	}

	payload := gin.H{
		"items":      communities,
		"pagination": paginationPayload(page, pageSize, total),
	}
	utils.CacheSetJSON(cacheKey, wrap(payload), time.Hour)
	utils.Success(ctx, payload)
}

// GetCommunity returns one community.
func (c *CommunityController) GetCommunity(ctx *gin.Context) {
	community, err := c.communities.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40440, "community not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to load community")
		return
	}
	utils.Success(ctx, gin.H{"community": community})
}

// UpdateCommunity applies changes from the owner or an admin.
func (c *CommunityController) UpdateCommunity(ctx *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40043, "invalid request payload")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40141, "unauthorized")
		return
	}

	community, err := c.communities.Update(
		ctx.Param("id"), userID, isAdmin(ctx),
		utils.Sanitize(strings.TrimSpace(req.Name)),
		utils.Sanitize(req.Description),
		strings.TrimSpace(req.ImageURL),
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.Error(ctx, http.StatusNotFound, 40441, "community not found")
		case errors.Is(err, services.ErrForbidden):
			utils.Error(ctx, http.StatusForbidden, 40340, "you can only update your own community")
		default:
			utils.Error(ctx, http.StatusInternalServerError, 50063, "failed to update community")
		}
		return
	}

	utils.InvalidateByPrefix("cache:communities:")
	utils.Success(ctx, gin.H{"community": community})
}

// DeleteCommunity removes a community and its memberships.
func (c *CommunityController) DeleteCommunity(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40142, "unauthorized")
		return
	}

	if err := c.communities.Delete(ctx.Param("id"), userID, isAdmin(ctx)); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			utils.Error(ctx, http.StatusNotFound, 40442, "community not found")
		case errors.Is(err, services.ErrForbidden):
			utils.Error(ctx, http.StatusForbidden, 40341, "you can only delete your own community")
		default:
			utils.Error(ctx, http.StatusInternalServerError, 50064, "failed to delete community")
		}
		return
	}

	utils.InvalidateByPrefix("cache:communities:")
	utils.Success(ctx, gin.H{"message": "community deleted"})
}

// JoinCommunity adds the authenticated user to a community.
func (c *CommunityController) JoinCommunity(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40143, "unauthorized")
		return
	}

	record, err := c.communities.Join(ctx.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyMember):
			utils.Error(ctx, http.StatusConflict, 40940, "already a member")
		case errors.Is(err, services.ErrNotFound):
			utils.Error(ctx, http.StatusNotFound, 40443, "community not found")
		default:
			utils.Error(ctx, http.StatusInternalServerError, 50065, "failed to join community")
		}
		return
	}

	utils.InvalidateByPrefix("cache:communities:")
	utils.Success(ctx, gin.H{"membership": record})
}

// LeaveCommunity removes the authenticated user from a community.
func (c *CommunityController) LeaveCommunity(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40144, "unauthorized")
		return
	}

	if err := c.communities.Leave(ctx.Param("id"), userID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotAMember):
			utils.Error(ctx, http.StatusConflict, 40941, "not a member")
		case errors.Is(err, services.ErrNotFound):
			utils.Error(ctx, http.StatusNotFound, 40444, "community not found")
		default:
			utils.Error(ctx, http.StatusInternalServerError, 50066, "failed to leave community")
		}
		return
	}

	utils.InvalidateByPrefix("cache:communities:")
	utils.Success(ctx, gin.H{"message": "left community"})
}

// GetMembership reports whether the authenticated user belongs to the community.
func (c *CommunityController) GetMembership(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40145, "unauthorized")
		return
	}

	member, err := c.communities.IsMember(ctx.Param("id"), userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50067, "failed to check membership")
		return
	}
	utils.Success(ctx, gin.H{"is_member": member})
}

// ListMembers returns a community's members, oldest join first.
func (c *CommunityController) ListMembers(ctx *gin.Context) {
	members, err := c.communities.Members(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40445, "community not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50068, "failed to list members")
		return
	}
	utils.Success(ctx, gin.H{"items": members})
}
