package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/services"
	"github.com/ghostwire/ghostwire/utils"
)

// InteractionController manages wire/comment/support/share rows on posts.
type InteractionController struct {
	interactions *services.InteractionService
}

// NewInteractionController creates a new InteractionController instance.
func NewInteractionController(interactions *services.InteractionService) *InteractionController {
	return &InteractionController{interactions: interactions}
}

// AddInteraction records one interaction for the authenticated user. Toggle
// kinds are idempotent; repeating one returns the existing record.
func (i *InteractionController) AddInteraction(ctx *gin.Context) {
	var req struct {
		Kind string `json:"kind" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid request payload")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40130, "unauthorized")
		return
	}

	record, err := i.interactions.Add(ctx.Param("id"), userID, models.InteractionKind(req.Kind))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.Error(ctx, http.StatusBadRequest, 40031, "unknown interaction kind")
		case errors.Is(err, services.ErrNotFound):
			utils.Error(ctx, http.StatusNotFound, 40430, "post not found")
		default:
			utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to record interaction")
		}
		return
	}

	utils.InvalidateByPrefix("cache:feed:")
	utils.InvalidateByPrefix("cache:posts:detail:" + record.PostID)

	utils.Success(ctx, gin.H{"interaction": record})
}

// RemoveInteraction deletes the caller's interaction rows for the given kind.
func (i *InteractionController) RemoveInteraction(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40131, "unauthorized")
		return
	}

	postID := ctx.Param("id")
	kind := models.InteractionKind(ctx.Param("kind"))
	if err := i.interactions.Remove(postID, userID, kind); err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.Error(ctx, http.StatusBadRequest, 40032, "unknown interaction kind")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to remove interaction")
		return
	}

	utils.InvalidateByPrefix("cache:feed:")
	utils.InvalidateByPrefix("cache:posts:detail:" + postID)

	utils.Success(ctx, gin.H{"message": "interaction removed"})
}

// GetPostStats returns aggregated interaction counts for one post.
func (i *InteractionController) GetPostStats(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"counts": i.interactions.StatsFor(ctx.Param("id"))})
}
