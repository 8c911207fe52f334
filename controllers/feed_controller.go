package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghostwire/ghostwire/services"
	"github.com/ghostwire/ghostwire/utils"
)

// FeedController serves the composed home feed.
type FeedController struct {
	feed *services.FeedService
}

// NewFeedController creates a new FeedController instance.
func NewFeedController(feed *services.FeedService) *FeedController {
	return &FeedController{feed: feed}
}

// GetFeed returns one page of the feed: posts newest first, each joined with
// its author and aggregated interaction counts.
func (f *FeedController) GetFeed(ctx *gin.Context) {
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"))

	cacheKey := fmt.Sprintf("cache:feed:page=%d:size=%d", page, pageSize)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	items, total, err := f.feed.Feed(page, pageSize)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to compose feed")
		return
	}

	payload := gin.H{
		"items":      items,
		"pagination": paginationPayload(page, pageSize, total),
	}
	utils.CacheSetJSON(cacheKey, wrap(payload), 5*time.Minute)
	utils.Success(ctx, payload)
}
