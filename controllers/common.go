package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ghostwire/ghostwire/middleware"
	"github.com/ghostwire/ghostwire/utils"
)

// cachedEnvelope mirrors utils.JSONResponse for whole-response caching.
type cachedEnvelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func wrap(data interface{}) cachedEnvelope {
	return cachedEnvelope{Code: 0, Message: "success", Data: data}
}

func parsePagination(pageStr, sizeStr string) (int, int) {
	page := 1
	pageSize := 10
	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page = p
	}
	if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 && s <= 100 {
		pageSize = s
	}
	return page, pageSize
}

func paginationPayload(page, pageSize int, total int64) gin.H {
	return gin.H{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": int((total + int64(pageSize) - 1) / int64(pageSize)),
	}
}

func getUserID(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func isAdmin(ctx *gin.Context) bool {
	value, exists := ctx.Get(middleware.ContextScopeKey)
	if !exists {
		return false
	}
	scope, _ := value.(string)
	return scope == utils.TokenScopeAdmin
}

// sourceAddress extracts the caller's address, honoring proxies.
func sourceAddress(ctx *gin.Context) string {
	if fwd := ctx.GetHeader("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	if ip := ctx.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
