package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/ghostwire/ghostwire/models"
	"github.com/ghostwire/ghostwire/repository"
	"github.com/ghostwire/ghostwire/services"
	"github.com/ghostwire/ghostwire/utils"
)

// PostController manages CRUD operations for posts and comments.
type PostController struct {
	posts        repository.PostRepository
	comments     repository.CommentRepository
	interactions *services.InteractionService
}

// NewPostController creates a new PostController instance.
func NewPostController(posts repository.PostRepository, comments repository.CommentRepository, interactions *services.InteractionService) *PostController {
	return &PostController{posts: posts, comments: comments, interactions: interactions}
}

// CreatePost allows authenticated users to create new posts.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		Content   string   `json:"content" binding:"required"`
		ImageURLs []string `json:"image_urls"`
		Location  string   `json:"location"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid request payload")
		return
	}

	content := utils.Sanitize(strings.TrimSpace(req.Content))
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, 40021, "content cannot be empty")
		return
	}
	if len(req.ImageURLs) > models.MaxPostImages {
		utils.Error(ctx, http.StatusBadRequest, 40022, fmt.Sprintf("at most %d images allowed", models.MaxPostImages))
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40120, "unauthorized")
		return
	}

	post := &models.Post{
		UserID:    userID,
		Content:   content,
		ImageURLs: datatypes.NewJSONSlice(req.ImageURLs),
		Location:  strings.TrimSpace(req.Location),
	}
	if err := p.posts.Create(post); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to create post")
		return
	}

	utils.InvalidateByPrefix("cache:feed:")
	utils.InvalidateByPrefix("cache:posts:")

	utils.Success(ctx, gin.H{"post": post})
}

// ListPosts returns paginated posts including author information.
func (p *PostController) ListPosts(ctx *gin.Context) {
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"))

	cacheKey := fmt.Sprintf("cache:posts:list:page=%d:size=%d", page, pageSize)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	posts, total, err := p.posts.List(page, pageSize)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to list posts")
		return
	}

	payload := gin.H{
		"items":      posts,
		"pagination": paginationPayload(page, pageSize, total),
	}
	utils.CacheSetJSON(cacheKey, wrap(payload), time.Hour)
	utils.Success(ctx, payload)
}

// GetPost returns a single post with its comments and interaction counts.
func (p *PostController) GetPost(ctx *gin.Context) {
	postID := ctx.Param("id")

	if b, ok := utils.CacheGetBytes("cache:posts:detail:" + postID); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	post, err := p.posts.FindByID(postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40420, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to load post")
		return
	}

	comments, err := p.comments.ListByPost(postID)
	if err != nil {
		// Degrade rather than failing the whole request.
		utils.Sugar.Warnf("failed to load comments post=%s err=%v", postID, err)
		comments = nil
	}

	payload := gin.H{
		"post":     post,
		"comments": comments,
		"counts":   p.interactions.StatsFor(postID),
	}
	utils.CacheSetJSON("cache:posts:detail:"+postID, wrap(payload), time.Hour)
	utils.Success(ctx, payload)
}

// ListUserPosts returns posts created by a specific user (public).
func (p *PostController) ListUserPosts(ctx *gin.Context) {
	userID := strings.TrimSpace(ctx.Param("id"))
	if userID == "" {
		utils.Error(ctx, http.StatusBadRequest, 40023, "missing user id")
		return
	}
	page, pageSize := parsePagination(ctx.Query("page"), ctx.Query("page_size"))

	posts, total, err := p.posts.ListByUser(userID, page, pageSize)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50023, "failed to list user posts")
		return
	}
	utils.Success(ctx, gin.H{
		"items":      posts,
		"pagination": paginationPayload(page, pageSize, total),
	})
}

// DeletePost allows the author or an admin to delete a post.
func (p *PostController) DeletePost(ctx *gin.Context) {
	postID := ctx.Param("id")
	post, err := p.posts.FindByID(postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40421, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50024, "failed to load post")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40121, "unauthorized")
		return
	}
	if post.UserID != userID && !isAdmin(ctx) {
		utils.Error(ctx, http.StatusForbidden, 40320, "you can only delete your own posts")
		return
	}

	if err := p.posts.Delete(postID); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50025, "failed to delete post")
		return
	}

	utils.InvalidateByPrefix("cache:feed:")
	utils.InvalidateByPrefix("cache:posts:")

	utils.Success(ctx, gin.H{"message": "post deleted"})
}

// ListComments returns a post's comments oldest first.
func (p *PostController) ListComments(ctx *gin.Context) {
	postID := ctx.Param("id")
	if _, err := p.posts.FindByID(postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40422, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50026, "failed to load post")
		return
	}
	comments, err := p.comments.ListByPost(postID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50027, "failed to list comments")
		return
	}
	utils.Success(ctx, gin.H{"items": comments})
}

// CreateComment allows authenticated users to comment on posts. A matching
// comment interaction row is recorded so feed counts stay in step with the
// comment list.
func (p *PostController) CreateComment(ctx *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40024, "invalid request payload")
		return
	}

	content := utils.Sanitize(strings.TrimSpace(req.Content))
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, 40025, "content cannot be empty")
		return
	}

	postID := ctx.Param("id")
	post, err := p.posts.FindByID(postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40423, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50028, "failed to load post")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40122, "unauthorized")
		return
	}

	comment := &models.Comment{
		PostID:  post.ID,
		UserID:  userID,
		Content: content,
	}
	if err := p.comments.Create(comment); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50029, "failed to create comment")
		return
	}

	if _, err := p.interactions.Add(post.ID, userID, models.InteractionComment); err != nil {
		utils.Sugar.Warnf("failed to record comment interaction post=%s err=%v", post.ID, err)
	}

	utils.InvalidateByPrefix("cache:posts:detail:" + post.ID)
	utils.InvalidateByPrefix("cache:feed:")

	utils.Success(ctx, gin.H{"comment": comment})
}

// DeleteComment allows the comment owner or an admin to delete a comment.
func (p *PostController) DeleteComment(ctx *gin.Context) {
	commentID := strings.TrimSpace(ctx.Param("commentId"))
	if commentID == "" {
		utils.Error(ctx, http.StatusBadRequest, 40026, "missing comment id")
		return
	}
	comment, err := p.comments.FindByID(commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40424, "comment not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to load comment")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40123, "unauthorized")
		return
	}
	if comment.UserID != userID && !isAdmin(ctx) {
		utils.Error(ctx, http.StatusForbidden, 40321, "you can only delete your own comment")
		return
	}

	if err := p.comments.Delete(commentID); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to delete comment")
		return
	}

	utils.InvalidateByPrefix("cache:posts:detail:" + comment.PostID)
	utils.InvalidateByPrefix("cache:feed:")

	utils.Success(ctx, gin.H{"message": "comment deleted"})
}
