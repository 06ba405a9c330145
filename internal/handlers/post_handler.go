package handlers

import (
	"github.com/gin-gonic/gin"

	"kennel_backend/internal/services"
	"kennel_backend/internal/services/dto"
	"kennel_backend/pkg/apperrors"
)

type PostHandler struct {
	*BaseHandler
	postService services.PostService
}

func NewPostHandler(base *BaseHandler, postService services.PostService) *PostHandler {
	return &PostHandler{
		BaseHandler: base,
		postService: postService,
	}
}

func (h *PostHandler) RegisterRoutes(r *gin.RouterGroup) {
	posts := r.Group("/posts")
	{
		posts.POST("", h.Create)
		posts.GET("", h.List)
		posts.GET("/:id", h.Get)
		posts.PUT("/:id", h.Update)
		posts.DELETE("/:id", h.Delete)
	}
}

func (h *PostHandler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/posts", h.ListPublished)
	r.GET("/posts/:slug", h.GetBySlug)
}

func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.postService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"post": post})
}

func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"post": post})
}

func (h *PostHandler) GetBySlug(c *gin.Context) {
	post, err := h.postService.GetBySlug(c.Request.Context(), h.GetDB(c), c.Param("slug"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"post": post})
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context(), h.GetDB(c), false)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"posts": posts})
}

func (h *PostHandler) ListPublished(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context(), h.GetDB(c), true)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"posts": posts})
}

func (h *PostHandler) Update(c *gin.Context) {
	var req dto.UpdatePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.postService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"post": post})
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{})
}
