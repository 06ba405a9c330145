package handlers

import (
	"github.com/gin-gonic/gin"

	"kennel_backend/internal/services"
	"kennel_backend/internal/services/dto"
	"kennel_backend/pkg/apperrors"
)

type EnvironmentHandler struct {
	*BaseHandler
	envService services.EnvironmentService
}

func NewEnvironmentHandler(base *BaseHandler, envService services.EnvironmentService) *EnvironmentHandler {
	return &EnvironmentHandler{
		BaseHandler: base,
		envService:  envService,
	}
}

func (h *EnvironmentHandler) RegisterRoutes(r *gin.RouterGroup) {
	envs := r.Group("/environments")
	{
		envs.POST("", h.Create)
		envs.GET("", h.List)
		envs.GET("/:id", h.Get)
		envs.PUT("/:id", h.Update)
		envs.DELETE("/:id", h.Delete)

		// Photo pipeline
		envs.POST("/:id/photos", h.UploadPhoto)
		envs.DELETE("/:id/photos", h.DeletePhoto)
	}
}

func (h *EnvironmentHandler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/environments", h.List)
	r.GET("/environments/:id", h.Get)
}

func (h *EnvironmentHandler) Create(c *gin.Context) {
	var req dto.CreateEnvironmentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	env, err := h.envService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"environment": env})
}

func (h *EnvironmentHandler) Get(c *gin.Context) {
	env, err := h.envService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"environment": env})
}

func (h *EnvironmentHandler) List(c *gin.Context) {
	envs, err := h.envService.List(c.Request.Context(), h.GetDB(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"environments": envs})
}

func (h *EnvironmentHandler) Update(c *gin.Context) {
	var req dto.UpdateEnvironmentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	env, err := h.envService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"environment": env})
}

func (h *EnvironmentHandler) Delete(c *gin.Context) {
	if err := h.envService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{})
}

func (h *EnvironmentHandler) UploadPhoto(c *gin.Context) {
	file := h.FormFile(c)
	if file == nil {
		return
	}
	roleStr := c.PostForm("type")

	result, env, err := h.envService.UploadPhoto(c.Request.Context(), h.GetDB(c), c.Param("id"), roleStr, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"url": result.URL, "type": result.Role, "environment": env})
}

func (h *EnvironmentHandler) DeletePhoto(c *gin.Context) {
	url := c.Query("url")
	roleStr := c.Query("type")
	if url == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("url query parameter is required"))
		return
	}

	env, err := h.envService.DeletePhoto(c.Request.Context(), h.GetDB(c), c.Param("id"), roleStr, url)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"environment": env})
}
