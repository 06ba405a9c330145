package handlers

import (
	"github.com/gin-gonic/gin"

	"kennel_backend/internal/services"
	"kennel_backend/internal/services/dto"
	"kennel_backend/pkg/apperrors"
)

type MemberHandler struct {
	*BaseHandler
	memberService services.MemberService
}

func NewMemberHandler(base *BaseHandler, memberService services.MemberService) *MemberHandler {
	return &MemberHandler{
		BaseHandler:   base,
		memberService: memberService,
	}
}

// RegisterRoutes mounts the admin member routes (auth applied upstream).
func (h *MemberHandler) RegisterRoutes(r *gin.RouterGroup) {
	members := r.Group("/members")
	{
		members.POST("", h.Create)
		members.GET("", h.List)
		members.GET("/:id", h.Get)
		members.PUT("/:id", h.Update)
		members.DELETE("/:id", h.Delete)

		// Photo pipeline
		members.POST("/:id/photos", h.UploadPhoto)
		members.DELETE("/:id/photos", h.DeletePhoto)
	}
}

// RegisterPublicRoutes mounts the marketing-site read endpoints.
func (h *MemberHandler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/members", h.ListPublic)
	r.GET("/members/:id", h.Get)
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req dto.CreateMemberRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"member": member})
}

func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.memberService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"member": member})
}

func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberService.List(c.Request.Context(), h.GetDB(c), true)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"members": members})
}

func (h *MemberHandler) ListPublic(c *gin.Context) {
	members, err := h.memberService.List(c.Request.Context(), h.GetDB(c), false)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"members": members})
}

func (h *MemberHandler) Update(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	member, err := h.memberService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"member": member})
}

func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.memberService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{})
}

// UploadPhoto accepts a multipart body with a binary "file" field and a
// "type" field naming the photo role.
func (h *MemberHandler) UploadPhoto(c *gin.Context) {
	file := h.FormFile(c)
	if file == nil {
		return
	}
	roleStr := c.PostForm("type")

	result, member, err := h.memberService.UploadPhoto(c.Request.Context(), h.GetDB(c), c.Param("id"), roleStr, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"url": result.URL, "type": result.Role, "member": member})
}

// DeletePhoto takes the target URL and role as query parameters.
func (h *MemberHandler) DeletePhoto(c *gin.Context) {
	url := c.Query("url")
	roleStr := c.Query("type")
	if url == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("url query parameter is required"))
		return
	}

	member, err := h.memberService.DeletePhoto(c.Request.Context(), h.GetDB(c), c.Param("id"), roleStr, url)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"member": member})
}
