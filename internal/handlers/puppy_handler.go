package handlers

import (
	"github.com/gin-gonic/gin"

	"kennel_backend/internal/models"
	"kennel_backend/internal/services"
	"kennel_backend/internal/services/dto"
	"kennel_backend/pkg/apperrors"
)

type PuppyHandler struct {
	*BaseHandler
	puppyService   services.PuppyService
	inquiryService services.InquiryService
}

func NewPuppyHandler(base *BaseHandler, puppyService services.PuppyService, inquiryService services.InquiryService) *PuppyHandler {
	return &PuppyHandler{
		BaseHandler:    base,
		puppyService:   puppyService,
		inquiryService: inquiryService,
	}
}

func (h *PuppyHandler) RegisterRoutes(r *gin.RouterGroup) {
	puppies := r.Group("/puppies")
	{
		puppies.POST("", h.Create)
		puppies.GET("", h.List)
		puppies.GET("/:id", h.Get)
		puppies.PUT("/:id", h.Update)
		puppies.DELETE("/:id", h.Delete)

		// Photo pipeline
		puppies.POST("/:id/photos", h.UploadPhoto)
		puppies.DELETE("/:id/photos", h.DeletePhoto)
	}

	inquiries := r.Group("/inquiries")
	{
		inquiries.GET("", h.ListInquiries)
		inquiries.PUT("/:id/handled", h.MarkInquiryHandled)
	}
}

func (h *PuppyHandler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/puppies", h.ListAvailable)
	r.GET("/puppies/:id", h.Get)
	r.POST("/puppies/:id/inquiries", h.CreateInquiry)
}

func (h *PuppyHandler) Create(c *gin.Context) {
	var req dto.CreatePuppyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	puppy, err := h.puppyService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"puppy": puppy})
}

func (h *PuppyHandler) Get(c *gin.Context) {
	puppy, err := h.puppyService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"puppy": puppy})
}

func (h *PuppyHandler) List(c *gin.Context) {
	status := models.PuppyStatus(c.Query("status"))
	puppies, err := h.puppyService.List(c.Request.Context(), h.GetDB(c), status)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"puppies": puppies})
}

func (h *PuppyHandler) ListAvailable(c *gin.Context) {
	puppies, err := h.puppyService.List(c.Request.Context(), h.GetDB(c), models.PuppyStatusAvailable)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"puppies": puppies})
}

func (h *PuppyHandler) Update(c *gin.Context) {
	var req dto.UpdatePuppyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	puppy, err := h.puppyService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"puppy": puppy})
}

func (h *PuppyHandler) Delete(c *gin.Context) {
	if err := h.puppyService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{})
}

func (h *PuppyHandler) UploadPhoto(c *gin.Context) {
	file := h.FormFile(c)
	if file == nil {
		return
	}
	roleStr := c.PostForm("type")

	result, puppy, err := h.puppyService.UploadPhoto(c.Request.Context(), h.GetDB(c), c.Param("id"), roleStr, file)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"url": result.URL, "type": result.Role, "puppy": puppy})
}

func (h *PuppyHandler) DeletePhoto(c *gin.Context) {
	url := c.Query("url")
	roleStr := c.Query("type")
	if url == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("url query parameter is required"))
		return
	}

	puppy, err := h.puppyService.DeletePhoto(c.Request.Context(), h.GetDB(c), c.Param("id"), roleStr, url)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"puppy": puppy})
}

func (h *PuppyHandler) CreateInquiry(c *gin.Context) {
	var req dto.CreateInquiryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	inquiry, err := h.inquiryService.Create(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"inquiry": inquiry})
}

func (h *PuppyHandler) ListInquiries(c *gin.Context) {
	unhandledOnly := c.Query("unhandled") == "true"
	inquiries, err := h.inquiryService.List(c.Request.Context(), h.GetDB(c), unhandledOnly)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"inquiries": inquiries})
}

func (h *PuppyHandler) MarkInquiryHandled(c *gin.Context) {
	inquiry, err := h.inquiryService.MarkHandled(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, gin.H{"inquiry": inquiry})
}
