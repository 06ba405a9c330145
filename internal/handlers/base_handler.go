package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kennel_backend/internal/logger"
	"kennel_backend/internal/validator"
	"kennel_backend/pkg/apperrors"
	"kennel_backend/pkg/contextkeys"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// GetDB pulls the *gorm.DB that DBMiddleware stored in the gin context.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "db key not found in context", "key", dbKey)
		panic("DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "db in context has wrong type", "type", fmt.Sprintf("%T", val))
		panic("db in context has incorrect type")
	}

	return db
}

// BindAndValidateJSON binds the request body and runs struct validation.
// Returns false after writing the error response.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	if err := h.validator.Validate(obj); err != nil {
		apperrors.HandleValidationError(c, err)
		return false
	}
	return true
}

// FormFile extracts the multipart file field. Returns nil after writing
// the error response.
func (h *BaseHandler) FormFile(c *gin.Context) *multipart.FileHeader {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("no file provided"))
		return nil
	}
	return fileHeader
}

// OK writes the success envelope with a 200.
func (h *BaseHandler) OK(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Created writes the success envelope with a 201.
func (h *BaseHandler) Created(c *gin.Context, data gin.H) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}
