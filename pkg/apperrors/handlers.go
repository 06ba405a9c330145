package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope every failed request gets:
// {"success": false, "error": "...", "code": "..."}.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   string    `json:"error"`
	Code    ErrorCode `json:"code"`
}

// GinErrorHandler renders AppErrors as HTTP responses.
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError writes the envelope for err, wrapping unknown errors
// as internal ones first.
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	message := appErr.Message
	if appErr.HTTPCode >= 500 {
		slog.Error("request failed", "domain", appErr.Domain, "code", appErr.Code, "error", appErr.Error())
		if !h.Debug {
			// Hide internals in production responses.
			message = "Internal server error"
		}
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Error:   message,
		Code:    appErr.Code,
	})
}

// HandleError is the shorthand used by handlers.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

// HandleValidationError converts a validation failure into the envelope.
func HandleValidationError(c *gin.Context, err error) {
	HandleError(c, NewBadRequestError(err.Error()))
}
