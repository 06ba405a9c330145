package apperrors

// ErrorCode is the machine-readable error identifier returned to clients.
type ErrorCode string

const (
	// System errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"

	// Generic business errors
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"

	// Photo pipeline errors
	CodeInvalidFile ErrorCode = "INVALID_FILE"
	CodeTooLarge    ErrorCode = "TOO_LARGE"
	CodeInvalidURL  ErrorCode = "INVALID_URL"
	CodeUploadError ErrorCode = "UPLOAD_ERROR"

	// Authentication / authorization
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
)
