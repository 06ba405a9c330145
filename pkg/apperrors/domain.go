package apperrors

import (
	"fmt"
	"net/http"
)

// Factories for the photo pipeline error taxonomy. Handlers map these
// straight onto the response envelope, so codes here are part of the
// external contract.

// NewNotFoundError reports a missing entity record.
func NewNotFoundError(domain, what string) *AppError {
	return New(CodeNotFound, domain, fmt.Sprintf("%s not found", what), http.StatusNotFound)
}

// NewInvalidFileError rejects a file by MIME type.
func NewInvalidFileError(domain, mimeType string) *AppError {
	return New(CodeInvalidFile, domain,
		fmt.Sprintf("file type %q is not allowed", mimeType), http.StatusBadRequest)
}

// NewTooLargeError rejects a file by size.
func NewTooLargeError(domain string, size, limit int64) *AppError {
	return New(CodeTooLarge, domain,
		fmt.Sprintf("file size %d exceeds limit of %d bytes", size, limit), http.StatusBadRequest)
}

// NewInvalidURLError rejects a delete target whose URL cannot be mapped
// back to a storage path.
func NewInvalidURLError(domain, url string) *AppError {
	return New(CodeInvalidURL, domain,
		fmt.Sprintf("url %q does not belong to this storage", url), http.StatusBadRequest)
}

// NewStorageError wraps a blob write/delete failure.
func NewStorageError(domain string, err error) *AppError {
	return Wrap(err, CodeStorageError, domain, "storage operation failed", http.StatusInternalServerError)
}

// NewUploadError wraps a blob write failure during upload.
func NewUploadError(domain string, err error) *AppError {
	return Wrap(err, CodeUploadError, domain, "failed to store uploaded file", http.StatusInternalServerError)
}

// NewDatabaseError wraps a record write failure.
func NewDatabaseError(domain string, err error) *AppError {
	return Wrap(err, CodeDatabaseError, domain, "failed to update record", http.StatusInternalServerError)
}
