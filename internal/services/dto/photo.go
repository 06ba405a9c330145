package dto

import "kennel_backend/internal/photo"

// PhotoUploadResult is what a successful upload transaction returns.
// The refreshed entity record travels separately, keyed by entity kind.
type PhotoUploadResult struct {
	URL  string     `json:"url"`
	Role photo.Role `json:"type"`
}
