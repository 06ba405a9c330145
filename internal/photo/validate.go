package photo

import "kennel_backend/pkg/apperrors"

const errDomain = "photo"

// FileInfo is what validation needs to know about a candidate file.
type FileInfo struct {
	Name     string
	Size     int64
	MIMEType string
}

// ValidateFile checks the MIME allow-list and the size limit for kind.
// The client SDK runs the same check before uploading, but this server
// side check is the authority.
func ValidateFile(info FileInfo, kind Kind) error {
	if !IsAllowedMIME(info.MIMEType) {
		return apperrors.NewInvalidFileError(errDomain, info.MIMEType)
	}
	if limit := SizeLimit(kind); info.Size > limit {
		return apperrors.NewTooLargeError(errDomain, info.Size, limit)
	}
	return nil
}
