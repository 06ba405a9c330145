package photo

import (
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// AllowedMIMETypes is the upload allow-list, identical for every entity kind.
var AllowedMIMETypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
}

// IsAllowedMIME reports whether mt is on the allow-list.
func IsAllowedMIME(mt string) bool {
	for _, allowed := range AllowedMIMETypes {
		if mt == allowed {
			return true
		}
	}
	return false
}

// ExtensionForMIME maps a MIME type to the stored file extension. The
// client filename is never trusted for this; files routinely arrive with
// missing or generic extensions. Total function with an explicit default.
func ExtensionForMIME(mt string) string {
	switch mt {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".bin"
	}
}

// DetectMIME sniffs the actual content type and rewinds the reader.
func DetectMIME(r io.ReadSeeker) (string, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to sniff content type: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind file: %w", err)
	}
	return mt.String(), nil
}

// BlobPath builds the storage path for a new blob:
// {entityId}/{role}/{uuid}.{ext}, collision-resistant by construction.
func BlobPath(entityID string, role Role, mimeType string) string {
	return fmt.Sprintf("%s/%s/%s%s", entityID, role, uuid.NewString(), ExtensionForMIME(mimeType))
}
