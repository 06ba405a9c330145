package uploader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"kennel_backend/internal/photo"
)

// File is one candidate photo held in memory.
type File struct {
	Name string
	Data []byte
}

// Open loads a file from disk.
func Open(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return File{Name: filepath.Base(path), Data: data}, nil
}

// Validate checks the MIME allow-list and the size class for kind before
// any compression or upload happens. This is a UX check only; the server
// repeats it and is the authority.
func Validate(file File, kind photo.Kind) error {
	mt := mimetype.Detect(file.Data)
	if !photo.IsAllowedMIME(mt.String()) {
		return fmt.Errorf("%s: file type %s is not allowed (use JPEG, PNG, WebP or GIF)", file.Name, mt.String())
	}
	if limit := photo.SizeLimit(kind); int64(len(file.Data)) > limit {
		return fmt.Errorf("%s: file is %d bytes, limit is %d", file.Name, len(file.Data), limit)
	}
	return nil
}
