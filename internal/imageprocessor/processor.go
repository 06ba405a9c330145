package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register webp decoding

	"kennel_backend/internal/photo"
)

// Profile is the target dimensions/quality for one photo role.
type Profile struct {
	Name      string
	MaxWidth  int
	MaxHeight int
	Quality   int // JPEG quality (1-100)
}

var (
	// Square low-resolution profile for avatars.
	ProfileAvatar = Profile{Name: "avatar", MaxWidth: 512, MaxHeight: 512, Quality: 80}
	// Wide profile for cover shots.
	ProfileCover = Profile{Name: "cover", MaxWidth: 1600, MaxHeight: 900, Quality: 85}
	// High-resolution profile for gallery and detail shots.
	ProfileGallery = Profile{Name: "gallery", MaxWidth: 1600, MaxHeight: 1600, Quality: 85}
	// Document profile for pedigree, health-check and equipment scans.
	ProfileDocument = Profile{Name: "document", MaxWidth: 1200, MaxHeight: 1200, Quality: 85}
)

// ProfileForRole selects the compression profile for a photo role.
func ProfileForRole(role photo.Role) Profile {
	switch role {
	case photo.RoleAvatar:
		return ProfileAvatar
	case photo.RoleCover:
		return ProfileCover
	case photo.RoleAlbum, photo.RoleDetails:
		return ProfileGallery
	case photo.RolePedigree, photo.RoleHealthCheck, photo.RoleEquipment:
		return ProfileDocument
	default:
		return ProfileGallery
	}
}

// Processor shrinks images. Pure local computation, no I/O beyond the
// reader it is handed.
type Processor struct {
	quality int // default JPEG quality when a profile has none
}

// NewProcessor creates a processor with a default JPEG quality.
func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{
		quality: quality,
	}
}

// Process decodes the image, scales it down to the profile bounds and
// re-encodes it in its original format. WebP input is re-encoded as JPEG
// since the standard encoders do not write webp.
func (p *Processor) Process(reader io.Reader, profile Profile) (io.Reader, error) {
	img, imgFormat, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := p.resize(img, profile.MaxWidth, profile.MaxHeight)

	quality := profile.Quality
	if quality <= 0 {
		quality = p.quality
	}

	var buf bytes.Buffer
	switch imgFormat {
	case "jpeg", "jpg", "webp":
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
	case "png":
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("failed to encode PNG: %w", err)
		}
	case "gif":
		if err := gif.Encode(&buf, resized, nil); err != nil {
			return nil, fmt.Errorf("failed to encode GIF: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported image format: %s", imgFormat)
	}

	return &buf, nil
}

// resize scales img down to fit within maxWidth x maxHeight, keeping the
// aspect ratio. Images already within bounds are returned untouched.
func (p *Processor) resize(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth && height <= maxHeight {
		return img
	}

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight

	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}

// GetImageDimensions returns the pixel dimensions of an image.
func GetImageDimensions(reader io.Reader) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(reader)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// IsValidImage reports whether the reader holds a decodable image.
func IsValidImage(reader io.Reader) bool {
	_, _, err := image.DecodeConfig(reader)
	return err == nil
}
