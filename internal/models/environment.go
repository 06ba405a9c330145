package models

import (
	"github.com/lib/pq"

	"kennel_backend/internal/photo"
)

// Environment is a facility area shown on the marketing site (whelping
// room, play yard, grooming station and so on).
type Environment struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Category    string `json:"category"` // indoor, outdoor, medical
	Description string `gorm:"type:text" json:"description"`
	SortOrder   int    `gorm:"default:0" json:"sortOrder"`

	// Photo fields, one per role
	CoverImage      string         `gorm:"column:cover_image" json:"coverImage"`
	Album           pq.StringArray `gorm:"column:album;type:text[]" json:"album"`
	EquipmentPhotos pq.StringArray `gorm:"column:equipment_photos;type:text[]" json:"equipmentPhotos"`
	DetailPhotos    pq.StringArray `gorm:"column:detail_photos;type:text[]" json:"detailPhotos"`
}

func (e *Environment) OwnerID() string { return e.ID }

func (e *Environment) OwnerKind() photo.Kind { return photo.KindEnvironment }

func (e *Environment) PhotoBinding(role photo.Role) (photo.Binding, error) {
	switch role {
	case photo.RoleCover:
		return photo.Binding{Single: &e.CoverImage}, nil
	case photo.RoleAlbum:
		return photo.Binding{List: &e.Album}, nil
	case photo.RoleEquipment:
		return photo.Binding{List: &e.EquipmentPhotos}, nil
	case photo.RoleDetails:
		return photo.Binding{List: &e.DetailPhotos}, nil
	default:
		return photo.Binding{}, photo.ErrUnmappedRole(photo.KindEnvironment, role)
	}
}
