package models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"kennel_backend/internal/photo"
)

// Member is a breeding-stock dog shown on the marketing site.
type Member struct {
	BaseModel
	Name        string         `gorm:"not null" json:"name"`
	Breed       string         `gorm:"not null" json:"breed"`
	Gender      string         `gorm:"not null" json:"gender"` // male, female
	BirthDate   datatypes.Date `json:"birthDate"`
	Description string         `gorm:"type:text" json:"description"`
	Titles      datatypes.JSON `gorm:"type:jsonb" json:"titles"` // show titles, certifications
	IsRetired   bool           `gorm:"default:false" json:"isRetired"`

	// Photo fields, one per role
	Avatar            string         `gorm:"column:avatar" json:"avatar"`
	Album             pq.StringArray `gorm:"column:album;type:text[]" json:"album"`
	PedigreePhotos    pq.StringArray `gorm:"column:pedigree_photos;type:text[]" json:"pedigreePhotos"`
	HealthCheckPhotos pq.StringArray `gorm:"column:health_check_photos;type:text[]" json:"healthCheckPhotos"`
}

func (m *Member) OwnerID() string { return m.ID }

func (m *Member) OwnerKind() photo.Kind { return photo.KindMember }

// PhotoBinding maps a role onto the owning field. Kept in lock-step with
// photo.FieldFor; a miss here is a configuration error.
func (m *Member) PhotoBinding(role photo.Role) (photo.Binding, error) {
	switch role {
	case photo.RoleAvatar:
		return photo.Binding{Single: &m.Avatar}, nil
	case photo.RoleAlbum:
		return photo.Binding{List: &m.Album}, nil
	case photo.RolePedigree:
		return photo.Binding{List: &m.PedigreePhotos}, nil
	case photo.RoleHealthCheck:
		return photo.Binding{List: &m.HealthCheckPhotos}, nil
	default:
		return photo.Binding{}, photo.ErrUnmappedRole(photo.KindMember, role)
	}
}
