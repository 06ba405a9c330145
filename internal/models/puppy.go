package models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"kennel_backend/internal/photo"
)

type PuppyStatus string

const (
	PuppyStatusAvailable PuppyStatus = "available"
	PuppyStatusReserved  PuppyStatus = "reserved"
	PuppyStatusSold      PuppyStatus = "sold"
)

// Puppy is a dog listed for sale.
type Puppy struct {
	BaseModel
	Name        string         `gorm:"not null" json:"name"`
	Breed       string         `gorm:"not null" json:"breed"`
	Gender      string         `gorm:"not null" json:"gender"`
	BirthDate   datatypes.Date `json:"birthDate"`
	PriceCents  int64          `gorm:"default:0" json:"priceCents"`
	Status      PuppyStatus    `gorm:"default:'available';index" json:"status"`
	Description string         `gorm:"type:text" json:"description"`

	// Parents, when they are kennel members
	SireID *string `gorm:"type:uuid" json:"sireId"`
	DamID  *string `gorm:"type:uuid" json:"damId"`
	Sire   *Member `gorm:"foreignKey:SireID" json:"sire,omitempty"`
	Dam    *Member `gorm:"foreignKey:DamID" json:"dam,omitempty"`

	// Photo fields, one per role
	CoverImage        string         `gorm:"column:cover_image" json:"coverImage"`
	Album             pq.StringArray `gorm:"column:album;type:text[]" json:"album"`
	PedigreePhotos    pq.StringArray `gorm:"column:pedigree_photos;type:text[]" json:"pedigreePhotos"`
	HealthCheckPhotos pq.StringArray `gorm:"column:health_check_photos;type:text[]" json:"healthCheckPhotos"`
}

func (p *Puppy) OwnerID() string { return p.ID }

func (p *Puppy) OwnerKind() photo.Kind { return photo.KindPuppy }

func (p *Puppy) PhotoBinding(role photo.Role) (photo.Binding, error) {
	switch role {
	case photo.RoleCover:
		return photo.Binding{Single: &p.CoverImage}, nil
	case photo.RoleAlbum:
		return photo.Binding{List: &p.Album}, nil
	case photo.RolePedigree:
		return photo.Binding{List: &p.PedigreePhotos}, nil
	case photo.RoleHealthCheck:
		return photo.Binding{List: &p.HealthCheckPhotos}, nil
	default:
		return photo.Binding{}, photo.ErrUnmappedRole(photo.KindPuppy, role)
	}
}
