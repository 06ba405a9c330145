package dto

import "gorm.io/datatypes"

// Create/update request bodies for the admin console. Photo fields are
// absent on purpose: photo references only change through the photo
// pipeline endpoints.

type CreateMemberRequest struct {
	Name        string         `json:"name" validate:"required,max=120"`
	Breed       string         `json:"breed" validate:"required,max=120"`
	Gender      string         `json:"gender" validate:"required,oneof=male female"`
	BirthDate   string         `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Description string         `json:"description"`
	Titles      datatypes.JSON `json:"titles"`
}

type UpdateMemberRequest struct {
	Name        *string         `json:"name" validate:"omitempty,max=120"`
	Breed       *string         `json:"breed" validate:"omitempty,max=120"`
	Gender      *string         `json:"gender" validate:"omitempty,oneof=male female"`
	BirthDate   *string         `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Description *string         `json:"description"`
	Titles      *datatypes.JSON `json:"titles"`
	IsRetired   *bool           `json:"isRetired"`
}

type CreatePuppyRequest struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Breed       string  `json:"breed" validate:"required,max=120"`
	Gender      string  `json:"gender" validate:"required,oneof=male female"`
	BirthDate   string  `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	PriceCents  int64   `json:"priceCents" validate:"min=0"`
	Description string  `json:"description"`
	SireID      *string `json:"sireId" validate:"omitempty,uuid"`
	DamID       *string `json:"damId" validate:"omitempty,uuid"`
}

type UpdatePuppyRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Breed       *string `json:"breed" validate:"omitempty,max=120"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female"`
	BirthDate   *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	PriceCents  *int64  `json:"priceCents" validate:"omitempty,min=0"`
	Status      *string `json:"status" validate:"omitempty,oneof=available reserved sold"`
	Description *string `json:"description"`
	SireID      *string `json:"sireId" validate:"omitempty,uuid"`
	DamID       *string `json:"damId" validate:"omitempty,uuid"`
}

type CreateEnvironmentRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Category    string `json:"category" validate:"omitempty,oneof=indoor outdoor medical"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

type UpdateEnvironmentRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Category    *string `json:"category" validate:"omitempty,oneof=indoor outdoor medical"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sortOrder"`
}

type CreatePostRequest struct {
	Title      string         `json:"title" validate:"required,max=200"`
	Slug       string         `json:"slug" validate:"required,max=200"`
	Excerpt    string         `json:"excerpt"`
	Body       string         `json:"body"`
	CoverImage string         `json:"coverImage"`
	Tags       datatypes.JSON `json:"tags"`
	Published  bool           `json:"published"`
}

type UpdatePostRequest struct {
	Title      *string         `json:"title" validate:"omitempty,max=200"`
	Slug       *string         `json:"slug" validate:"omitempty,max=200"`
	Excerpt    *string         `json:"excerpt"`
	Body       *string         `json:"body"`
	CoverImage *string         `json:"coverImage"`
	Tags       *datatypes.JSON `json:"tags"`
	Published  *bool           `json:"published"`
}

type CreateInquiryRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=40"`
	Message string `json:"message" validate:"required,max=4000"`
}
