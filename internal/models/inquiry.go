package models

// Inquiry is a purchase inquiry submitted from the public puppy page.
type Inquiry struct {
	BaseModel
	PuppyID string `gorm:"type:uuid;not null;index" json:"puppyId"`
	Puppy   *Puppy `gorm:"foreignKey:PuppyID" json:"puppy,omitempty"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `json:"phone"`
	Message string `gorm:"type:text" json:"message"`
	Handled bool   `gorm:"default:false;index" json:"handled"`
}
