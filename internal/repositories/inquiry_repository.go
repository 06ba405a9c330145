package repositories

import (
	"gorm.io/gorm"

	"kennel_backend/internal/models"
)

type InquiryRepository interface {
	Create(db *gorm.DB, inquiry *models.Inquiry) error
	FindByID(db *gorm.DB, id string) (*models.Inquiry, error)
	List(db *gorm.DB, unhandledOnly bool) ([]models.Inquiry, error)
	Save(db *gorm.DB, inquiry *models.Inquiry) error
}

type inquiryRepository struct{}

func NewInquiryRepository() InquiryRepository {
	return &inquiryRepository{}
}

func (r *inquiryRepository) Create(db *gorm.DB, inquiry *models.Inquiry) error {
	return db.Create(inquiry).Error
}

func (r *inquiryRepository) FindByID(db *gorm.DB, id string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := db.Preload("Puppy").First(&inquiry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *inquiryRepository) List(db *gorm.DB, unhandledOnly bool) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	query := db.Preload("Puppy").Order("created_at DESC")
	if unhandledOnly {
		query = query.Where("handled = ?", false)
	}
	if err := query.Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *inquiryRepository) Save(db *gorm.DB, inquiry *models.Inquiry) error {
	return db.Save(inquiry).Error
}
