package repositories

import (
	"gorm.io/gorm"

	"kennel_backend/internal/models"
)

type PuppyRepository interface {
	Create(db *gorm.DB, puppy *models.Puppy) error
	FindByID(db *gorm.DB, id string) (*models.Puppy, error)
	List(db *gorm.DB, status models.PuppyStatus) ([]models.Puppy, error)
	Save(db *gorm.DB, puppy *models.Puppy) error
	Delete(db *gorm.DB, id string) error
}

type puppyRepository struct{}

func NewPuppyRepository() PuppyRepository {
	return &puppyRepository{}
}

func (r *puppyRepository) Create(db *gorm.DB, puppy *models.Puppy) error {
	return db.Create(puppy).Error
}

func (r *puppyRepository) FindByID(db *gorm.DB, id string) (*models.Puppy, error) {
	var puppy models.Puppy
	if err := db.Preload("Sire").Preload("Dam").First(&puppy, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &puppy, nil
}

// List returns puppies, optionally filtered by status ("" = all).
func (r *puppyRepository) List(db *gorm.DB, status models.PuppyStatus) ([]models.Puppy, error) {
	var puppies []models.Puppy
	query := db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&puppies).Error; err != nil {
		return nil, err
	}
	return puppies, nil
}

func (r *puppyRepository) Save(db *gorm.DB, puppy *models.Puppy) error {
	return db.Save(puppy).Error
}

func (r *puppyRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Puppy{}, "id = ?", id).Error
}
