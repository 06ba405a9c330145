package repositories

import (
	"gorm.io/gorm"

	"kennel_backend/internal/models"
)

type EnvironmentRepository interface {
	Create(db *gorm.DB, env *models.Environment) error
	FindByID(db *gorm.DB, id string) (*models.Environment, error)
	List(db *gorm.DB) ([]models.Environment, error)
	Save(db *gorm.DB, env *models.Environment) error
	Delete(db *gorm.DB, id string) error
}

type environmentRepository struct{}

func NewEnvironmentRepository() EnvironmentRepository {
	return &environmentRepository{}
}

func (r *environmentRepository) Create(db *gorm.DB, env *models.Environment) error {
	return db.Create(env).Error
}

func (r *environmentRepository) FindByID(db *gorm.DB, id string) (*models.Environment, error) {
	var env models.Environment
	if err := db.First(&env, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &env, nil
}

func (r *environmentRepository) List(db *gorm.DB) ([]models.Environment, error) {
	var envs []models.Environment
	if err := db.Order("sort_order ASC, created_at ASC").Find(&envs).Error; err != nil {
		return nil, err
	}
	return envs, nil
}

func (r *environmentRepository) Save(db *gorm.DB, env *models.Environment) error {
	return db.Save(env).Error
}

func (r *environmentRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Environment{}, "id = ?", id).Error
}
