package repositories

import (
	"gorm.io/gorm"

	"kennel_backend/internal/models"
)

type MemberRepository interface {
	Create(db *gorm.DB, member *models.Member) error
	FindByID(db *gorm.DB, id string) (*models.Member, error)
	List(db *gorm.DB, includeRetired bool) ([]models.Member, error)
	Save(db *gorm.DB, member *models.Member) error
	Delete(db *gorm.DB, id string) error
}

type memberRepository struct{}

func NewMemberRepository() MemberRepository {
	return &memberRepository{}
}

func (r *memberRepository) Create(db *gorm.DB, member *models.Member) error {
	return db.Create(member).Error
}

func (r *memberRepository) FindByID(db *gorm.DB, id string) (*models.Member, error) {
	var member models.Member
	if err := db.First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) List(db *gorm.DB, includeRetired bool) ([]models.Member, error) {
	var members []models.Member
	query := db.Order("created_at DESC")
	if !includeRetired {
		query = query.Where("is_retired = ?", false)
	}
	if err := query.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) Save(db *gorm.DB, member *models.Member) error {
	return db.Save(member).Error
}

func (r *memberRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Member{}, "id = ?", id).Error
}
