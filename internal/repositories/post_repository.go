package repositories

import (
	"gorm.io/gorm"

	"kennel_backend/internal/models"
)

type PostRepository interface {
	Create(db *gorm.DB, post *models.Post) error
	FindByID(db *gorm.DB, id string) (*models.Post, error)
	FindBySlug(db *gorm.DB, slug string) (*models.Post, error)
	List(db *gorm.DB, publishedOnly bool) ([]models.Post, error)
	Save(db *gorm.DB, post *models.Post) error
	Delete(db *gorm.DB, id string) error
}

type postRepository struct{}

func NewPostRepository() PostRepository {
	return &postRepository{}
}

func (r *postRepository) Create(db *gorm.DB, post *models.Post) error {
	return db.Create(post).Error
}

func (r *postRepository) FindByID(db *gorm.DB, id string) (*models.Post, error) {
	var post models.Post
	if err := db.First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindBySlug(db *gorm.DB, slug string) (*models.Post, error) {
	var post models.Post
	if err := db.First(&post, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(db *gorm.DB, publishedOnly bool) ([]models.Post, error) {
	var posts []models.Post
	query := db.Order("created_at DESC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Save(db *gorm.DB, post *models.Post) error {
	return db.Save(post).Error
}

func (r *postRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Post{}, "id = ?", id).Error
}
