package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"kennel_backend/internal/models"
	"kennel_backend/internal/repositories"
	"kennel_backend/internal/services/dto"
	"kennel_backend/pkg/apperrors"
)

const postDomain = "post"

type PostService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreatePostRequest) (*models.Post, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Post, error)
	GetBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Post, error)
	List(ctx context.Context, db *gorm.DB, publishedOnly bool) ([]models.Post, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error
}

type postService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &postService{
		postRepo: postRepo,
	}
}

func (s *postService) Create(ctx context.Context, db *gorm.DB, req *dto.CreatePostRequest) (*models.Post, error) {
	// Slugs are unique; surface a conflict instead of a bare DB error.
	if _, err := s.postRepo.FindBySlug(db.WithContext(ctx), req.Slug); err == nil {
		return nil, apperrors.New(apperrors.CodeAlreadyExists, postDomain, "slug already in use", 409)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.InternalError(err)
	}

	post := &models.Post{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Body:       req.Body,
		CoverImage: req.CoverImage,
		Tags:       req.Tags,
		Published:  req.Published,
	}
	if post.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.postRepo.Create(db.WithContext(ctx), post); err != nil {
		return nil, apperrors.NewDatabaseError(postDomain, err)
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, db *gorm.DB, id string) (*models.Post, error) {
	post, err := s.postRepo.FindByID(db.WithContext(ctx), id)
	if err != nil {
		return nil, mapFindErr(err, postDomain, "post")
	}
	return post, nil
}

func (s *postService) GetBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Post, error) {
	post, err := s.postRepo.FindBySlug(db.WithContext(ctx), slug)
	if err != nil {
		return nil, mapFindErr(err, postDomain, "post")
	}
	return post, nil
}

func (s *postService) List(ctx context.Context, db *gorm.DB, publishedOnly bool) ([]models.Post, error) {
	posts, err := s.postRepo.List(db.WithContext(ctx), publishedOnly)
	if err != nil {
		return nil, apperrors.NewDatabaseError(postDomain, err)
	}
	return posts, nil
}

func (s *postService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdatePostRequest) (*models.Post, error) {
	post, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.CoverImage != nil {
		post.CoverImage = *req.CoverImage
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}
	if req.Published != nil {
		if *req.Published && !post.Published {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Published = *req.Published
	}

	if err := s.postRepo.Save(db.WithContext(ctx), post); err != nil {
		return nil, apperrors.NewDatabaseError(postDomain, err)
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if _, err := s.Get(ctx, db, id); err != nil {
		return err
	}
	if err := s.postRepo.Delete(db.WithContext(ctx), id); err != nil {
		return apperrors.NewDatabaseError(postDomain, err)
	}
	return nil
}
