package services

import (
	"context"
	"mime/multipart"

	"gorm.io/gorm"

	"kennel_backend/internal/models"
	"kennel_backend/internal/photo"
	"kennel_backend/internal/repositories"
	"kennel_backend/internal/services/dto"
	"kennel_backend/pkg/apperrors"
)

const environmentDomain = "environment"

type EnvironmentService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateEnvironmentRequest) (*models.Environment, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Environment, error)
	List(ctx context.Context, db *gorm.DB) ([]models.Environment, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateEnvironmentRequest) (*models.Environment, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error

	UploadPhoto(ctx context.Context, db *gorm.DB, id, roleStr string, file *multipart.FileHeader) (*dto.PhotoUploadResult, *models.Environment, error)
	DeletePhoto(ctx context.Context, db *gorm.DB, id, roleStr, url string) (*models.Environment, error)
}

type environmentService struct {
	envRepo repositories.EnvironmentRepository
	photos  PhotoService
}

func NewEnvironmentService(envRepo repositories.EnvironmentRepository, photos PhotoService) EnvironmentService {
	return &environmentService{
		envRepo: envRepo,
		photos:  photos,
	}
}

func (s *environmentService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateEnvironmentRequest) (*models.Environment, error) {
	env := &models.Environment{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}
	if err := s.envRepo.Create(db.WithContext(ctx), env); err != nil {
		return nil, apperrors.NewDatabaseError(environmentDomain, err)
	}
	return env, nil
}

func (s *environmentService) Get(ctx context.Context, db *gorm.DB, id string) (*models.Environment, error) {
	env, err := s.envRepo.FindByID(db.WithContext(ctx), id)
	if err != nil {
		return nil, mapFindErr(err, environmentDomain, "environment")
	}
	return env, nil
}

func (s *environmentService) List(ctx context.Context, db *gorm.DB) ([]models.Environment, error) {
	envs, err := s.envRepo.List(db.WithContext(ctx))
	if err != nil {
		return nil, apperrors.NewDatabaseError(environmentDomain, err)
	}
	return envs, nil
}

func (s *environmentService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateEnvironmentRequest) (*models.Environment, error) {
	env, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		env.Name = *req.Name
	}
	if req.Category != nil {
		env.Category = *req.Category
	}
	if req.Description != nil {
		env.Description = *req.Description
	}
	if req.SortOrder != nil {
		env.SortOrder = *req.SortOrder
	}

	if err := s.envRepo.Save(db.WithContext(ctx), env); err != nil {
		return nil, apperrors.NewDatabaseError(environmentDomain, err)
	}
	return env, nil
}

func (s *environmentService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if _, err := s.Get(ctx, db, id); err != nil {
		return err
	}
	if err := s.envRepo.Delete(db.WithContext(ctx), id); err != nil {
		return apperrors.NewDatabaseError(environmentDomain, err)
	}
	return nil
}

func (s *environmentService) UploadPhoto(ctx context.Context, db *gorm.DB, id, roleStr string, file *multipart.FileHeader) (*dto.PhotoUploadResult, *models.Environment, error) {
	env, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, nil, err
	}
	role, err := photo.ParseRole(photo.KindEnvironment, roleStr)
	if err != nil {
		return nil, nil, apperrors.NewBadRequestError(err.Error())
	}
	result, err := s.photos.UploadPhoto(ctx, db, env, role, file)
	if err != nil {
		return nil, nil, err
	}
	return result, env, nil
}

func (s *environmentService) DeletePhoto(ctx context.Context, db *gorm.DB, id, roleStr, url string) (*models.Environment, error) {
	env, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}
	role, err := photo.ParseRole(photo.KindEnvironment, roleStr)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if err := s.photos.DeletePhoto(ctx, db, env, role, url); err != nil {
		return nil, err
	}
	return env, nil
}
