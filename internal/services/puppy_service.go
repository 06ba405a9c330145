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

const puppyDomain = "puppy"

type PuppyService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreatePuppyRequest) (*models.Puppy, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Puppy, error)
	List(ctx context.Context, db *gorm.DB, status models.PuppyStatus) ([]models.Puppy, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdatePuppyRequest) (*models.Puppy, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error

	UploadPhoto(ctx context.Context, db *gorm.DB, id, roleStr string, file *multipart.FileHeader) (*dto.PhotoUploadResult, *models.Puppy, error)
	DeletePhoto(ctx context.Context, db *gorm.DB, id, roleStr, url string) (*models.Puppy, error)
}

type puppyService struct {
	puppyRepo  repositories.PuppyRepository
	memberRepo repositories.MemberRepository
	photos     PhotoService
}

func NewPuppyService(puppyRepo repositories.PuppyRepository, memberRepo repositories.MemberRepository, photos PhotoService) PuppyService {
	return &puppyService{
		puppyRepo:  puppyRepo,
		memberRepo: memberRepo,
		photos:     photos,
	}
}

// checkParent verifies a sire/dam reference points at an existing member.
func (s *puppyService) checkParent(ctx context.Context, db *gorm.DB, id *string) error {
	if id == nil {
		return nil
	}
	if _, err := s.memberRepo.FindByID(db.WithContext(ctx), *id); err != nil {
		return mapFindErr(err, puppyDomain, "parent member")
	}
	return nil
}

func (s *puppyService) Create(ctx context.Context, db *gorm.DB, req *dto.CreatePuppyRequest) (*models.Puppy, error) {
	if err := s.checkParent(ctx, db, req.SireID); err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, db, req.DamID); err != nil {
		return nil, err
	}

	puppy := &models.Puppy{
		Name:        req.Name,
		Breed:       req.Breed,
		Gender:      req.Gender,
		BirthDate:   parseDate(req.BirthDate),
		PriceCents:  req.PriceCents,
		Status:      models.PuppyStatusAvailable,
		Description: req.Description,
		SireID:      req.SireID,
		DamID:       req.DamID,
	}
	if err := s.puppyRepo.Create(db.WithContext(ctx), puppy); err != nil {
		return nil, apperrors.NewDatabaseError(puppyDomain, err)
	}
	return puppy, nil
}

func (s *puppyService) Get(ctx context.Context, db *gorm.DB, id string) (*models.Puppy, error) {
	puppy, err := s.puppyRepo.FindByID(db.WithContext(ctx), id)
	if err != nil {
		return nil, mapFindErr(err, puppyDomain, "puppy")
	}
	return puppy, nil
}

func (s *puppyService) List(ctx context.Context, db *gorm.DB, status models.PuppyStatus) ([]models.Puppy, error) {
	puppies, err := s.puppyRepo.List(db.WithContext(ctx), status)
	if err != nil {
		return nil, apperrors.NewDatabaseError(puppyDomain, err)
	}
	return puppies, nil
}

func (s *puppyService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdatePuppyRequest) (*models.Puppy, error) {
	puppy, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkParent(ctx, db, req.SireID); err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, db, req.DamID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		puppy.Name = *req.Name
	}
	if req.Breed != nil {
		puppy.Breed = *req.Breed
	}
	if req.Gender != nil {
		puppy.Gender = *req.Gender
	}
	if req.BirthDate != nil {
		puppy.BirthDate = parseDate(*req.BirthDate)
	}
	if req.PriceCents != nil {
		puppy.PriceCents = *req.PriceCents
	}
	if req.Status != nil {
		puppy.Status = models.PuppyStatus(*req.Status)
	}
	if req.Description != nil {
		puppy.Description = *req.Description
	}
	if req.SireID != nil {
		puppy.SireID = req.SireID
	}
	if req.DamID != nil {
		puppy.DamID = req.DamID
	}

	if err := s.puppyRepo.Save(db.WithContext(ctx), puppy); err != nil {
		return nil, apperrors.NewDatabaseError(puppyDomain, err)
	}
	return puppy, nil
}

func (s *puppyService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if _, err := s.Get(ctx, db, id); err != nil {
		return err
	}
	if err := s.puppyRepo.Delete(db.WithContext(ctx), id); err != nil {
		return apperrors.NewDatabaseError(puppyDomain, err)
	}
	return nil
}

func (s *puppyService) UploadPhoto(ctx context.Context, db *gorm.DB, id, roleStr string, file *multipart.FileHeader) (*dto.PhotoUploadResult, *models.Puppy, error) {
	puppy, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, nil, err
	}
	role, err := photo.ParseRole(photo.KindPuppy, roleStr)
	if err != nil {
		return nil, nil, apperrors.NewBadRequestError(err.Error())
	}
	result, err := s.photos.UploadPhoto(ctx, db, puppy, role, file)
	if err != nil {
		return nil, nil, err
	}
	return result, puppy, nil
}

func (s *puppyService) DeletePhoto(ctx context.Context, db *gorm.DB, id, roleStr, url string) (*models.Puppy, error) {
	puppy, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}
	role, err := photo.ParseRole(photo.KindPuppy, roleStr)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if err := s.photos.DeletePhoto(ctx, db, puppy, role, url); err != nil {
		return nil, err
	}
	return puppy, nil
}
