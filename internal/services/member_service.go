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

const memberDomain = "member"

type MemberService interface {
	Create(ctx context.Context, db *gorm.DB, req *dto.CreateMemberRequest) (*models.Member, error)
	Get(ctx context.Context, db *gorm.DB, id string) (*models.Member, error)
	List(ctx context.Context, db *gorm.DB, includeRetired bool) ([]models.Member, error)
	Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateMemberRequest) (*models.Member, error)
	Delete(ctx context.Context, db *gorm.DB, id string) error

	// Photo pipeline entry points. The refreshed record is returned with
	// every result so the admin console can replace its local state.
	UploadPhoto(ctx context.Context, db *gorm.DB, id, roleStr string, file *multipart.FileHeader) (*dto.PhotoUploadResult, *models.Member, error)
	DeletePhoto(ctx context.Context, db *gorm.DB, id, roleStr, url string) (*models.Member, error)
}

type memberService struct {
	memberRepo repositories.MemberRepository
	photos     PhotoService
}

func NewMemberService(memberRepo repositories.MemberRepository, photos PhotoService) MemberService {
	return &memberService{
		memberRepo: memberRepo,
		photos:     photos,
	}
}

func (s *memberService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateMemberRequest) (*models.Member, error) {
	member := &models.Member{
		Name:        req.Name,
		Breed:       req.Breed,
		Gender:      req.Gender,
		BirthDate:   parseDate(req.BirthDate),
		Description: req.Description,
		Titles:      req.Titles,
	}
	if err := s.memberRepo.Create(db.WithContext(ctx), member); err != nil {
		return nil, apperrors.NewDatabaseError(memberDomain, err)
	}
	return member, nil
}

func (s *memberService) Get(ctx context.Context, db *gorm.DB, id string) (*models.Member, error) {
	member, err := s.memberRepo.FindByID(db.WithContext(ctx), id)
	if err != nil {
		return nil, mapFindErr(err, memberDomain, "member")
	}
	return member, nil
}

func (s *memberService) List(ctx context.Context, db *gorm.DB, includeRetired bool) ([]models.Member, error) {
	members, err := s.memberRepo.List(db.WithContext(ctx), includeRetired)
	if err != nil {
		return nil, apperrors.NewDatabaseError(memberDomain, err)
	}
	return members, nil
}

func (s *memberService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateMemberRequest) (*models.Member, error) {
	member, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Breed != nil {
		member.Breed = *req.Breed
	}
	if req.Gender != nil {
		member.Gender = *req.Gender
	}
	if req.BirthDate != nil {
		member.BirthDate = parseDate(*req.BirthDate)
	}
	if req.Description != nil {
		member.Description = *req.Description
	}
	if req.Titles != nil {
		member.Titles = *req.Titles
	}
	if req.IsRetired != nil {
		member.IsRetired = *req.IsRetired
	}

	if err := s.memberRepo.Save(db.WithContext(ctx), member); err != nil {
		return nil, apperrors.NewDatabaseError(memberDomain, err)
	}
	return member, nil
}

func (s *memberService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if _, err := s.Get(ctx, db, id); err != nil {
		return err
	}
	if err := s.memberRepo.Delete(db.WithContext(ctx), id); err != nil {
		return apperrors.NewDatabaseError(memberDomain, err)
	}
	return nil
}

func (s *memberService) UploadPhoto(ctx context.Context, db *gorm.DB, id, roleStr string, file *multipart.FileHeader) (*dto.PhotoUploadResult, *models.Member, error) {
	member, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, nil, err
	}
	role, err := photo.ParseRole(photo.KindMember, roleStr)
	if err != nil {
		return nil, nil, apperrors.NewBadRequestError(err.Error())
	}
	result, err := s.photos.UploadPhoto(ctx, db, member, role, file)
	if err != nil {
		return nil, nil, err
	}
	return result, member, nil
}

func (s *memberService) DeletePhoto(ctx context.Context, db *gorm.DB, id, roleStr, url string) (*models.Member, error) {
	member, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}
	role, err := photo.ParseRole(photo.KindMember, roleStr)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if err := s.photos.DeletePhoto(ctx, db, member, role, url); err != nil {
		return nil, err
	}
	return member, nil
}
