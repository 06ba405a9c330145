package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"kennel_backend/internal/email"
	"kennel_backend/internal/logger"
	"kennel_backend/internal/models"
	"kennel_backend/internal/repositories"
	"kennel_backend/internal/services/dto"
	"kennel_backend/pkg/apperrors"
)

const inquiryDomain = "inquiry"

type InquiryService interface {
	// Create records a public puppy inquiry and notifies the breeder.
	// The notification is best-effort; a mail failure never loses the
	// inquiry row.
	Create(ctx context.Context, db *gorm.DB, puppyID string, req *dto.CreateInquiryRequest) (*models.Inquiry, error)
	List(ctx context.Context, db *gorm.DB, unhandledOnly bool) ([]models.Inquiry, error)
	MarkHandled(ctx context.Context, db *gorm.DB, id string) (*models.Inquiry, error)
}

type inquiryService struct {
	inquiryRepo repositories.InquiryRepository
	puppyRepo   repositories.PuppyRepository
	mailer      email.Provider
	notifyTo    string
}

func NewInquiryService(inquiryRepo repositories.InquiryRepository, puppyRepo repositories.PuppyRepository, mailer email.Provider, notifyTo string) InquiryService {
	return &inquiryService{
		inquiryRepo: inquiryRepo,
		puppyRepo:   puppyRepo,
		mailer:      mailer,
		notifyTo:    notifyTo,
	}
}

func (s *inquiryService) Create(ctx context.Context, db *gorm.DB, puppyID string, req *dto.CreateInquiryRequest) (*models.Inquiry, error) {
	puppy, err := s.puppyRepo.FindByID(db.WithContext(ctx), puppyID)
	if err != nil {
		return nil, mapFindErr(err, inquiryDomain, "puppy")
	}

	inquiry := &models.Inquiry{
		PuppyID: puppy.ID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := s.inquiryRepo.Create(db.WithContext(ctx), inquiry); err != nil {
		return nil, apperrors.NewDatabaseError(inquiryDomain, err)
	}

	if s.notifyTo != "" {
		mail := &email.Email{
			To:      []string{s.notifyTo},
			Subject: fmt.Sprintf("New inquiry for %s", puppy.Name),
			Body: fmt.Sprintf("From: %s <%s> %s\n\n%s",
				req.Name, req.Email, req.Phone, req.Message),
		}
		if err := s.mailer.Send(mail); err != nil {
			logger.CtxWarn(ctx, "failed to send inquiry notification",
				"inquiry_id", inquiry.ID, "error", err)
		}
	}

	return inquiry, nil
}

func (s *inquiryService) List(ctx context.Context, db *gorm.DB, unhandledOnly bool) ([]models.Inquiry, error) {
	inquiries, err := s.inquiryRepo.List(db.WithContext(ctx), unhandledOnly)
	if err != nil {
		return nil, apperrors.NewDatabaseError(inquiryDomain, err)
	}
	return inquiries, nil
}

func (s *inquiryService) MarkHandled(ctx context.Context, db *gorm.DB, id string) (*models.Inquiry, error) {
	inquiry, err := s.inquiryRepo.FindByID(db.WithContext(ctx), id)
	if err != nil {
		return nil, mapFindErr(err, inquiryDomain, "inquiry")
	}
	inquiry.Handled = true
	if err := s.inquiryRepo.Save(db.WithContext(ctx), inquiry); err != nil {
		return nil, apperrors.NewDatabaseError(inquiryDomain, err)
	}
	return inquiry, nil
}
