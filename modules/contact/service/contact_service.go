package service

import (
	"context"

	"github.com/YourPalZack/junk-t/core/errors"
	"github.com/YourPalZack/junk-t/core/logger"
	"github.com/YourPalZack/junk-t/modules/contact/dto"
	"github.com/YourPalZack/junk-t/modules/contact/entity"
	"github.com/YourPalZack/junk-t/modules/contact/repository"
)

type ContactService struct {
	repo *repository.ContactRepository
}

func NewContactService(repo *repository.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

func (s *ContactService) Submit(ctx context.Context, req *dto.SubmitContactRequest) (*entity.Contact, *errors.AppError) {
	contact, err := s.repo.Create(ctx, entity.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		logger.Error("ContactService:Submit:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to save contact message", err)
	}
	return &contact, nil
}

func (s *ContactService) List(ctx context.Context) ([]entity.Contact, *errors.AppError) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("ContactService:List:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to fetch contact messages", err)
	}
	return contacts, nil
}
