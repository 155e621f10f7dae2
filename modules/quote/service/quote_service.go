package service

import (
	"context"

	"github.com/YourPalZack/junk-t/core/errors"
	"github.com/YourPalZack/junk-t/core/logger"
	"github.com/YourPalZack/junk-t/modules/quote/dto"
	"github.com/YourPalZack/junk-t/modules/quote/entity"
	"github.com/YourPalZack/junk-t/modules/quote/repository"
)

type QuoteService struct {
	repo *repository.QuoteRepository
}

func NewQuoteService(repo *repository.QuoteRepository) *QuoteService {
	return &QuoteService{repo: repo}
}

func (s *QuoteService) Submit(ctx context.Context, req *dto.SubmitQuoteRequest) (*entity.QuoteRequest, *errors.AppError) {
	quote, err := s.repo.Create(ctx, entity.QuoteRequest{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Description: req.Description,
	})
	if err != nil {
		logger.Error("QuoteService:Submit:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to save quote request", err)
	}
	return &quote, nil
}

func (s *QuoteService) List(ctx context.Context) ([]entity.QuoteRequest, *errors.AppError) {
	quotes, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("QuoteService:List:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to fetch quote requests", err)
	}
	return quotes, nil
}
