package service

import (
	"context"

	"github.com/YourPalZack/junk-t/core/errors"
	"github.com/YourPalZack/junk-t/core/logger"
	"github.com/YourPalZack/junk-t/modules/appointment/dto"
	"github.com/YourPalZack/junk-t/modules/appointment/entity"
	"github.com/YourPalZack/junk-t/modules/appointment/repository"
)

type AppointmentService struct {
	repo *repository.AppointmentRepository
}

func NewAppointmentService(repo *repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

func (s *AppointmentService) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*entity.Appointment, *errors.AppError) {
	appointment, err := s.repo.Create(ctx, entity.Appointment{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Date:        req.Date,
		TimeSlot:    entity.TimeSlot(req.TimeSlot),
		ServiceType: entity.ServiceType(req.ServiceType),
		Description: req.Description,
	})
	if err != nil {
		logger.Error("AppointmentService:Book:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "failed to book appointment", err)
	}
	return &appointment, nil
}

func (s *AppointmentService) List(ctx context.Context) ([]entity.Appointment, *errors.AppError) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		logger.Error("AppointmentService:List:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to fetch appointments", err)
	}
	return appointments, nil
}
