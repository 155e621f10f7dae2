package repository

import (
	"context"
	"time"

	"github.com/YourPalZack/junk-t/core/storage"
	"github.com/YourPalZack/junk-t/modules/appointment/entity"
)

type AppointmentRepository struct {
	appointments *storage.Collection[entity.Appointment]
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{appointments: storage.NewCollection[entity.Appointment]()}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment entity.Appointment) (entity.Appointment, error) {
	created := r.appointments.Insert(func(id int64) entity.Appointment {
		appointment.ID = id
		appointment.CreatedAt = time.Now()
		return appointment
	})
	return created, nil
}

func (r *AppointmentRepository) List(ctx context.Context) ([]entity.Appointment, error) {
	return r.appointments.List(nil), nil
}
