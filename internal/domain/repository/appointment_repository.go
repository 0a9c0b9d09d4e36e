package repository

import (
	"context"

	"github.com/jhoicas/lifebank-api/internal/domain/entity"
)

// AppointmentRepository puerto de persistencia de citas.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *entity.Appointment) error
	// ListByUser lista las citas de un usuario ordenadas por fecha agendada.
	ListByUser(ctx context.Context, userID string) ([]*entity.Appointment, error)
}
