package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/lifebank-api/internal/application/dto"
	"github.com/jhoicas/lifebank-api/internal/domain"
	"github.com/jhoicas/lifebank-api/internal/domain/entity"
	"github.com/jhoicas/lifebank-api/internal/domain/repository"
)

// BookAppointmentUseCase agenda y lista citas de donación.
type BookAppointmentUseCase struct {
	apptRepo repository.AppointmentRepository
}

// NewBookAppointmentUseCase construye el caso de uso.
func NewBookAppointmentUseCase(apptRepo repository.AppointmentRepository) *BookAppointmentUseCase {
	return &BookAppointmentUseCase{apptRepo: apptRepo}
}

// Book valida la fecha (RFC 3339) y persiste la cita. Fecha ilegible o en el
// pasado se rechaza; el comportamiento legado de agendar "mañana" por defecto
// escondía errores de entrada.
func (uc *BookAppointmentUseCase) Book(ctx context.Context, userID string, in dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	scheduledAt, err := time.Parse(time.RFC3339, in.ScheduledAt)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	if scheduledAt.Before(now) {
		return nil, domain.ErrInvalidInput
	}

	appt := &entity.Appointment{
		ID:          uuid.New().String(),
		UserID:      userID,
		ScheduledAt: scheduledAt,
		CreatedAt:   now,
	}
	if err := uc.apptRepo.Create(ctx, appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// List devuelve las citas del usuario ordenadas por fecha agendada.
func (uc *BookAppointmentUseCase) List(ctx context.Context, userID string) ([]dto.AppointmentResponse, error) {
	appts, err := uc.apptRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, *toAppointmentResponse(a))
	}
	return out, nil
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:          a.ID,
		ScheduledAt: a.ScheduledAt,
		CreatedAt:   a.CreatedAt,
	}
}
