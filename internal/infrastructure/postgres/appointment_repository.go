package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/lifebank-api/internal/domain/entity"
	"github.com/jhoicas/lifebank-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación del puerto AppointmentRepository sobre PostgreSQL.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador de persistencia para citas.
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste una cita.
func (r *AppointmentRepo) Create(ctx context.Context, appt *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, user_id, scheduled_at, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, appt.ID, appt.UserID, appt.ScheduledAt, appt.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// ListByUser lista las citas de un usuario ordenadas por fecha agendada.
func (r *AppointmentRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Appointment, error) {
	query := `
		SELECT id, user_id, scheduled_at, created_at
		FROM appointments WHERE user_id = $1 ORDER BY scheduled_at`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(&a.ID, &a.UserID, &a.ScheduledAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
