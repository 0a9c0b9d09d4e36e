package entity

import "time"

// Appointment cita de donación agendada por un usuario.
type Appointment struct {
	ID          string
	UserID      string
	ScheduledAt time.Time
	CreatedAt   time.Time
}
