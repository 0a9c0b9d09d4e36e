package dto

import "time"

// BookAppointmentRequest agenda una cita de donación. ScheduledAt en RFC 3339.
type BookAppointmentRequest struct {
	ScheduledAt string `json:"scheduled_at"`
}

// AppointmentResponse cita persistida.
type AppointmentResponse struct {
	ID          string    `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// DashboardResponse vista del dashboard: usuario, sus donaciones y citas, y el
// inventario actual.
type DashboardResponse struct {
	User         UserResponse          `json:"user"`
	Donations    []DonationResponse    `json:"donations"`
	Appointments []AppointmentResponse `json:"appointments"`
	Stock        map[string]int        `json:"stock"`
}
