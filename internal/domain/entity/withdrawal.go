package entity

import "time"

// WithdrawalEvent es un registro append-only que decrementa el inventario de un
// tipo de sangre (solicitud de un receptor). Nunca se muta ni se borra.
type WithdrawalEvent struct {
	ID          string
	RecipientID string
	BloodType   BloodType
	Quantity    int // unidades, siempre >= 0
	Location    string
	ReceivedAt  time.Time
	CreatedAt   time.Time
}
