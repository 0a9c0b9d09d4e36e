package repository

import (
	"context"

	"github.com/jhoicas/lifebank-api/internal/domain/entity"
)

// WithdrawalRepository puerto de persistencia del ledger de retiros (append-only).
type WithdrawalRepository interface {
	// Append persiste un nuevo evento de retiro. Nunca actualiza ni borra.
	Append(ctx context.Context, event *entity.WithdrawalEvent) error
	// TotalsByBloodType devuelve la suma de unidades retiradas agrupada por tipo de sangre.
	TotalsByBloodType(ctx context.Context) (map[entity.BloodType]int, error)
	// ListByRecipient lista los retiros de un receptor, más recientes primero.
	ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*entity.WithdrawalEvent, error)
	// LockBloodType serializa, dentro de la transacción actual, los retiros
	// concurrentes del mismo tipo de sangre. Fuera de una transacción es un no-op
	// sin garantías.
	LockBloodType(ctx context.Context, bt entity.BloodType) error
}
