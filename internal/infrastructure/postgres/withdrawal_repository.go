package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/lifebank-api/internal/domain/entity"
	"github.com/jhoicas/lifebank-api/internal/domain/repository"
)

var _ repository.WithdrawalRepository = (*WithdrawalRepo)(nil)

// WithdrawalRepo implementación del ledger de retiros sobre PostgreSQL
// (usable con pool o tx).
type WithdrawalRepo struct {
	q Querier
}

// NewWithdrawalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWithdrawalRepository(q Querier) *WithdrawalRepo {
	return &WithdrawalRepo{q: q}
}

// Append persiste un evento de retiro. Solo INSERT: el ledger es append-only.
func (r *WithdrawalRepo) Append(ctx context.Context, event *entity.WithdrawalEvent) error {
	query := `
		INSERT INTO withdrawals (id, recipient_id, blood_type, quantity, location, received_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		event.ID, event.RecipientID, event.BloodType.String(), event.Quantity,
		event.Location, event.ReceivedAt, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append withdrawal: %w", err)
	}
	return nil
}

// TotalsByBloodType suma las unidades retiradas agrupadas por tipo de sangre.
func (r *WithdrawalRepo) TotalsByBloodType(ctx context.Context) (map[entity.BloodType]int, error) {
	query := `
		SELECT blood_type, COALESCE(SUM(quantity), 0)
		FROM withdrawals GROUP BY blood_type`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("withdrawal totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[entity.BloodType]int)
	for rows.Next() {
		var bt string
		var total int
		if err := rows.Scan(&bt, &total); err != nil {
			return nil, fmt.Errorf("scan withdrawal total: %w", err)
		}
		totals[entity.BloodType(bt)] = total
	}
	return totals, rows.Err()
}

// ListByRecipient lista los retiros de un receptor, más recientes primero.
func (r *WithdrawalRepo) ListByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*entity.WithdrawalEvent, error) {
	query := `
		SELECT id, recipient_id, blood_type, quantity, location, received_at, created_at
		FROM withdrawals WHERE recipient_id = $1
		ORDER BY received_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()

	var list []*entity.WithdrawalEvent
	for rows.Next() {
		var ev entity.WithdrawalEvent
		var bt string
		if err := rows.Scan(&ev.ID, &ev.RecipientID, &bt, &ev.Quantity, &ev.Location, &ev.ReceivedAt, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		ev.BloodType = entity.BloodType(bt)
		list = append(list, &ev)
	}
	return list, rows.Err()
}

// LockBloodType toma un advisory lock transaccional por tipo de sangre
// (pg_advisory_xact_lock sobre hashtext). Serializa los retiros concurrentes
// del mismo tipo; se libera solo al terminar la transacción. Llamarlo fuera de
// una tx no aporta ninguna garantía.
func (r *WithdrawalRepo) LockBloodType(ctx context.Context, bt entity.BloodType) error {
	_, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "withdrawal:"+bt.String())
	if err != nil {
		return fmt.Errorf("lock blood type %s: %w", bt, err)
	}
	return nil
}
