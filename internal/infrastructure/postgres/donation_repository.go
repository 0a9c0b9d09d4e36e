package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/lifebank-api/internal/domain/entity"
	"github.com/jhoicas/lifebank-api/internal/domain/repository"
)

var _ repository.DonationRepository = (*DonationRepo)(nil)

// DonationRepo implementación del ledger de donaciones sobre PostgreSQL
// (usable con pool o tx).
type DonationRepo struct {
	q Querier
}

// NewDonationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDonationRepository(q Querier) *DonationRepo {
	return &DonationRepo{q: q}
}

// Append persiste un evento de donación. Solo INSERT: el ledger es append-only.
func (r *DonationRepo) Append(ctx context.Context, event *entity.DonationEvent) error {
	query := `
		INSERT INTO donations (id, donor_id, blood_type, quantity, location, donated_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		event.ID, event.DonorID, event.BloodType.String(), event.Quantity,
		event.Location, event.DonatedAt, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append donation: %w", err)
	}
	return nil
}

// TotalsByBloodType suma las unidades donadas agrupadas por tipo de sangre.
func (r *DonationRepo) TotalsByBloodType(ctx context.Context) (map[entity.BloodType]int, error) {
	query := `
		SELECT blood_type, COALESCE(SUM(quantity), 0)
		FROM donations GROUP BY blood_type`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("donation totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[entity.BloodType]int)
	for rows.Next() {
		var bt string
		var total int
		if err := rows.Scan(&bt, &total); err != nil {
			return nil, fmt.Errorf("scan donation total: %w", err)
		}
		totals[entity.BloodType(bt)] = total
	}
	return totals, rows.Err()
}

// ListByDonor lista las donaciones de un donante, más recientes primero.
func (r *DonationRepo) ListByDonor(ctx context.Context, donorID string, limit, offset int) ([]*entity.DonationEvent, error) {
	query := `
		SELECT id, donor_id, blood_type, quantity, location, donated_at, created_at
		FROM donations WHERE donor_id = $1
		ORDER BY donated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, donorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	var list []*entity.DonationEvent
	for rows.Next() {
		var ev entity.DonationEvent
		var bt string
		if err := rows.Scan(&ev.ID, &ev.DonorID, &bt, &ev.Quantity, &ev.Location, &ev.DonatedAt, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		ev.BloodType = entity.BloodType(bt)
		list = append(list, &ev)
	}
	return list, rows.Err()
}
