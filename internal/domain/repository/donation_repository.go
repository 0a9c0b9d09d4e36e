package repository

import (
	"context"

	"github.com/jhoicas/lifebank-api/internal/domain/entity"
)

// DonationRepository puerto de persistencia del ledger de donaciones (append-only).
type DonationRepository interface {
	// Append persiste un nuevo evento de donación. Nunca actualiza ni borra.
	Append(ctx context.Context, event *entity.DonationEvent) error
	// TotalsByBloodType devuelve la suma de unidades donadas agrupada por tipo
	// de sangre, sobre todo el histórico. Tipos sin eventos no aparecen en el mapa.
	TotalsByBloodType(ctx context.Context) (map[entity.BloodType]int, error)
	// ListByDonor lista las donaciones de un donante, más recientes primero.
	ListByDonor(ctx context.Context, donorID string, limit, offset int) ([]*entity.DonationEvent, error)
}
