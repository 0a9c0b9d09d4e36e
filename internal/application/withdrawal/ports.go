package withdrawal

import (
	"context"

	"github.com/jhoicas/lifebank-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la verificación de stock y el
// append del retiro sean una sola operación atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		donationRepo repository.DonationRepository,
		withdrawalRepo repository.WithdrawalRepository,
	) error) error
}
