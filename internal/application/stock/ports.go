package stock

import (
	"context"

	"github.com/jhoicas/lifebank-api/internal/domain/entity"
)

// TotalsReader es el contrato mínimo que el ledger necesita de la persistencia:
// un group-by-sum sobre todo el histórico de eventos. Lo implementan los
// repositorios de donaciones y de retiros.
type TotalsReader interface {
	TotalsByBloodType(ctx context.Context) (map[entity.BloodType]int, error)
}
