package chat

import (
	"context"

	"github.com/jhoicas/lifebank-api/internal/domain/entity"
)

// StockReader contrato mínimo que el responder necesita del Stock Ledger para
// contestar consultas de inventario. El uso de interfaz evita acoplar el chat a
// la implementación concreta del ledger.
type StockReader interface {
	Available(ctx context.Context, bt entity.BloodType) (int, error)
}
