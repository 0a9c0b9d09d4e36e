package stock

import (
	"context"
	"fmt"

	"github.com/jhoicas/lifebank-api/internal/domain"
	"github.com/jhoicas/lifebank-api/internal/domain/entity"
)

// BaseStock es la línea base inmutable de inventario por tipo de sangre.
// Se inyecta al construir el ledger (desde configuración) y no cambia en runtime.
type BaseStock map[entity.BloodType]int

// Snapshot es la vista derivada del inventario actual. Se recalcula completa en
// cada consulta; nunca se cachea entre eventos.
type Snapshot map[entity.BloodType]int

// NewBaseStock valida que todas las claves pertenezcan a la enumeración y que
// las cantidades no sean negativas, y devuelve una copia defensiva con los ocho
// tipos presentes (los ausentes quedan en 0).
func NewBaseStock(in map[entity.BloodType]int) (BaseStock, error) {
	base := make(BaseStock, len(entity.BloodTypes()))
	for _, bt := range entity.BloodTypes() {
		base[bt] = 0
	}
	for bt, qty := range in {
		if !bt.Valid() {
			return nil, fmt.Errorf("base stock %q: %w", bt, domain.ErrUnknownBloodType)
		}
		if qty < 0 {
			return nil, fmt.Errorf("base stock %s: %w", bt, domain.ErrInvalidQuantity)
		}
		base[bt] = qty
	}
	return base, nil
}

// Ledger deriva el inventario actual: base + Σ donaciones − Σ retiros.
// Función pura sobre los registros persistidos; sin efectos secundarios y sin
// estado propio más allá de la base inmutable.
type Ledger struct {
	base        BaseStock
	donations   TotalsReader
	withdrawals TotalsReader
}

// NewLedger construye el ledger con la base y los lectores de totales.
func NewLedger(base BaseStock, donations, withdrawals TotalsReader) *Ledger {
	return &Ledger{base: base, donations: donations, withdrawals: withdrawals}
}

// Compute recalcula el snapshot completo. Determinista dado el mismo conjunto
// de eventos; refleja todo lo commiteado al momento de la llamada. El resultado
// puede ser negativo si hubo retiros por rutas sin verificación.
func (l *Ledger) Compute(ctx context.Context) (Snapshot, error) {
	donated, err := l.donations.TotalsByBloodType(ctx)
	if err != nil {
		return nil, fmt.Errorf("totales de donaciones: %w", err)
	}
	withdrawn, err := l.withdrawals.TotalsByBloodType(ctx)
	if err != nil {
		return nil, fmt.Errorf("totales de retiros: %w", err)
	}

	snap := make(Snapshot, len(l.base))
	for bt, qty := range l.base {
		snap[bt] = qty + donated[bt] - withdrawn[bt]
	}
	return snap, nil
}

// Available devuelve las unidades actuales de un tipo de sangre.
func (l *Ledger) Available(ctx context.Context, bt entity.BloodType) (int, error) {
	if !bt.Valid() {
		return 0, domain.ErrUnknownBloodType
	}
	snap, err := l.Compute(ctx)
	if err != nil {
		return 0, err
	}
	return snap[bt], nil
}

// Base devuelve una copia de la línea base configurada.
func (l *Ledger) Base() BaseStock {
	out := make(BaseStock, len(l.base))
	for bt, qty := range l.base {
		out[bt] = qty
	}
	return out
}
