package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/lifebank-api/internal/application/withdrawal"
	"github.com/jhoicas/lifebank-api/internal/domain/repository"
)

// Ensure TxRunner implements withdrawal.TxRunner.
var _ withdrawal.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos de los dos ledgers
// atados a esa tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	donationRepo repository.DonationRepository,
	withdrawalRepo repository.WithdrawalRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	donationRepo := NewDonationRepository(tx)
	withdrawalRepo := NewWithdrawalRepository(tx)

	if err := fn(donationRepo, withdrawalRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
