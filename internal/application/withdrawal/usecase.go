package withdrawal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/lifebank-api/internal/application/dto"
	"github.com/jhoicas/lifebank-api/internal/application/stock"
	"github.com/jhoicas/lifebank-api/internal/domain"
	"github.com/jhoicas/lifebank-api/internal/domain/entity"
	"github.com/jhoicas/lifebank-api/internal/domain/repository"
)

// RequestWithdrawalUseCase procesa solicitudes de retiro de sangre con la
// garantía "ningún retiro supera la disponibilidad reconciliada al momento del
// commit": dentro de una transacción toma un lock por tipo de sangre, recalcula
// la disponibilidad con el ledger sobre los repos de esa tx y recién entonces
// hace el append. Sin ventana check-then-write entre la verificación y el registro.
type RequestWithdrawalUseCase struct {
	txRunner       TxRunner
	withdrawalRepo repository.WithdrawalRepository // lecturas fuera de tx
	base           stock.BaseStock
}

// NewRequestWithdrawalUseCase construye el caso de uso.
func NewRequestWithdrawalUseCase(txRunner TxRunner, withdrawalRepo repository.WithdrawalRepository, base stock.BaseStock) *RequestWithdrawalUseCase {
	return &RequestWithdrawalUseCase{txRunner: txRunner, withdrawalRepo: withdrawalRepo, base: base}
}

// Request valida la entrada y ejecuta el retiro guardado por transacción.
// Si la cantidad solicitada supera la disponibilidad devuelve
// InsufficientStockError con las unidades disponibles.
func (uc *RequestWithdrawalUseCase) Request(ctx context.Context, recipientID string, in dto.WithdrawalRequest) (*dto.WithdrawalResponse, error) {
	bt, err := entity.ParseBloodType(in.BloodType)
	if err != nil {
		return nil, err
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	location := in.Location
	if location == "" {
		location = entity.DefaultLocation
	}

	now := time.Now()
	event := &entity.WithdrawalEvent{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		BloodType:   bt,
		Quantity:    in.Quantity,
		Location:    location,
		ReceivedAt:  now,
		CreatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		donationRepo repository.DonationRepository,
		withdrawalRepo repository.WithdrawalRepository,
	) error {
		// Serializa retiros concurrentes del mismo tipo de sangre dentro de la tx.
		if err := withdrawalRepo.LockBloodType(ctx, bt); err != nil {
			return err
		}
		ledger := stock.NewLedger(uc.base, donationRepo, withdrawalRepo)
		available, err := ledger.Available(ctx, bt)
		if err != nil {
			return err
		}
		if in.Quantity > available {
			return &domain.InsufficientStockError{BloodType: bt.String(), Available: available}
		}
		return withdrawalRepo.Append(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	return &dto.WithdrawalResponse{
		ID:         event.ID,
		BloodType:  event.BloodType.String(),
		Quantity:   event.Quantity,
		Location:   event.Location,
		ReceivedAt: event.ReceivedAt,
	}, nil
}

// History lista los retiros del receptor, más recientes primero.
func (uc *RequestWithdrawalUseCase) History(ctx context.Context, recipientID string, page dto.PageRequest) ([]dto.WithdrawalResponse, error) {
	page.DefaultPage()
	events, err := uc.withdrawalRepo.ListByRecipient(ctx, recipientID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WithdrawalResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, dto.WithdrawalResponse{
			ID:         ev.ID,
			BloodType:  ev.BloodType.String(),
			Quantity:   ev.Quantity,
			Location:   ev.Location,
			ReceivedAt: ev.ReceivedAt,
		})
	}
	return out, nil
}
