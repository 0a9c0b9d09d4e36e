package donation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/lifebank-api/internal/application/dto"
	"github.com/jhoicas/lifebank-api/internal/domain"
	"github.com/jhoicas/lifebank-api/internal/domain/entity"
	"github.com/jhoicas/lifebank-api/internal/domain/repository"
)

// RecordDonationUseCase registra eventos de donación en el ledger append-only.
// La validación de tipo de sangre y cantidad ocurre aquí, en el borde de
// ingesta: la agregación nunca ve claves fuera del vocabulario.
type RecordDonationUseCase struct {
	donationRepo repository.DonationRepository
}

// NewRecordDonationUseCase construye el caso de uso.
func NewRecordDonationUseCase(donationRepo repository.DonationRepository) *RecordDonationUseCase {
	return &RecordDonationUseCase{donationRepo: donationRepo}
}

// Record valida y persiste una donación. Cantidad no numérica o <= 0 se
// rechaza explícitamente (sin el default legado a 1).
func (uc *RecordDonationUseCase) Record(ctx context.Context, donorID string, in dto.RecordDonationRequest) (*dto.DonationResponse, error) {
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
	event := &entity.DonationEvent{
		ID:        uuid.New().String(),
		DonorID:   donorID,
		BloodType: bt,
		Quantity:  in.Quantity,
		Location:  location,
		DonatedAt: now,
		CreatedAt: now,
	}
	if err := uc.donationRepo.Append(ctx, event); err != nil {
		return nil, err
	}
	return toDonationResponse(event), nil
}

// AdminAdjust registra un ajuste manual como evento de donación con location
// "admin-adjust". Acepta cualquier entero distinto de cero: un ajuste negativo
// corrige inventario sobrante.
func (uc *RecordDonationUseCase) AdminAdjust(ctx context.Context, adminID string, in dto.AdminAdjustRequest) (*dto.DonationResponse, error) {
	bt, err := entity.ParseBloodType(in.BloodType)
	if err != nil {
		return nil, err
	}
	if in.Adjust == 0 {
		return nil, domain.ErrInvalidQuantity
	}

	now := time.Now()
	event := &entity.DonationEvent{
		ID:        uuid.New().String(),
		DonorID:   adminID,
		BloodType: bt,
		Quantity:  in.Adjust,
		Location:  entity.AdminAdjustLocation,
		DonatedAt: now,
		CreatedAt: now,
	}
	if err := uc.donationRepo.Append(ctx, event); err != nil {
		return nil, err
	}
	return toDonationResponse(event), nil
}

// History lista las donaciones del donante, más recientes primero.
func (uc *RecordDonationUseCase) History(ctx context.Context, donorID string, page dto.PageRequest) ([]dto.DonationResponse, error) {
	page.DefaultPage()
	events, err := uc.donationRepo.ListByDonor(ctx, donorID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DonationResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, *toDonationResponse(ev))
	}
	return out, nil
}

func toDonationResponse(ev *entity.DonationEvent) *dto.DonationResponse {
	return &dto.DonationResponse{
		ID:        ev.ID,
		BloodType: ev.BloodType.String(),
		Quantity:  ev.Quantity,
		Location:  ev.Location,
		DonatedAt: ev.DonatedAt,
	}
}
