package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/lifebank-api/internal/domain"
	"github.com/jhoicas/lifebank-api/internal/domain/repository"
)

// maxReportRows tope de filas del reporte; suficiente para cualquier donante real.
const maxReportRows = 500

// DonationReportUseCase genera el PDF del historial de donaciones de un donante.
type DonationReportUseCase struct {
	userRepo     repository.UserRepository
	donationRepo repository.DonationRepository
	generator    DonationReportGenerator
}

// NewDonationReportUseCase construye el caso de uso.
func NewDonationReportUseCase(
	userRepo repository.UserRepository,
	donationRepo repository.DonationRepository,
	generator DonationReportGenerator,
) *DonationReportUseCase {
	return &DonationReportUseCase{userRepo: userRepo, donationRepo: donationRepo, generator: generator}
}

// Generate carga usuario e historial y delega en el generador PDF.
func (uc *DonationReportUseCase) Generate(ctx context.Context, userID string) ([]byte, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	donations, err := uc.donationRepo.ListByDonor(ctx, userID, maxReportRows, 0)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerateDonationReport(ctx, user, donations)
	if err != nil {
		return nil, fmt.Errorf("generar reporte de donaciones: %w", err)
	}
	return pdf, nil
}
