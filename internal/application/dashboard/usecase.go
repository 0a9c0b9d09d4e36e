package dashboard

import (
	"context"

	"github.com/jhoicas/lifebank-api/internal/application/appointment"
	"github.com/jhoicas/lifebank-api/internal/application/auth"
	"github.com/jhoicas/lifebank-api/internal/application/donation"
	"github.com/jhoicas/lifebank-api/internal/application/dto"
	"github.com/jhoicas/lifebank-api/internal/application/stock"
)

// DashboardUseCase arma la vista agregada del dashboard: perfil, donaciones,
// citas y el inventario actual, en una sola respuesta.
type DashboardUseCase struct {
	authUC     *auth.AuthUseCase
	donationUC *donation.RecordDonationUseCase
	apptUC     *appointment.BookAppointmentUseCase
	ledger     *stock.Ledger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	authUC *auth.AuthUseCase,
	donationUC *donation.RecordDonationUseCase,
	apptUC *appointment.BookAppointmentUseCase,
	ledger *stock.Ledger,
) *DashboardUseCase {
	return &DashboardUseCase{authUC: authUC, donationUC: donationUC, apptUC: apptUC, ledger: ledger}
}

// Build consulta cada fuente y compone la respuesta. El snapshot de stock se
// recalcula en cada llamada; nunca se reutiliza uno anterior.
func (uc *DashboardUseCase) Build(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	user, err := uc.authUC.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	donations, err := uc.donationUC.History(ctx, userID, dto.PageRequest{})
	if err != nil {
		return nil, err
	}
	appointments, err := uc.apptUC.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap, err := uc.ledger.Compute(ctx)
	if err != nil {
		return nil, err
	}

	stockOut := make(map[string]int, len(snap))
	for bt, units := range snap {
		stockOut[bt.String()] = units
	}
	return &dto.DashboardResponse{
		User:         *user,
		Donations:    donations,
		Appointments: appointments,
		Stock:        stockOut,
	}, nil
}
