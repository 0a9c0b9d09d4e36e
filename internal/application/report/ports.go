package report

import (
	"context"

	"github.com/jhoicas/lifebank-api/internal/domain/entity"
)

// DonationReportGenerator puerto de salida para la representación PDF del
// historial de donaciones. Lo implementa el adaptador Maroto.
type DonationReportGenerator interface {
	GenerateDonationReport(ctx context.Context, user *entity.User, donations []*entity.DonationEvent) ([]byte, error)
}
