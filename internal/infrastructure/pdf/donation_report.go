// Package pdf genera el certificado/historial de donaciones en PDF.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────────┐
//	│  HEADER: Lifebank Blood Center │ fecha de emisión     │
//	│  ──────────────────────────────────────────────────  │
//	│  DONANTE: nombre, email, tipo de sangre               │
//	│  ──────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Unidades | Ubicación           │
//	│  ──────────────────────────────────────────────────  │
//	│  TOTAL de unidades donadas                            │
//	└──────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/lifebank-api/internal/application/report"
	"github.com/jhoicas/lifebank-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 158, Green: 27, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa report.DonationReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDonationReport genera el PDF del historial y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDonationReport(
	_ context.Context,
	user *entity.User,
	donations []*entity.DonationEvent,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Donation History", true).
		WithAuthor("Lifebank Blood Center", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(donorRow(user))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	total := 0
	for _, d := range donations {
		m.AddRows(donationRow(d))
		total += d.Quantity
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del centro (izq) y fecha de emisión (der).
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Lifebank Blood Center", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("123 Life St — Mon-Fri 9:00-17:00", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Donation History", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(time.Now().Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// donorRow: datos del donante.
func donorRow(user *entity.User) core.Row {
	bloodType := "—"
	if user.BloodType != nil {
		bloodType = user.BloodType.String()
	}
	return row.New(10).Add(
		col.New(6).Add(
			text.New(user.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
			text.New(user.Email, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("Blood type: "+bloodType, props.Text{Size: 10, Align: align.Right, Top: 1}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(7).Add(
		col.New(3).Add(text.New("Date", header)),
		col.New(2).Add(text.New("Type", header)),
		col.New(2).Add(text.New("Units", header)),
		col.New(5).Add(text.New("Location", header)),
	)
}

func donationRow(d *entity.DonationEvent) core.Row {
	cell := props.Text{Size: 9}
	return row.New(6).Add(
		col.New(3).Add(text.New(d.DonatedAt.Format("02/01/2006 15:04"), cell)),
		col.New(2).Add(text.New(d.BloodType.String(), cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", d.Quantity), cell)),
		col.New(5).Add(text.New(d.Location, cell)),
	)
}

func totalRow(total int) core.Row {
	return row.New(8).Add(
		col.New(7).Add(text.New("Total units donated", props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 1,
		})),
		col.New(5).Add(text.New(fmt.Sprintf("%d", total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Color: colorPrimary,
		})),
	)
}

var _ report.DonationReportGenerator = (*MarotoReportGenerator)(nil)
