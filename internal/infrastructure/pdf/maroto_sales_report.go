// Package pdf строит печатную форму отчёта по продажам (A4).
//
// Макет страницы:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Название системы  │  Период отчёта + дата выпуска   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ТАБЛИЦА: Дата | Заказы | Выручка | Ср. чек | Чаевые | Рейт.│
//	│  ─────────────────────────────────────────────────────────  │
//	│  ИТОГО: заказы / выручка за период                           │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"

	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoSalesReport строит PDF отчёта по продажам на Maroto v2.
type MarotoSalesReport struct{}

// NewMarotoSalesReport создаёт генератор.
func NewMarotoSalesReport() *MarotoSalesReport { return &MarotoSalesReport{} }

// GenerateSalesPDF отрисовывает отчёт и возвращает байты документа.
func (g *MarotoSalesReport) GenerateSalesPDF(
	_ context.Context,
	periodLabel string,
	rows []repository.SalesByDayRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sales Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(periodLabel))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: название системы слева, период и дата выпуска справа.
func headerRow(periodLabel string) core.Row {
	issued := time.Now().Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Restaurant Management System", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sales report", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERIOD", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodLabel, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Issued: "+issued, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Date", 2, align.Left),
		h("Orders", 2, align.Center),
		h("Revenue", 3, align.Right),
		h("Avg check", 2, align.Right),
		h("Tips", 2, align.Right),
		h("Rating", 1, align.Center),
	)
}

// tableRows: одна строка на день продаж.
func tableRows(rows []repository.SalesByDayRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, d := range rows {
		rating := "—"
		if d.AvgRating != nil {
			rating = fmt.Sprintf("%.1f", *d.AvgRating)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				d.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", d.TotalOrders),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				d.TotalRevenue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				d.AvgOrderValue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				d.TotalTips.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				rating,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// totalsRow: суммарные заказы и выручка за весь период.
func totalsRow(rows []repository.SalesByDayRow) core.Row {
	var orders int64
	revenue := decimal.Zero
	for _, d := range rows {
		orders += d.TotalOrders
		revenue = revenue.Add(d.TotalRevenue)
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(16).Add(
		col.New(4),
		col.New(4).Add(
			label("TOTAL ORDERS:"),
			label("TOTAL REVENUE:"),
		),
		col.New(4).Add(
			value(fmt.Sprintf("%d", orders)),
			value(revenue.StringFixed(2)),
		),
	)
}
