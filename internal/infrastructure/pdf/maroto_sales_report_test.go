package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

func sampleRows() []repository.SalesByDayRow {
	rating := 4.5
	return []repository.SalesByDayRow{
		{
			Date:          time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			TotalOrders:   12,
			TotalRevenue:  decimal.NewFromInt(14500),
			AvgOrderValue: decimal.NewFromFloat(1208.33),
			TotalTips:     decimal.NewFromInt(900),
			AvgRating:     &rating,
		},
		{
			Date:          time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			TotalOrders:   8,
			TotalRevenue:  decimal.NewFromInt(9600),
			AvgOrderValue: decimal.NewFromInt(1200),
			TotalTips:     decimal.NewFromInt(400),
		},
	}
}

func TestGenerateSalesPDF_ProducesDocument(t *testing.T) {
	g := NewMarotoSalesReport()

	out, err := g.GenerateSalesPDF(context.Background(), "01.03.2025 - 31.03.2025", sampleRows())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateSalesPDF_EmptyPeriod(t *testing.T) {
	g := NewMarotoSalesReport()

	out, err := g.GenerateSalesPDF(context.Background(), "01.03.2025 - 31.03.2025", nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)
}
