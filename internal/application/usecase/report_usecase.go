package usecase

import (
	"context"
	"time"

	"github.com/restsystem/restaurant-api/internal/application/dto"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

// SalesPDFGenerator отрисовывает отчёт по продажам в PDF.
type SalesPDFGenerator interface {
	GenerateSalesPDF(ctx context.Context, periodLabel string, rows []repository.SalesByDayRow) ([]byte, error)
}

// ReportUseCase — отчёты и статистика дашборда.
type ReportUseCase struct {
	repo repository.ReportRepository
	pdf  SalesPDFGenerator
}

// NewReportUseCase собирает кейс отчётов.
func NewReportUseCase(repo repository.ReportRepository, pdf SalesPDFGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, pdf: pdf}
}

// Sales возвращает продажи по дням. Nil-границы дают последние 30 дней.
func (uc *ReportUseCase) Sales(ctx context.Context, start, end *time.Time, establishmentID *int64) ([]dto.SalesByDayResponse, error) {
	rows, err := uc.repo.SalesByDay(ctx, start, end, establishmentID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SalesByDayResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ToSalesByDayResponse(r))
	}
	return result, nil
}

// SalesPDF отдаёт тот же отчёт печатной формой.
func (uc *ReportUseCase) SalesPDF(ctx context.Context, start, end *time.Time, establishmentID *int64) ([]byte, error) {
	rows, err := uc.repo.SalesByDay(ctx, start, end, establishmentID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateSalesPDF(ctx, periodLabel(start, end), rows)
}

// Inventory возвращает сводку склада по заведениям.
func (uc *ReportUseCase) Inventory(ctx context.Context) ([]dto.InventorySummaryResponse, error) {
	rows, err := uc.repo.InventorySummary(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InventorySummaryResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ToInventorySummaryResponse(r))
	}
	return result, nil
}

// EmployeePerformance возвращает отчёт по сотрудникам.
func (uc *ReportUseCase) EmployeePerformance(ctx context.Context) ([]dto.EmployeePerformanceResponse, error) {
	rows, err := uc.repo.EmployeePerformance(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.EmployeePerformanceResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ToEmployeePerformanceResponse(r))
	}
	return result, nil
}

// PopularDishes возвращает топ-10 блюд за период.
func (uc *ReportUseCase) PopularDishes(ctx context.Context, start, end *time.Time) ([]dto.PopularDishResponse, error) {
	rows, err := uc.repo.PopularDishes(ctx, start, end)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PopularDishResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ToPopularDishResponse(r))
	}
	return result, nil
}

// DailyStats возвращает короткую статистику за сегодня.
func (uc *ReportUseCase) DailyStats(ctx context.Context) (*dto.DailyStatsResponse, error) {
	stats, err := uc.repo.DailyStats(ctx)
	if err != nil {
		return nil, err
	}
	resp := dto.ToDailyStatsResponse(stats)
	return &resp, nil
}

func periodLabel(start, end *time.Time) string {
	const layout = "02.01.2006"
	from := time.Now().AddDate(0, 0, -30)
	to := time.Now()
	if start != nil {
		from = *start
	}
	if end != nil {
		to = *end
	}
	return from.Format(layout) + " — " + to.Format(layout)
}
