package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/restsystem/restaurant-api/internal/application/dto"
	"github.com/restsystem/restaurant-api/internal/application/usecase"
)

// ReportHandler — отчёты и статистика дашборда.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler собирает handler отчётов.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales godoc
// @Summary      Продажи по дням
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        start_date        query  string  false  "начало периода (YYYY-MM-DD)"
// @Param        end_date          query  string  false  "конец периода (YYYY-MM-DD)"
// @Param        establishment_id  query  int     false  "заведение"
// @Success      200  {array}  dto.SalesByDayResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.Sales(c.Context(),
		parseDateQuery(c, "start_date"),
		parseDateQuery(c, "end_date"),
		parseInt64Query(c, "establishment_id"),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения отчета"})
	}
	return c.JSON(out)
}

// SalesPDF godoc
// @Summary      Продажи по дням, печатная форма
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        start_date        query  string  false  "начало периода (YYYY-MM-DD)"
// @Param        end_date          query  string  false  "конец периода (YYYY-MM-DD)"
// @Param        establishment_id  query  int     false  "заведение"
// @Success      200  {file}  binary
// @Router       /api/reports/sales/pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.SalesPDF(c.Context(),
		parseDateQuery(c, "start_date"),
		parseDateQuery(c, "end_date"),
		parseInt64Query(c, "establishment_id"),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения отчета"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales-report.pdf"`)
	return c.Send(pdf)
}

// Inventory godoc
// @Summary      Сводка склада по заведениям
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.InventorySummaryResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения отчета"})
	}
	return c.JSON(out)
}

// EmployeePerformance godoc
// @Summary      Производительность сотрудников
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.EmployeePerformanceResponse
// @Router       /api/reports/employee-performance [get]
func (h *ReportHandler) EmployeePerformance(c *fiber.Ctx) error {
	out, err := h.uc.EmployeePerformance(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения отчета"})
	}
	return c.JSON(out)
}

// PopularDishes godoc
// @Summary      Топ-10 блюд за период
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        start_date  query  string  false  "начало периода (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "конец периода (YYYY-MM-DD)"
// @Success      200  {array}  dto.PopularDishResponse
// @Router       /api/reports/popular-dishes [get]
func (h *ReportHandler) PopularDishes(c *fiber.Ctx) error {
	out, err := h.uc.PopularDishes(c.Context(),
		parseDateQuery(c, "start_date"),
		parseDateQuery(c, "end_date"),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения отчета"})
	}
	return c.JSON(out)
}

// DailyStats godoc
// @Summary      Статистика за сегодня
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DailyStatsResponse
// @Router       /api/reports/daily-stats [get]
func (h *ReportHandler) DailyStats(c *fiber.Ctx) error {
	out, err := h.uc.DailyStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения статистики"})
	}
	return c.JSON(out)
}
