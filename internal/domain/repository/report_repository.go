package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesByDayRow — агрегат продаж за один день.
type SalesByDayRow struct {
	Date          time.Time
	TotalOrders   int64
	TotalRevenue  decimal.Decimal
	AvgOrderValue decimal.Decimal
	TotalTips     decimal.Decimal
	AvgRating     *float64
}

// InventorySummaryRow — сводка склада по заведению.
type InventorySummaryRow struct {
	Establishment     string
	TotalIngredients  int64
	TotalQuantity     decimal.Decimal
	ExpiredCount      int64
	ExpiringSoonCount int64
	ExpiredCost       decimal.Decimal
	ExpiringSoonCost  decimal.Decimal
}

// EmployeePerformanceRow — строка представления employee_performance.
type EmployeePerformanceRow struct {
	EmployeeID   int64
	FullName     string
	TotalOrders  int64
	TotalRevenue decimal.Decimal
	AvgRating    *float64
}

// PopularDishRow — строка топа блюд за период.
type PopularDishRow struct {
	DishName      string
	Category      string
	Price         decimal.Decimal
	TimesOrdered  int64
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
}

// DailyStats — быстрая статистика дашборда за сегодня.
type DailyStats struct {
	TodayOrders   int64
	TodayRevenue  decimal.Decimal
	ExpiringToday int64
	ActiveOrders  int64
}

// ReportRepository — read-only запросы отчётов.
type ReportRepository interface {
	// SalesByDay: nil-границы дают окно "последние 30 дней — сегодня".
	SalesByDay(ctx context.Context, start, end *time.Time, establishmentID *int64) ([]SalesByDayRow, error)
	InventorySummary(ctx context.Context) ([]InventorySummaryRow, error)
	EmployeePerformance(ctx context.Context) ([]EmployeePerformanceRow, error)
	// PopularDishes — топ-10 по количеству за период; nil-границы не ограничивают.
	PopularDishes(ctx context.Context, start, end *time.Time) ([]PopularDishRow, error)
	DailyStats(ctx context.Context) (*DailyStats, error)
}
