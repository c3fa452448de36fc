package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

// SalesByDayResponse — агрегат продаж за день.
type SalesByDayResponse struct {
	Date          time.Time       `json:"date"`
	TotalOrders   int64           `json:"total_orders"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
	TotalTips     decimal.Decimal `json:"total_tips"`
	AvgRating     *float64        `json:"avg_rating"`
}

// InventorySummaryResponse — сводка склада по заведению.
type InventorySummaryResponse struct {
	Establishment     string          `json:"establishment"`
	TotalIngredients  int64           `json:"total_ingredients"`
	TotalQuantity     decimal.Decimal `json:"total_quantity"`
	ExpiredCount      int64           `json:"expired_count"`
	ExpiringSoonCount int64           `json:"expiring_soon_count"`
	ExpiredCost       decimal.Decimal `json:"expired_cost"`
	ExpiringSoonCost  decimal.Decimal `json:"expiring_soon_cost"`
}

// EmployeePerformanceResponse — строка отчёта по сотрудникам.
type EmployeePerformanceResponse struct {
	EmployeeID   int64           `json:"employee_id"`
	FullName     string          `json:"full_name"`
	TotalOrders  int64           `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	AvgRating    *float64        `json:"avg_rating"`
}

// PopularDishResponse — строка топа блюд.
type PopularDishResponse struct {
	DishName      string          `json:"dish_name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	TimesOrdered  int64           `json:"times_ordered"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// DailyStatsResponse — короткая статистика дашборда.
type DailyStatsResponse struct {
	TodayOrders   int64           `json:"today_orders"`
	TodayRevenue  decimal.Decimal `json:"today_revenue"`
	ExpiringToday int64           `json:"expiring_today"`
	ActiveOrders  int64           `json:"active_orders"`
}

// ToSalesByDayResponse переводит агрегат в ответ API.
func ToSalesByDayResponse(r repository.SalesByDayRow) SalesByDayResponse {
	return SalesByDayResponse{
		Date:          r.Date,
		TotalOrders:   r.TotalOrders,
		TotalRevenue:  r.TotalRevenue,
		AvgOrderValue: r.AvgOrderValue,
		TotalTips:     r.TotalTips,
		AvgRating:     r.AvgRating,
	}
}

// ToInventorySummaryResponse переводит сводку склада в ответ.
func ToInventorySummaryResponse(r repository.InventorySummaryRow) InventorySummaryResponse {
	return InventorySummaryResponse{
		Establishment:     r.Establishment,
		TotalIngredients:  r.TotalIngredients,
		TotalQuantity:     r.TotalQuantity,
		ExpiredCount:      r.ExpiredCount,
		ExpiringSoonCount: r.ExpiringSoonCount,
		ExpiredCost:       r.ExpiredCost,
		ExpiringSoonCost:  r.ExpiringSoonCost,
	}
}

// ToEmployeePerformanceResponse переводит строку представления в ответ.
func ToEmployeePerformanceResponse(r repository.EmployeePerformanceRow) EmployeePerformanceResponse {
	return EmployeePerformanceResponse{
		EmployeeID:   r.EmployeeID,
		FullName:     r.FullName,
		TotalOrders:  r.TotalOrders,
		TotalRevenue: r.TotalRevenue,
		AvgRating:    r.AvgRating,
	}
}

// ToPopularDishResponse переводит строку топа в ответ.
func ToPopularDishResponse(r repository.PopularDishRow) PopularDishResponse {
	return PopularDishResponse{
		DishName:      r.DishName,
		Category:      r.Category,
		Price:         r.Price,
		TimesOrdered:  r.TimesOrdered,
		TotalQuantity: r.TotalQuantity,
		TotalRevenue:  r.TotalRevenue,
	}
}

// ToDailyStatsResponse переводит статистику дашборда в ответ.
func ToDailyStatsResponse(s *repository.DailyStats) DailyStatsResponse {
	return DailyStatsResponse{
		TodayOrders:   s.TodayOrders,
		TodayRevenue:  s.TodayRevenue,
		ExpiringToday: s.ExpiringToday,
		ActiveOrders:  s.ActiveOrders,
	}
}
