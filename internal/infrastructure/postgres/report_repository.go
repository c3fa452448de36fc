package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo — read-only запросы отчётов и дашборда.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository создаёт адаптер отчётов.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// Выражение итога заказа: счёт, при его отсутствии сумма по позициям.
const orderTotalExpr = `
	COALESCE(
	    b.total_price,
	    (SELECT SUM(d.price * p.quantity)
	     FROM positions p
	     JOIN dishes d ON p.dish_id = d.dish_id
	     WHERE p.order_id = o.order_id)
	)`

// SalesByDay агрегирует заказы по дням. Nil-границы дают окно
// "последние 30 дней — сегодня"; nil-заведение не ограничивает.
func (r *ReportRepo) SalesByDay(
	ctx context.Context,
	start, end *time.Time,
	establishmentID *int64,
) ([]repository.SalesByDayRow, error) {
	query := `
	SELECT
	    DATE(o.datetime)                          AS date,
	    COUNT(*)                                  AS total_orders,
	    COALESCE(SUM(` + orderTotalExpr + `), 0)  AS total_revenue,
	    COALESCE(AVG(` + orderTotalExpr + `), 0)  AS avg_order_value,
	    COALESCE(SUM(b.tips), 0)                  AS total_tips,
	    AVG(b.rating)                             AS avg_rating
	FROM orders o
	LEFT JOIN bills b ON o.order_id = b.order_id
	WHERE DATE(o.datetime) BETWEEN COALESCE($1::date, CURRENT_DATE - INTERVAL '30 days')
	                           AND COALESCE($2::date, CURRENT_DATE)
	  AND ($3::int IS NULL OR o.establishment_id = $3::int)
	GROUP BY DATE(o.datetime)
	ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, start, end, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("reports.SalesByDay: %w", err)
	}
	defer rows.Close()

	var results []repository.SalesByDayRow
	for rows.Next() {
		var row repository.SalesByDayRow
		if err := rows.Scan(
			&row.Date, &row.TotalOrders, &row.TotalRevenue,
			&row.AvgOrderValue, &row.TotalTips, &row.AvgRating,
		); err != nil {
			return nil, fmt.Errorf("reports.SalesByDay scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// InventorySummary — сводка склада по заведениям: просрочка, скорое истечение
// и оценочная стоимость потерь.
func (r *ReportRepo) InventorySummary(ctx context.Context) ([]repository.InventorySummaryRow, error) {
	const query = `
	SELECT
	    es.name                                                       AS establishment,
	    COUNT(i.ingredient_id)                                        AS total_ingredients,
	    COALESCE(SUM(i.quantity), 0)                                  AS total_quantity,
	    COUNT(CASE WHEN i.expiration_date < CURRENT_DATE THEN 1 END)  AS expired_count,
	    COUNT(CASE WHEN i.expiration_date BETWEEN CURRENT_DATE
	                                          AND CURRENT_DATE + INTERVAL '7 days'
	               THEN 1 END)                                        AS expiring_soon_count,
	    COALESCE(SUM(CASE WHEN i.expiration_date < CURRENT_DATE
	                      THEN i.quantity * 100 ELSE 0 END), 0)       AS expired_cost,
	    COALESCE(SUM(CASE WHEN i.expiration_date BETWEEN CURRENT_DATE
	                                                 AND CURRENT_DATE + INTERVAL '7 days'
	                      THEN i.quantity * 50 ELSE 0 END), 0)        AS expiring_soon_cost
	FROM ingredients i
	JOIN establishments es ON i.establishment_id = es.establishment_id
	GROUP BY es.name, es.establishment_id
	ORDER BY es.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.InventorySummary: %w", err)
	}
	defer rows.Close()

	var results []repository.InventorySummaryRow
	for rows.Next() {
		var row repository.InventorySummaryRow
		if err := rows.Scan(
			&row.Establishment, &row.TotalIngredients, &row.TotalQuantity,
			&row.ExpiredCount, &row.ExpiringSoonCount, &row.ExpiredCost, &row.ExpiringSoonCost,
		); err != nil {
			return nil, fmt.Errorf("reports.InventorySummary scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// EmployeePerformance читает представление employee_performance.
func (r *ReportRepo) EmployeePerformance(ctx context.Context) ([]repository.EmployeePerformanceRow, error) {
	const query = `
	SELECT employee_id, full_name, total_orders, COALESCE(total_revenue, 0), avg_rating
	FROM employee_performance
	ORDER BY total_revenue DESC NULLS LAST`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reports.EmployeePerformance: %w", err)
	}
	defer rows.Close()

	var results []repository.EmployeePerformanceRow
	for rows.Next() {
		var row repository.EmployeePerformanceRow
		if err := rows.Scan(
			&row.EmployeeID, &row.FullName, &row.TotalOrders, &row.TotalRevenue, &row.AvgRating,
		); err != nil {
			return nil, fmt.Errorf("reports.EmployeePerformance scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// PopularDishes — топ-10 блюд по количеству за период; nil-границы не ограничивают.
func (r *ReportRepo) PopularDishes(ctx context.Context, start, end *time.Time) ([]repository.PopularDishRow, error) {
	const query = `
	SELECT
	    d.dish_name,
	    d.category,
	    d.price,
	    COUNT(p.position_id)      AS times_ordered,
	    SUM(p.quantity)           AS total_quantity,
	    SUM(p.quantity * d.price) AS total_revenue
	FROM dishes d
	JOIN positions p ON d.dish_id = p.dish_id
	JOIN orders o    ON p.order_id = o.order_id
	WHERE ($1::timestamptz IS NULL OR o.datetime >= $1::timestamptz)
	  AND ($2::timestamptz IS NULL OR o.datetime <= $2::timestamptz)
	GROUP BY d.dish_id, d.dish_name, d.category, d.price
	ORDER BY total_quantity DESC
	LIMIT 10`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports.PopularDishes: %w", err)
	}
	defer rows.Close()

	var results []repository.PopularDishRow
	for rows.Next() {
		var row repository.PopularDishRow
		if err := rows.Scan(
			&row.DishName, &row.Category, &row.Price,
			&row.TimesOrdered, &row.TotalQuantity, &row.TotalRevenue,
		); err != nil {
			return nil, fmt.Errorf("reports.PopularDishes scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// DailyStats — быстрая статистика дашборда: заказы и выручка за сегодня,
// истекающие сегодня ингредиенты, активные заказы.
func (r *ReportRepo) DailyStats(ctx context.Context) (*repository.DailyStats, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM orders WHERE DATE(datetime) = CURRENT_DATE) AS today_orders,
	    (SELECT COALESCE(SUM(` + orderTotalExpr + `), 0)
	     FROM orders o
	     LEFT JOIN bills b ON o.order_id = b.order_id
	     WHERE DATE(o.datetime) = CURRENT_DATE)                           AS today_revenue,
	    (SELECT COUNT(*) FROM ingredients
	     WHERE expiration_date = CURRENT_DATE)                            AS expiring_today,
	    (SELECT COUNT(*) FROM orders
	     WHERE DATE(datetime) = CURRENT_DATE
	       AND status IN ('Создан', 'В процессе'))                        AS active_orders`

	var s repository.DailyStats
	err := r.pool.QueryRow(ctx, query).Scan(&s.TodayOrders, &s.TodayRevenue, &s.ExpiringToday, &s.ActiveOrders)
	if err != nil {
		return nil, fmt.Errorf("reports.DailyStats: %w", err)
	}
	return &s, nil
}
