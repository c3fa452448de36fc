package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/restsystem/restaurant-api/internal/domain/entity"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo — реализация порта OrderRepository поверх PostgreSQL
// (работает и с пулом, и с транзакцией через Querier).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository создаёт адаптер персистентности заказов.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// orderColumns — общая часть SELECT для строк заказа: итог берётся из счёта,
// при его отсутствии считается по позициям.
const orderColumns = `
	o.order_id, o.type, o.datetime, o.status, o.establishment_id,
	o.table_number, o.customer_address, o.employee_id,
	e.full_name AS employee_name,
	es.name AS establishment_name,
	COALESCE(
		b.total_price,
		(SELECT SUM(d.price * p.quantity)
		 FROM positions p
		 JOIN dishes d ON p.dish_id = d.dish_id
		 WHERE p.order_id = o.order_id)
	) AS total_price,
	b.rating`

// List возвращает заказы по аддитивным предикатам фильтра.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderListFilter) ([]repository.OrderRow, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + orderColumns + `
		FROM orders o
		JOIN employees e       ON o.employee_id = e.employee_id
		JOIN establishments es ON o.establishment_id = es.establishment_id
		LEFT JOIN bills b      ON o.order_id = b.order_id
		WHERE 1=1`)

	var args []any
	if f.Status != "" {
		args = append(args, f.Status)
		fmt.Fprintf(&sb, " AND o.status = $%d", len(args))
	}
	if f.StartDate != nil && f.EndDate != nil {
		args = append(args, *f.StartDate, *f.EndDate)
		fmt.Fprintf(&sb, " AND o.datetime BETWEEN $%d AND $%d", len(args)-1, len(args))
	}
	if f.EstablishmentID != nil {
		args = append(args, *f.EstablishmentID)
		fmt.Fprintf(&sb, " AND o.establishment_id = $%d", len(args))
	}
	sb.WriteString(" ORDER BY o.datetime DESC")
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []repository.OrderRow
	for rows.Next() {
		var row repository.OrderRow
		if err := rows.Scan(
			&row.ID, &row.Type, &row.Datetime, &row.Status, &row.EstablishmentID,
			&row.TableNumber, &row.CustomerAddress, &row.EmployeeID,
			&row.EmployeeName, &row.EstablishmentName, &row.TotalPrice, &row.Rating,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetByID возвращает заказ со счётом и позициями или (nil, nil).
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*repository.OrderDetails, error) {
	query := `
		SELECT ` + orderColumns + `,
		       b.payment_method, b.tips
		FROM orders o
		JOIN employees e       ON o.employee_id = e.employee_id
		JOIN establishments es ON o.establishment_id = es.establishment_id
		LEFT JOIN bills b      ON o.order_id = b.order_id
		WHERE o.order_id = $1`
	var det repository.OrderDetails
	err := r.q.QueryRow(ctx, query, id).Scan(
		&det.ID, &det.Type, &det.Datetime, &det.Status, &det.EstablishmentID,
		&det.TableNumber, &det.CustomerAddress, &det.EmployeeID,
		&det.EmployeeName, &det.EstablishmentName, &det.TotalPrice, &det.Rating,
		&det.PaymentMethod, &det.Tips,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	positions, err := r.listPositions(ctx, id)
	if err != nil {
		return nil, err
	}
	det.Positions = positions
	return &det, nil
}

func (r *OrderRepo) listPositions(ctx context.Context, orderID int64) ([]repository.PositionRow, error) {
	query := `
		SELECT p.position_id, p.order_id, p.dish_id, p.quantity, p.notes, p.is_ready,
		       d.dish_name, d.price
		FROM positions p
		JOIN dishes d ON p.dish_id = d.dish_id
		WHERE p.order_id = $1
		ORDER BY p.position_id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()

	var list []repository.PositionRow
	for rows.Next() {
		var p repository.PositionRow
		if err := rows.Scan(&p.ID, &p.OrderID, &p.DishID, &p.Quantity, &p.Notes, &p.IsReady,
			&p.DishName, &p.Price); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create вставляет заказ со статусом "Создан"; проставляет o.ID, o.Datetime и o.Status.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (type, datetime, status, establishment_id, table_number, customer_address, employee_id)
		VALUES ($1, NOW(), $2, $3, $4, $5, $6)
		RETURNING order_id, datetime`
	o.Status = entity.OrderStatusCreated
	err := r.q.QueryRow(ctx, query,
		o.Type, o.Status, o.EstablishmentID, o.TableNumber, o.CustomerAddress, o.EmployeeID,
	).Scan(&o.ID, &o.Datetime)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// AddPosition вставляет позицию заказа и проставляет p.ID.
func (r *OrderRepo) AddPosition(ctx context.Context, p *entity.OrderPosition) error {
	query := `
		INSERT INTO positions (order_id, dish_id, quantity, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING position_id`
	err := r.q.QueryRow(ctx, query, p.OrderID, p.DishID, p.Quantity, p.Notes).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert position: %w", err)
	}
	return nil
}

// UpdateStatus меняет статус заказа; (nil, nil) — заказа нет.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Order, error) {
	query := `
		UPDATE orders SET status = $1 WHERE order_id = $2
		RETURNING order_id, type, datetime, status, establishment_id, table_number, customer_address, employee_id`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, status, id).Scan(
		&o.ID, &o.Type, &o.Datetime, &o.Status, &o.EstablishmentID,
		&o.TableNumber, &o.CustomerAddress, &o.EmployeeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return &o, nil
}

// UpdatePositionReady меняет готовность позиции; (nil, nil) — позиции нет в заказе.
func (r *OrderRepo) UpdatePositionReady(ctx context.Context, orderID, positionID int64, isReady bool) (*entity.OrderPosition, error) {
	query := `
		UPDATE positions SET is_ready = $1
		WHERE position_id = $2 AND order_id = $3
		RETURNING position_id, order_id, dish_id, quantity, notes, is_ready`
	var p entity.OrderPosition
	err := r.q.QueryRow(ctx, query, isReady, positionID, orderID).Scan(
		&p.ID, &p.OrderID, &p.DishID, &p.Quantity, &p.Notes, &p.IsReady,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update position ready: %w", err)
	}
	return &p, nil
}

// Delete удаляет заказ (позиции уходят каскадом); false — заказа не было.
func (r *OrderRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM orders WHERE order_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
