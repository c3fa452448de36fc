package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restsystem/restaurant-api/internal/domain/entity"
)

// OrderListFilter — аддитивные предикаты списка заказов.
// Незаполненное поле — отсутствие условия, не ошибка.
type OrderListFilter struct {
	Status          string
	StartDate       *time.Time
	EndDate         *time.Time
	EstablishmentID *int64
	Limit           int // 0 — без ограничения
}

// OrderRow — строка списка заказов с присоединёнными полями.
// TotalPrice берётся из счёта, иначе считается по позициям; nil — позиций нет.
type OrderRow struct {
	entity.Order
	EmployeeName      string
	EstablishmentName string
	TotalPrice        *decimal.Decimal
	Rating            *int
}

// PositionRow — позиция заказа с данными блюда.
type PositionRow struct {
	entity.OrderPosition
	DishName string
	Price    decimal.Decimal
}

// OrderDetails — заказ целиком: строка списка плюс счёт и позиции.
type OrderDetails struct {
	OrderRow
	PaymentMethod *string
	Tips          *decimal.Decimal
	Positions     []PositionRow
}

// OrderRepository — порт персистентности заказов.
// Create и AddPosition вызываются внутри одной транзакции (TxRunner).
type OrderRepository interface {
	List(ctx context.Context, f OrderListFilter) ([]OrderRow, error)
	// GetByID возвращает (nil, nil), если заказа нет.
	GetByID(ctx context.Context, id int64) (*OrderDetails, error)
	// Create вставляет заказ со статусом "Создан" и проставляет o.ID и o.Datetime.
	Create(ctx context.Context, o *entity.Order) error
	AddPosition(ctx context.Context, p *entity.OrderPosition) error
	// UpdateStatus возвращает (nil, nil), если заказа нет.
	UpdateStatus(ctx context.Context, id int64, status string) (*entity.Order, error)
	// UpdatePositionReady возвращает (nil, nil), если позиции нет в этом заказе.
	UpdatePositionReady(ctx context.Context, orderID, positionID int64, isReady bool) (*entity.OrderPosition, error)
	// Delete возвращает false, если заказа не было.
	Delete(ctx context.Context, id int64) (bool, error)
}
