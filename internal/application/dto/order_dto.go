package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/restsystem/restaurant-api/internal/domain/entity"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

// PositionInput — позиция в запросе создания заказа.
type PositionInput struct {
	DishID   int64  `json:"dish_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// CreateOrderRequest — вход создания заказа. Для offline обязателен номер
// стола, для online — адрес доставки.
type CreateOrderRequest struct {
	Type            string          `json:"type"`
	TableNumber     *int            `json:"table_number"`
	CustomerAddress *string         `json:"customer_address"`
	EstablishmentID int64           `json:"establishment_id"`
	Positions       []PositionInput `json:"positions"`
}

// UpdateOrderRequest — смена статуса заказа.
type UpdateOrderRequest struct {
	Status string `json:"status"`
}

// UpdatePositionRequest — отметка готовности позиции.
type UpdatePositionRequest struct {
	IsReady bool `json:"is_ready"`
}

// OrderResponse — заказ в списках и в теле подтверждений.
type OrderResponse struct {
	OrderID           int64            `json:"order_id"`
	Type              string           `json:"type"`
	Datetime          time.Time        `json:"datetime"`
	Status            string           `json:"status"`
	EstablishmentID   int64            `json:"establishment_id"`
	TableNumber       *int             `json:"table_number"`
	CustomerAddress   *string          `json:"customer_address"`
	EmployeeID        int64            `json:"employee_id"`
	EmployeeName      string           `json:"employee_name,omitempty"`
	EstablishmentName string           `json:"establishment_name,omitempty"`
	TotalPrice        *decimal.Decimal `json:"total_price"`
	Rating            *int             `json:"rating"`
}

// PositionResponse — позиция заказа с данными блюда.
type PositionResponse struct {
	PositionID int64           `json:"position_id"`
	OrderID    int64           `json:"order_id"`
	DishID     int64           `json:"dish_id"`
	Quantity   int             `json:"quantity"`
	Notes      string          `json:"notes"`
	IsReady    bool            `json:"is_ready"`
	DishName   string          `json:"dish_name,omitempty"`
	Price      decimal.Decimal `json:"price"`
}

// OrderDetailsResponse — заказ целиком: счёт и позиции.
type OrderDetailsResponse struct {
	OrderResponse
	PaymentMethod *string            `json:"payment_method"`
	Tips          *decimal.Decimal   `json:"tips"`
	Positions     []PositionResponse `json:"positions"`
}

// CreateOrderResponse — подтверждение создания.
type CreateOrderResponse struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}

// UpdateOrderResponse — подтверждение смены статуса.
type UpdateOrderResponse struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}

// UpdatePositionResponse — подтверждение отметки готовности.
type UpdatePositionResponse struct {
	Message  string           `json:"message"`
	Position PositionResponse `json:"position"`
}

// ToOrderResponse переводит строку списка в ответ API.
func ToOrderResponse(r repository.OrderRow) OrderResponse {
	return OrderResponse{
		OrderID:           r.ID,
		Type:              r.Type,
		Datetime:          r.Datetime,
		Status:            r.Status,
		EstablishmentID:   r.EstablishmentID,
		TableNumber:       r.TableNumber,
		CustomerAddress:   r.CustomerAddress,
		EmployeeID:        r.EmployeeID,
		EmployeeName:      r.EmployeeName,
		EstablishmentName: r.EstablishmentName,
		TotalPrice:        r.TotalPrice,
		Rating:            r.Rating,
	}
}

// ToOrderResponseFromEntity переводит голый заказ (без join-полей) в ответ.
func ToOrderResponseFromEntity(o *entity.Order) OrderResponse {
	return OrderResponse{
		OrderID:         o.ID,
		Type:            o.Type,
		Datetime:        o.Datetime,
		Status:          o.Status,
		EstablishmentID: o.EstablishmentID,
		TableNumber:     o.TableNumber,
		CustomerAddress: o.CustomerAddress,
		EmployeeID:      o.EmployeeID,
	}
}

// ToPositionResponse переводит позицию с данными блюда в ответ.
func ToPositionResponse(p repository.PositionRow) PositionResponse {
	return PositionResponse{
		PositionID: p.ID,
		OrderID:    p.OrderID,
		DishID:     p.DishID,
		Quantity:   p.Quantity,
		Notes:      p.Notes,
		IsReady:    p.IsReady,
		DishName:   p.DishName,
		Price:      p.Price,
	}
}

// ToPositionResponseFromEntity переводит голую позицию в ответ.
func ToPositionResponseFromEntity(p *entity.OrderPosition) PositionResponse {
	return PositionResponse{
		PositionID: p.ID,
		OrderID:    p.OrderID,
		DishID:     p.DishID,
		Quantity:   p.Quantity,
		Notes:      p.Notes,
		IsReady:    p.IsReady,
	}
}

// ToOrderDetailsResponse собирает полный ответ по заказу.
func ToOrderDetailsResponse(d *repository.OrderDetails) OrderDetailsResponse {
	positions := make([]PositionResponse, 0, len(d.Positions))
	for _, p := range d.Positions {
		positions = append(positions, ToPositionResponse(p))
	}
	return OrderDetailsResponse{
		OrderResponse: ToOrderResponse(d.OrderRow),
		PaymentMethod: d.PaymentMethod,
		Tips:          d.Tips,
		Positions:     positions,
	}
}
