package usecase

import (
	"context"

	"github.com/restsystem/restaurant-api/internal/application/dto"
	"github.com/restsystem/restaurant-api/internal/domain"
	"github.com/restsystem/restaurant-api/internal/domain/entity"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

// OrderTxRunner выполняет запись заказа с позициями в одной транзакции.
type OrderTxRunner interface {
	RunOrders(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}

// OrderUseCase — операции над заказами.
type OrderUseCase struct {
	repo     repository.OrderRepository
	txRunner OrderTxRunner
}

// NewOrderUseCase собирает кейс заказов.
func NewOrderUseCase(repo repository.OrderRepository, txRunner OrderTxRunner) *OrderUseCase {
	return &OrderUseCase{repo: repo, txRunner: txRunner}
}

// List возвращает заказы по аддитивным фильтрам.
func (uc *OrderUseCase) List(ctx context.Context, f repository.OrderListFilter) ([]dto.OrderResponse, error) {
	rows, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	result := make([]dto.OrderResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ToOrderResponse(r))
	}
	return result, nil
}

// Get возвращает заказ со счётом и позициями.
func (uc *OrderUseCase) Get(ctx context.Context, id int64) (*dto.OrderDetailsResponse, error) {
	details, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToOrderDetailsResponse(details)
	return &resp, nil
}

// Create создаёт заказ со статусом "Создан" и его позиции атомарно.
// Offline-заказ требует номер стола, online — адрес доставки.
func (uc *OrderUseCase) Create(ctx context.Context, employeeID int64, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if (in.Type == entity.OrderTypeOffline && in.TableNumber == nil) ||
		(in.Type == entity.OrderTypeOnline && in.CustomerAddress == nil) {
		return nil, domain.ErrInvalidInput
	}

	order := &entity.Order{
		Type:            in.Type,
		EstablishmentID: in.EstablishmentID,
		TableNumber:     in.TableNumber,
		CustomerAddress: in.CustomerAddress,
		EmployeeID:      employeeID,
	}

	err := uc.txRunner.RunOrders(ctx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		for _, p := range in.Positions {
			pos := &entity.OrderPosition{
				OrderID:  order.ID,
				DishID:   p.DishID,
				Quantity: p.Quantity,
				Notes:    p.Notes,
			}
			if err := orderRepo.AddPosition(ctx, pos); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateOrderResponse{
		Message: "Заказ успешно создан",
		Order:   dto.ToOrderResponseFromEntity(order),
	}, nil
}

// UpdateStatus меняет статус заказа.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id int64, in dto.UpdateOrderRequest) (*dto.UpdateOrderResponse, error) {
	order, err := uc.repo.UpdateStatus(ctx, id, in.Status)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.UpdateOrderResponse{
		Message: "Заказ успешно обновлен",
		Order:   dto.ToOrderResponseFromEntity(order),
	}, nil
}

// UpdatePositionReady отмечает готовность позиции в заказе.
func (uc *OrderUseCase) UpdatePositionReady(ctx context.Context, orderID, positionID int64, in dto.UpdatePositionRequest) (*dto.UpdatePositionResponse, error) {
	position, err := uc.repo.UpdatePositionReady(ctx, orderID, positionID, in.IsReady)
	if err != nil {
		return nil, err
	}
	if position == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.UpdatePositionResponse{
		Message:  "Статус позиции обновлен",
		Position: dto.ToPositionResponseFromEntity(position),
	}, nil
}

// Delete удаляет заказ вместе с позициями (каскад в схеме).
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, domain.ErrNotFound
	}
	return &dto.MessageResponse{Message: "Заказ успешно удален"}, nil
}
