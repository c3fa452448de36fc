package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restsystem/restaurant-api/internal/application/dto"
	"github.com/restsystem/restaurant-api/internal/application/usecase"
	"github.com/restsystem/restaurant-api/internal/domain"
	"github.com/restsystem/restaurant-api/internal/domain/entity"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

// fakeOrderRepo держит заказы и позиции в памяти.
type fakeOrderRepo struct {
	orders     map[int64]*entity.Order
	positions  map[int64]*entity.OrderPosition
	nextOrder  int64
	nextPos    int64
	failOnDish int64 // AddPosition с этим dish_id возвращает ошибку
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:    make(map[int64]*entity.Order),
		positions: make(map[int64]*entity.OrderPosition),
	}
}

func (r *fakeOrderRepo) List(_ context.Context, f repository.OrderListFilter) ([]repository.OrderRow, error) {
	var rows []repository.OrderRow
	for _, o := range r.orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.EstablishmentID != nil && o.EstablishmentID != *f.EstablishmentID {
			continue
		}
		rows = append(rows, repository.OrderRow{Order: *o})
		if f.Limit > 0 && len(rows) == f.Limit {
			break
		}
	}
	return rows, nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id int64) (*repository.OrderDetails, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	details := &repository.OrderDetails{OrderRow: repository.OrderRow{Order: *o}}
	for _, p := range r.positions {
		if p.OrderID == id {
			details.Positions = append(details.Positions, repository.PositionRow{OrderPosition: *p})
		}
	}
	return details, nil
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.nextOrder++
	o.ID = r.nextOrder
	o.Status = entity.OrderStatusCreated
	clone := *o
	r.orders[o.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) AddPosition(_ context.Context, p *entity.OrderPosition) error {
	if r.failOnDish != 0 && p.DishID == r.failOnDish {
		return errors.New("нет такого блюда")
	}
	r.nextPos++
	p.ID = r.nextPos
	clone := *p
	r.positions[p.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	o.Status = status
	clone := *o
	return &clone, nil
}

func (r *fakeOrderRepo) UpdatePositionReady(_ context.Context, orderID, positionID int64, isReady bool) (*entity.OrderPosition, error) {
	p, ok := r.positions[positionID]
	if !ok || p.OrderID != orderID {
		return nil, nil
	}
	p.IsReady = isReady
	clone := *p
	return &clone, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.orders[id]; !ok {
		return false, nil
	}
	delete(r.orders, id)
	for pid, p := range r.positions {
		if p.OrderID == id {
			delete(r.positions, pid)
		}
	}
	return true, nil
}

// fakeOrderTx откатывает состояние репозитория при ошибке fn,
// имитируя транзакцию.
type fakeOrderTx struct {
	repo *fakeOrderRepo
}

func (t *fakeOrderTx) RunOrders(ctx context.Context, fn func(repository.OrderRepository) error) error {
	ordersBackup := make(map[int64]*entity.Order, len(t.repo.orders))
	for id, o := range t.repo.orders {
		clone := *o
		ordersBackup[id] = &clone
	}
	positionsBackup := make(map[int64]*entity.OrderPosition, len(t.repo.positions))
	for id, p := range t.repo.positions {
		clone := *p
		positionsBackup[id] = &clone
	}

	if err := fn(t.repo); err != nil {
		t.repo.orders = ordersBackup
		t.repo.positions = positionsBackup
		return err
	}
	return nil
}

func newOrderUseCase() (*usecase.OrderUseCase, *fakeOrderRepo) {
	repo := newFakeOrderRepo()
	return usecase.NewOrderUseCase(repo, &fakeOrderTx{repo: repo}), repo
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestCreateOrder_OfflineWithoutTable_ReturnsInvalidInput(t *testing.T) {
	uc, _ := newOrderUseCase()

	_, err := uc.Create(context.Background(), 1, dto.CreateOrderRequest{
		Type:            entity.OrderTypeOffline,
		EstablishmentID: 1,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_OnlineWithoutAddress_ReturnsInvalidInput(t *testing.T) {
	uc, _ := newOrderUseCase()

	_, err := uc.Create(context.Background(), 1, dto.CreateOrderRequest{
		Type:            entity.OrderTypeOnline,
		EstablishmentID: 1,
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_PersistsOrderAndPositions(t *testing.T) {
	uc, repo := newOrderUseCase()

	resp, err := uc.Create(context.Background(), 7, dto.CreateOrderRequest{
		Type:            entity.OrderTypeOffline,
		TableNumber:     intPtr(4),
		EstablishmentID: 1,
		Positions: []dto.PositionInput{
			{DishID: 1, Quantity: 2, Notes: "Без лука"},
			{DishID: 3, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Заказ успешно создан", resp.Message)
	assert.Equal(t, entity.OrderStatusCreated, resp.Order.Status)

	order := repo.orders[resp.Order.OrderID]
	require.NotNil(t, order)
	assert.Equal(t, int64(7), order.EmployeeID)
	assert.Len(t, repo.positions, 2)
}

func TestCreateOrder_PositionFailure_LeavesNoPartialWrites(t *testing.T) {
	uc, repo := newOrderUseCase()
	repo.failOnDish = 99

	_, err := uc.Create(context.Background(), 1, dto.CreateOrderRequest{
		Type:            entity.OrderTypeOnline,
		CustomerAddress: strPtr("ул. Марата, 10"),
		EstablishmentID: 1,
		Positions: []dto.PositionInput{
			{DishID: 1, Quantity: 1},
			{DishID: 99, Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.Empty(t, repo.orders)
	assert.Empty(t, repo.positions)
}

func TestListOrders_FiltersByStatusWithLimit(t *testing.T) {
	uc, repo := newOrderUseCase()
	ctx := context.Background()
	for i := 0; i < 7; i++ {
		o := &entity.Order{Type: entity.OrderTypeOffline, TableNumber: intPtr(i + 1), EstablishmentID: 1, EmployeeID: 1}
		require.NoError(t, repo.Create(ctx, o))
		if i%2 == 1 {
			_, err := repo.UpdateStatus(ctx, o.ID, entity.OrderStatusDone)
			require.NoError(t, err)
		}
	}

	rows, err := uc.List(ctx, repository.OrderListFilter{Status: entity.OrderStatusCreated, Limit: 3})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(rows), 3)
	for _, r := range rows {
		assert.Equal(t, entity.OrderStatusCreated, r.Status)
	}
}

func TestGetOrder_Unknown_ReturnsNotFound(t *testing.T) {
	uc, _ := newOrderUseCase()

	_, err := uc.Get(context.Background(), 12345)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateOrderStatus_Unknown_ReturnsNotFound(t *testing.T) {
	uc, _ := newOrderUseCase()

	_, err := uc.UpdateStatus(context.Background(), 12345, dto.UpdateOrderRequest{Status: entity.OrderStatusDone})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdatePositionReady_MarksPosition(t *testing.T) {
	uc, repo := newOrderUseCase()
	ctx := context.Background()

	o := &entity.Order{Type: entity.OrderTypeOffline, TableNumber: intPtr(2), EstablishmentID: 1, EmployeeID: 1}
	require.NoError(t, repo.Create(ctx, o))
	p := &entity.OrderPosition{OrderID: o.ID, DishID: 1, Quantity: 1}
	require.NoError(t, repo.AddPosition(ctx, p))

	resp, err := uc.UpdatePositionReady(ctx, o.ID, p.ID, dto.UpdatePositionRequest{IsReady: true})
	require.NoError(t, err)
	assert.Equal(t, "Статус позиции обновлен", resp.Message)
	assert.True(t, repo.positions[p.ID].IsReady)
}

func TestUpdatePositionReady_WrongOrder_ReturnsNotFound(t *testing.T) {
	uc, repo := newOrderUseCase()
	ctx := context.Background()

	o := &entity.Order{Type: entity.OrderTypeOffline, TableNumber: intPtr(2), EstablishmentID: 1, EmployeeID: 1}
	require.NoError(t, repo.Create(ctx, o))
	p := &entity.OrderPosition{OrderID: o.ID, DishID: 1, Quantity: 1}
	require.NoError(t, repo.AddPosition(ctx, p))

	_, err := uc.UpdatePositionReady(ctx, o.ID+1, p.ID, dto.UpdatePositionRequest{IsReady: true})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteOrder_SecondDeleteReturnsNotFound(t *testing.T) {
	uc, repo := newOrderUseCase()
	ctx := context.Background()

	o := &entity.Order{Type: entity.OrderTypeOffline, TableNumber: intPtr(1), EstablishmentID: 1, EmployeeID: 1}
	require.NoError(t, repo.Create(ctx, o))

	resp, err := uc.Delete(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Заказ успешно удален", resp.Message)

	_, err = uc.Delete(ctx, o.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
