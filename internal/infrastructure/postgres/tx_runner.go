package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/restsystem/restaurant-api/internal/application/auth"
	"github.com/restsystem/restaurant-api/internal/application/usecase"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

var _ auth.TxRunner = (*TxRunner)(nil)
var _ usecase.OrderTxRunner = (*TxRunner)(nil)
var _ usecase.MenuTxRunner = (*TxRunner)(nil)

// TxRunner выполняет колбэки внутри транзакции PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner создаёт раннер поверх пула.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunAuth открывает транзакцию с репозиториями сотрудников и учётных записей.
func (r *TxRunner) RunAuth(ctx context.Context, fn func(
	employeeRepo repository.EmployeeRepository,
	accountRepo repository.AccountRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewEmployeeRepository(tx), NewAccountRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrders открывает транзакцию для записи заказа вместе с позициями.
func (r *TxRunner) RunOrders(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewOrderRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunMenu открывает транзакцию для записи блюда вместе с рецептурой.
func (r *TxRunner) RunMenu(ctx context.Context, fn func(
	menuRepo repository.MenuRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMenuRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
