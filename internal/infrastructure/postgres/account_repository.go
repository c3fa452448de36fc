package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/restsystem/restaurant-api/internal/domain"
	"github.com/restsystem/restaurant-api/internal/domain/entity"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo — реализация порта AccountRepository поверх PostgreSQL.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository создаёт адаптер персистентности учётных записей.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// GetByEmail возвращает учётную запись или (nil, nil), если её нет.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*entity.UserAccount, error) {
	query := `
		SELECT account_id, employee_id, email, password_hash, role, created_at
		FROM user_accounts WHERE email = $1`
	var a entity.UserAccount
	err := r.q.QueryRow(ctx, query, email).Scan(
		&a.AccountID, &a.EmployeeID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	return &a, nil
}

// ExistsByEmail проверяет наличие учётной записи по email.
func (r *AccountRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM user_accounts WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists account by email: %w", err)
	}
	return exists, nil
}

// Create вставляет учётную запись; дубликат email — domain.ErrEmailAlreadyExists.
func (r *AccountRepo) Create(ctx context.Context, a *entity.UserAccount) error {
	query := `
		INSERT INTO user_accounts (employee_id, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING account_id, created_at`
	err := r.q.QueryRow(ctx, query, a.EmployeeID, a.Email, a.PasswordHash, a.Role).
		Scan(&a.AccountID, &a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// CreateIfAbsent вставляет запись атомарно: ON CONFLICT (email) DO NOTHING.
// Проигравший гонку первых входов не получает ошибку — запись уже существует.
func (r *AccountRepo) CreateIfAbsent(ctx context.Context, a *entity.UserAccount) error {
	query := `
		INSERT INTO user_accounts (employee_id, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING`
	_, err := r.q.Exec(ctx, query, a.EmployeeID, a.Email, a.PasswordHash, a.Role)
	if err != nil {
		return fmt.Errorf("insert account if absent: %w", err)
	}
	return nil
}
