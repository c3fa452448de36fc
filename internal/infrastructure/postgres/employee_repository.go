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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo — реализация порта EmployeeRepository поверх PostgreSQL
// (работает и с пулом, и с транзакцией через Querier).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository создаёт адаптер персистентности сотрудников.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create вставляет кадровую запись и проставляет e.ID.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (full_name, mail, experience, age, information)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING employee_id`
	err := r.q.QueryRow(ctx, query, e.FullName, e.Mail, e.Experience, e.Age, e.Information).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID возвращает сотрудника или (nil, nil), если записи нет.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `
		SELECT employee_id, full_name, mail, experience, age, information
		FROM employees WHERE employee_id = $1`
	var e entity.Employee
	err := r.q.QueryRow(ctx, query, id).Scan(&e.ID, &e.FullName, &e.Mail, &e.Experience, &e.Age, &e.Information)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}
	return &e, nil
}

// GetByMail возвращает сотрудника по контактному email или (nil, nil).
func (r *EmployeeRepo) GetByMail(ctx context.Context, mail string) (*entity.Employee, error) {
	query := `
		SELECT employee_id, full_name, mail, experience, age, information
		FROM employees WHERE mail = $1 LIMIT 1`
	var e entity.Employee
	err := r.q.QueryRow(ctx, query, mail).Scan(&e.ID, &e.FullName, &e.Mail, &e.Experience, &e.Age, &e.Information)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by mail: %w", err)
	}
	return &e, nil
}

// LatestPosition возвращает должность из актуального назначения.
// Актуальность — максимальный establishment_id; пустая строка — назначений нет.
func (r *EmployeeRepo) LatestPosition(ctx context.Context, employeeID int64) (string, error) {
	query := `
		SELECT position FROM est_empl
		WHERE employee_id = $1
		ORDER BY establishment_id DESC
		LIMIT 1`
	var position string
	err := r.q.QueryRow(ctx, query, employeeID).Scan(&position)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get latest position: %w", err)
	}
	return position, nil
}
