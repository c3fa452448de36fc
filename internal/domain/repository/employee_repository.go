package repository

import (
	"context"

	"github.com/restsystem/restaurant-api/internal/domain/entity"
)

// EmployeeRepository — порт персистентности кадровых записей.
type EmployeeRepository interface {
	// Create вставляет сотрудника и проставляет e.ID.
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	GetByMail(ctx context.Context, mail string) (*entity.Employee, error)
	// LatestPosition возвращает текст должности из актуального назначения
	// (максимальный establishment_id). Пустая строка — назначений нет.
	LatestPosition(ctx context.Context, employeeID int64) (string, error)
}
