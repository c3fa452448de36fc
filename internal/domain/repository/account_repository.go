package repository

import (
	"context"

	"github.com/restsystem/restaurant-api/internal/domain/entity"
)

// AccountRepository — порт персистентности учётных записей.
type AccountRepository interface {
	// GetByEmail возвращает (nil, nil), если записи нет.
	GetByEmail(ctx context.Context, email string) (*entity.UserAccount, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create — обычная вставка; дубликат email даёт domain.ErrEmailAlreadyExists.
	Create(ctx context.Context, a *entity.UserAccount) error
	// CreateIfAbsent — атомарная вставка ON CONFLICT (email) DO NOTHING.
	// Закрывает гонку одновременных первых входов: ровно одна запись на email.
	CreateIfAbsent(ctx context.Context, a *entity.UserAccount) error
}
