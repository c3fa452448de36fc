package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restsystem/restaurant-api/internal/domain/entity"
)

// IngredientRow — ингредиент с присоединёнными и вычисленными полями.
type IngredientRow struct {
	entity.Ingredient
	SupplierName      string
	EstablishmentName string
	ExpirationStatus  string
	DaysUntilExpiry   int
}

// LowStockRow дополняет строку суммарной потребностью по рецептам.
type LowStockRow struct {
	IngredientRow
	TotalRequired *decimal.Decimal
}

// IngredientUpdate — частичное обновление: nil-поле остаётся нетронутым.
type IngredientUpdate struct {
	Quantity       *decimal.Decimal
	ExpirationDate *time.Time
	Name           *string
}

// InventoryRepository — порт персистентности склада.
type InventoryRepository interface {
	List(ctx context.Context, establishmentID *int64) ([]IngredientRow, error)
	// LowStock — ингредиенты с остатком ниже порогового.
	LowStock(ctx context.Context) ([]LowStockRow, error)
	// ExpiringSoon — срок годности истекает в ближайшие 7 дней.
	ExpiringSoon(ctx context.Context) ([]IngredientRow, error)
	// GetByID возвращает (nil, nil), если ингредиента нет.
	GetByID(ctx context.Context, id int64) (*IngredientRow, error)
	// Create вставляет ингредиент и проставляет i.ID.
	Create(ctx context.Context, i *entity.Ingredient) error
	// Update применяет COALESCE-обновление; (nil, nil) — ингредиента нет.
	Update(ctx context.Context, id int64, u IngredientUpdate) (*entity.Ingredient, error)
	// Delete возвращает false, если ингредиента не было.
	Delete(ctx context.Context, id int64) (bool, error)
	Suppliers(ctx context.Context) ([]entity.Supplier, error)
}
