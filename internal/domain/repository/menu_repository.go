package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/restsystem/restaurant-api/internal/domain/entity"
)

// DishFilter — аддитивные предикаты списка блюд.
type DishFilter struct {
	Category      string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	OnlyAvailable bool
}

// DishRow — блюдо с вычисленной доступностью: false, если по рецепту
// не хватает ингредиента или срок годности вышел.
type DishRow struct {
	entity.Dish
	CalculatedAvailability bool
}

// DishIngredientRow — ингредиент рецепта с нормой расхода.
type DishIngredientRow struct {
	IngredientID     int64
	IngredientName   string
	RequiredQuantity decimal.Decimal
	Unit             string
}

// DishDetails — блюдо с рецептом.
type DishDetails struct {
	entity.Dish
	Ingredients []DishIngredientRow
}

// DishUpdate — частичное обновление: nil-поле остаётся нетронутым.
type DishUpdate struct {
	Name         *string
	Category     *string
	Price        *decimal.Decimal
	CookingTime  *string
	Availability *bool
}

// MenuRepository — порт персистентности меню.
// Create и AddIngredient вызываются внутри одной транзакции (TxRunner).
type MenuRepository interface {
	List(ctx context.Context, f DishFilter) ([]DishRow, error)
	Categories(ctx context.Context) ([]string, error)
	// GetByID возвращает (nil, nil), если блюда нет.
	GetByID(ctx context.Context, id int64) (*DishDetails, error)
	// Create вставляет блюдо и проставляет d.ID.
	Create(ctx context.Context, d *entity.Dish) error
	AddIngredient(ctx context.Context, di *entity.DishIngredient) error
	// Update применяет COALESCE-обновление; (nil, nil) — блюда нет.
	Update(ctx context.Context, id int64, u DishUpdate) (*entity.Dish, error)
	// Delete возвращает false, если блюда не было.
	Delete(ctx context.Context, id int64) (bool, error)
}
