package entity

import "github.com/shopspring/decimal"

// Dish — позиция меню.
type Dish struct {
	ID           int64
	Name         string
	Category     string
	Price        decimal.Decimal
	CookingTime  string // "00:30:00"
	Availability bool
}

// DishIngredient — норма расхода ингредиента на блюдо.
type DishIngredient struct {
	DishID           int64
	IngredientID     int64
	RequiredQuantity decimal.Decimal
}
