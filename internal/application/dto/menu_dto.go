package dto

import (
	"github.com/shopspring/decimal"

	"github.com/restsystem/restaurant-api/internal/domain/entity"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

// DishIngredientInput — строка рецепта в запросе создания блюда.
type DishIngredientInput struct {
	IngredientID     int64           `json:"ingredient_id"`
	RequiredQuantity decimal.Decimal `json:"required_quantity"`
}

// CreateDishRequest — вход создания блюда с рецептом.
type CreateDishRequest struct {
	DishName    string                `json:"dish_name"`
	Category    string                `json:"category"`
	Price       decimal.Decimal       `json:"price"`
	CookingTime string                `json:"cooking_time"`
	Ingredients []DishIngredientInput `json:"ingredients"`
}

// UpdateDishRequest — частичное обновление блюда.
type UpdateDishRequest struct {
	DishName     *string          `json:"dish_name"`
	Category     *string          `json:"category"`
	Price        *decimal.Decimal `json:"price"`
	CookingTime  *string          `json:"cooking_time"`
	Availability *bool            `json:"availability"`
}

// DishResponse — блюдо в списке меню.
type DishResponse struct {
	DishID                 int64           `json:"dish_id"`
	DishName               string          `json:"dish_name"`
	Category               string          `json:"category"`
	Price                  decimal.Decimal `json:"price"`
	CookingTime            string          `json:"cooking_time"`
	Availability           bool            `json:"availability"`
	CalculatedAvailability bool            `json:"calculated_availability"`
}

// DishIngredientResponse — строка рецепта в карточке блюда.
type DishIngredientResponse struct {
	IngredientID     int64           `json:"ingredient_id"`
	IngredientName   string          `json:"ingredient_name"`
	RequiredQuantity decimal.Decimal `json:"required_quantity"`
	Unit             string          `json:"unit"`
}

// DishDetailsResponse — карточка блюда с рецептом.
type DishDetailsResponse struct {
	DishID       int64                    `json:"dish_id"`
	DishName     string                   `json:"dish_name"`
	Category     string                   `json:"category"`
	Price        decimal.Decimal          `json:"price"`
	CookingTime  string                   `json:"cooking_time"`
	Availability bool                     `json:"availability"`
	Ingredients  []DishIngredientResponse `json:"ingredients"`
}

// CreateDishResponse — подтверждение создания.
type CreateDishResponse struct {
	Message string       `json:"message"`
	Dish    DishResponse `json:"dish"`
}

// UpdateDishResponse — подтверждение обновления.
type UpdateDishResponse struct {
	Message string       `json:"message"`
	Dish    DishResponse `json:"dish"`
}

// ToDishResponse переводит строку меню в ответ API.
func ToDishResponse(r repository.DishRow) DishResponse {
	return DishResponse{
		DishID:                 r.ID,
		DishName:               r.Name,
		Category:               r.Category,
		Price:                  r.Price,
		CookingTime:            r.CookingTime,
		Availability:           r.Availability,
		CalculatedAvailability: r.CalculatedAvailability,
	}
}

// ToDishResponseFromEntity переводит голое блюдо в ответ.
func ToDishResponseFromEntity(d *entity.Dish) DishResponse {
	return DishResponse{
		DishID:       d.ID,
		DishName:     d.Name,
		Category:     d.Category,
		Price:        d.Price,
		CookingTime:  d.CookingTime,
		Availability: d.Availability,
	}
}

// ToDishDetailsResponse собирает карточку блюда.
func ToDishDetailsResponse(d *repository.DishDetails) DishDetailsResponse {
	ingredients := make([]DishIngredientResponse, 0, len(d.Ingredients))
	for _, i := range d.Ingredients {
		ingredients = append(ingredients, DishIngredientResponse{
			IngredientID:     i.IngredientID,
			IngredientName:   i.IngredientName,
			RequiredQuantity: i.RequiredQuantity,
			Unit:             i.Unit,
		})
	}
	return DishDetailsResponse{
		DishID:       d.ID,
		DishName:     d.Name,
		Category:     d.Category,
		Price:        d.Price,
		CookingTime:  d.CookingTime,
		Availability: d.Availability,
		Ingredients:  ingredients,
	}
}
