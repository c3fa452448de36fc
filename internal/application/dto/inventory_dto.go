package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/restsystem/restaurant-api/internal/domain/entity"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

// CreateIngredientRequest — вход добавления ингредиента на склад.
type CreateIngredientRequest struct {
	IngredientName  string          `json:"ingredient_name"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	DateOfDelivery  time.Time       `json:"date_of_delivery"`
	ExpirationDate  time.Time       `json:"expiration_date"`
	SupplierID      int64           `json:"supplier_id"`
	EstablishmentID int64           `json:"establishment_id"`
}

// UpdateIngredientRequest — частичное обновление: отсутствующее поле
// оставляет значение в базе нетронутым.
type UpdateIngredientRequest struct {
	Quantity       *decimal.Decimal `json:"quantity"`
	ExpirationDate *time.Time       `json:"expiration_date"`
	IngredientName *string          `json:"ingredient_name"`
}

// IngredientResponse — складская строка с данными поставщика и заведения.
type IngredientResponse struct {
	IngredientID      int64           `json:"ingredient_id"`
	IngredientName    string          `json:"ingredient_name"`
	Quantity          decimal.Decimal `json:"quantity"`
	Unit              string          `json:"unit"`
	DateOfDelivery    time.Time       `json:"date_of_delivery"`
	ExpirationDate    time.Time       `json:"expiration_date"`
	SupplierID        int64           `json:"supplier_id"`
	EstablishmentID   int64           `json:"establishment_id"`
	SupplierName      string          `json:"supplier_name,omitempty"`
	EstablishmentName string          `json:"establishment_name,omitempty"`
	ExpirationStatus  string          `json:"expiration_status,omitempty"`
	DaysUntilExpiry   int             `json:"days_until_expiry"`
}

// LowStockResponse дополняет строку суммарной потребностью по рецептам.
type LowStockResponse struct {
	IngredientResponse
	TotalRequired *decimal.Decimal `json:"total_required"`
}

// CreateIngredientResponse — подтверждение добавления.
type CreateIngredientResponse struct {
	Message    string             `json:"message"`
	Ingredient IngredientResponse `json:"ingredient"`
}

// UpdateIngredientResponse — подтверждение обновления.
type UpdateIngredientResponse struct {
	Message    string             `json:"message"`
	Ingredient IngredientResponse `json:"ingredient"`
}

// SupplierResponse — поставщик.
type SupplierResponse struct {
	SupplierID   int64  `json:"supplier_id"`
	SupplierName string `json:"supplier_name"`
	Phone        string `json:"phone"`
}

// ToIngredientResponse переводит складскую строку в ответ API.
func ToIngredientResponse(r repository.IngredientRow) IngredientResponse {
	return IngredientResponse{
		IngredientID:      r.ID,
		IngredientName:    r.Name,
		Quantity:          r.Quantity,
		Unit:              r.Unit,
		DateOfDelivery:    r.DateOfDelivery,
		ExpirationDate:    r.ExpirationDate,
		SupplierID:        r.SupplierID,
		EstablishmentID:   r.EstablishmentID,
		SupplierName:      r.SupplierName,
		EstablishmentName: r.EstablishmentName,
		ExpirationStatus:  r.ExpirationStatus,
		DaysUntilExpiry:   r.DaysUntilExpiry,
	}
}

// ToIngredientResponseFromEntity переводит голый ингредиент в ответ.
func ToIngredientResponseFromEntity(i *entity.Ingredient) IngredientResponse {
	return IngredientResponse{
		IngredientID:    i.ID,
		IngredientName:  i.Name,
		Quantity:        i.Quantity,
		Unit:            i.Unit,
		DateOfDelivery:  i.DateOfDelivery,
		ExpirationDate:  i.ExpirationDate,
		SupplierID:      i.SupplierID,
		EstablishmentID: i.EstablishmentID,
	}
}

// ToSupplierResponse переводит поставщика в ответ.
func ToSupplierResponse(s entity.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:   s.ID,
		SupplierName: s.Name,
		Phone:        s.Phone,
	}
}
