package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы срока годности (вычисляются запросом, не хранятся).
const (
	ExpirationExpired = "Просрочен"
	ExpirationSoon    = "Скоро истекает"
	ExpirationOK      = "Норма"
)

// Ingredient — складская запись ингредиента в заведении.
type Ingredient struct {
	ID              int64
	Name            string
	Quantity        decimal.Decimal
	Unit            string
	DateOfDelivery  time.Time
	ExpirationDate  time.Time
	SupplierID      int64
	EstablishmentID int64
}

// Supplier — поставщик.
type Supplier struct {
	ID    int64
	Name  string
	Phone string
}
