package entity

import "time"

// Статусы заказа. Хранятся по-русски: контракт с клиентом и отчётами.
const (
	OrderStatusCreated    = "Создан"
	OrderStatusInProgress = "В процессе"
	OrderStatusDone       = "Завершен"
	OrderStatusCancelled  = "Отменен"
)

// Типы заказа.
const (
	OrderTypeOffline = "offline" // в зале, требует номер стола
	OrderTypeOnline  = "online"  // доставка, требует адрес
)

// Order — заказ. TableNumber и CustomerAddress взаимоисключающие по типу.
type Order struct {
	ID              int64
	Type            string
	Datetime        time.Time
	Status          string
	EstablishmentID int64
	TableNumber     *int
	CustomerAddress *string
	EmployeeID      int64
}

// OrderPosition — строка заказа (блюдо, количество, готовность).
type OrderPosition struct {
	ID       int64
	OrderID  int64
	DishID   int64
	Quantity int
	Notes    string
	IsReady  bool
}
