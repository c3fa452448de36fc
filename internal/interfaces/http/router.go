package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/restsystem/restaurant-api/internal/application/auth"
	"github.com/restsystem/restaurant-api/internal/application/usecase"
	"github.com/restsystem/restaurant-api/internal/domain/role"
)

// RouterDeps — зависимости роутера.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	OrderUC     *usecase.OrderUseCase
	InventoryUC *usecase.InventoryUseCase
	MenuUC      *usecase.MenuUseCase
	ReportUC    *usecase.ReportUseCase
	JWTSecret   string
}

// Router регистрирует маршруты API. Allow-list ролей каждого маршрута —
// часть внешнего контракта, менять без согласования нельзя.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (публичные, кроме профиля и выхода)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/profile", Authenticate(deps.JWTSecret), authHandler.Profile)
	authGroup.Post("/logout", Authenticate(deps.JWTSecret), authHandler.Logout)

	// Всё остальное требует аутентификацию
	protected := api.Group("/", Authenticate(deps.JWTSecret))

	// Заказы
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := protected.Group("/orders")
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.Get)
	orders.Post("/", orderHandler.Create)
	orders.Put("/:orderId/positions/:positionId",
		RequireRole(role.Manager, role.Chef, role.HeadChef, role.Admin),
		orderHandler.UpdatePosition)
	orders.Put("/:id",
		RequireRole(role.Manager, role.Chef, role.HeadChef, role.Admin),
		orderHandler.UpdateStatus)
	orders.Delete("/:id",
		RequireRole(role.Manager, role.Admin),
		orderHandler.Delete)

	// Склад. Конкретные пути раньше /:id.
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory := protected.Group("/inventory")
	inventory.Get("/low-stock",
		RequireRole(role.Manager, role.Chef, role.Admin),
		inventoryHandler.LowStock)
	inventory.Get("/expiring-soon",
		RequireRole(role.Manager, role.Chef, role.Admin),
		inventoryHandler.ExpiringSoon)
	inventory.Get("/suppliers",
		RequireRole(role.Manager, role.Admin),
		inventoryHandler.Suppliers)
	inventory.Get("/",
		RequireRole(role.Manager, role.Chef, role.HeadChef, role.Admin),
		inventoryHandler.List)
	inventory.Get("/:id",
		RequireRole(role.Manager, role.Chef, role.HeadChef, role.Admin),
		inventoryHandler.Get)
	inventory.Post("/",
		RequireRole(role.Manager, role.Admin),
		inventoryHandler.Create)
	inventory.Put("/:id",
		RequireRole(role.Manager, role.Admin),
		inventoryHandler.Update)
	inventory.Delete("/:id",
		RequireRole(role.Manager, role.Admin),
		inventoryHandler.Delete)

	// Меню: чтение всем аутентифицированным, запись кухне и менеджменту.
	menuHandler := NewMenuHandler(deps.MenuUC)
	menu := protected.Group("/menu")
	menu.Get("/categories", menuHandler.Categories)
	menu.Get("/", menuHandler.List)
	menu.Get("/:id", menuHandler.Get)
	menu.Post("/",
		RequireRole(role.Manager, role.Chef, role.HeadChef, role.Admin),
		menuHandler.Create)
	menu.Put("/:id",
		RequireRole(role.Manager, role.Chef, role.HeadChef, role.Admin),
		menuHandler.Update)
	menu.Delete("/:id",
		RequireRole(role.Manager, role.Chef, role.HeadChef, role.Admin),
		menuHandler.Delete)

	// Отчёты
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := protected.Group("/reports")
	reportRoles := RequireRole(role.Manager, role.Analyst, role.Admin)
	reports.Get("/sales/pdf", reportRoles, reportHandler.SalesPDF)
	reports.Get("/sales", reportRoles, reportHandler.Sales)
	reports.Get("/inventory", reportRoles, reportHandler.Inventory)
	reports.Get("/employee-performance", reportRoles, reportHandler.EmployeePerformance)
	reports.Get("/popular-dishes", reportRoles, reportHandler.PopularDishes)
	reports.Get("/daily-stats", reportHandler.DailyStats)
}
