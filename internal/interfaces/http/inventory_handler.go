package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/restsystem/restaurant-api/internal/application/dto"
	"github.com/restsystem/restaurant-api/internal/application/usecase"
	"github.com/restsystem/restaurant-api/internal/domain"
)

// InventoryHandler — операции над складом.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler собирает handler склада.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Все ингредиенты
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        establishment_id  query  int  false  "заведение"
// @Success      200  {array}  dto.IngredientResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), parseInt64Query(c, "establishment_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения ингредиентов"})
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Ингредиенты с низким остатком
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.LowStockResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения ингредиентов"})
	}
	return c.JSON(out)
}

// ExpiringSoon godoc
// @Summary      Истекающие сроки годности
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.IngredientResponse
// @Router       /api/inventory/expiring-soon [get]
func (h *InventoryHandler) ExpiringSoon(c *fiber.Ctx) error {
	out, err := h.uc.ExpiringSoon(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения ингредиентов"})
	}
	return c.JSON(out)
}

// Suppliers godoc
// @Summary      Поставщики
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/inventory/suppliers [get]
func (h *InventoryHandler) Suppliers(c *fiber.Ctx) error {
	out, err := h.uc.Suppliers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения поставщиков"})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Один ингредиент
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "id ингредиента"
// @Success      200  {object}  dto.IngredientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Ингредиент не найден"})
	}

	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "Ингредиент не найден"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения ингредиента"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Добавить ингредиент
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateIngredientRequest  true  "ингредиент"
// @Success      201   {object}  dto.CreateIngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "Неверные данные ингредиента"})
	}

	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка добавления ингредиента"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Обновить ингредиент
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                          true  "id ингредиента"
// @Param        body  body  dto.UpdateIngredientRequest  true  "изменяемые поля"
// @Success      200   {object}  dto.UpdateIngredientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Ингредиент не найден"})
	}
	var in dto.UpdateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "Неверные данные ингредиента"})
	}

	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "Ингредиент не найден"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка обновления ингредиента"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Удалить ингредиент
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "id ингредиента"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Ингредиент не найден"})
	}

	out, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "Ингредиент не найден"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка удаления ингредиента"})
	}
	return c.JSON(out)
}
