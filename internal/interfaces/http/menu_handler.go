package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/restsystem/restaurant-api/internal/application/dto"
	"github.com/restsystem/restaurant-api/internal/application/usecase"
	"github.com/restsystem/restaurant-api/internal/domain"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

// MenuHandler — операции над меню.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler собирает handler меню.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// List godoc
// @Summary      Блюда меню
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        category   query  string  false  "категория"
// @Param        min_price  query  number  false  "минимальная цена"
// @Param        max_price  query  number  false  "максимальная цена"
// @Param        available  query  bool    false  "только доступные"
// @Success      200  {array}  dto.DishResponse
// @Router       /api/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	f := repository.DishFilter{
		Category:      c.Query("category"),
		MinPrice:      parseDecimalQuery(c, "min_price"),
		MaxPrice:      parseDecimalQuery(c, "max_price"),
		OnlyAvailable: c.Query("available") == "true",
	}

	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения блюд"})
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Категории меню
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Router       /api/menu/categories [get]
func (h *MenuHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения категорий"})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Карточка блюда с рецептом
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "id блюда"
// @Success      200  {object}  dto.DishDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/{id} [get]
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Блюдо не найдено"})
	}

	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "Блюдо не найдено"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения блюда"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Создать блюдо
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateDishRequest  true  "блюдо с рецептом"
// @Success      201   {object}  dto.CreateDishResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/menu [post]
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDishRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "Неверные данные блюда"})
	}

	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка создания блюда"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Обновить блюдо
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                    true  "id блюда"
// @Param        body  body  dto.UpdateDishRequest  true  "изменяемые поля"
// @Success      200   {object}  dto.UpdateDishResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/menu/{id} [put]
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Блюдо не найдено"})
	}
	var in dto.UpdateDishRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "Неверные данные блюда"})
	}

	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "Блюдо не найдено"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка обновления блюда"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Удалить блюдо
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "id блюда"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/{id} [delete]
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Блюдо не найдено"})
	}

	out, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "Блюдо не найдено"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка удаления блюда"})
	}
	return c.JSON(out)
}
