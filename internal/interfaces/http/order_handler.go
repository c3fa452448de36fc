package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/restsystem/restaurant-api/internal/application/dto"
	"github.com/restsystem/restaurant-api/internal/application/usecase"
	"github.com/restsystem/restaurant-api/internal/domain"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

// OrderHandler — операции над заказами.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler собирает handler заказов.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Список заказов
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status            query  string  false  "статус заказа"
// @Param        start_date        query  string  false  "начало периода (YYYY-MM-DD)"
// @Param        end_date          query  string  false  "конец периода (YYYY-MM-DD)"
// @Param        establishment_id  query  int     false  "заведение"
// @Param        limit             query  int     false  "максимум записей"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	f := repository.OrderListFilter{
		Status:          c.Query("status"),
		StartDate:       parseDateQuery(c, "start_date"),
		EndDate:         parseDateQuery(c, "end_date"),
		EstablishmentID: parseInt64Query(c, "establishment_id"),
	}
	if limit := parseInt64Query(c, "limit"); limit != nil && *limit > 0 {
		f.Limit = int(*limit)
	}

	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения заказов"})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Заказ со счётом и позициями
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "id заказа"
// @Success      200  {object}  dto.OrderDetailsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Заказ не найден"})
	}

	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "Заказ не найден"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения заказа"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Создать заказ
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateOrderRequest  true  "заказ с позициями"
// @Success      201   {object}  dto.CreateOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "Неверные данные заказа"})
	}

	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "Неверные данные заказа"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка создания заказа"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus godoc
// @Summary      Сменить статус заказа
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                    true  "id заказа"
// @Param        body  body  dto.UpdateOrderRequest  true  "новый статус"
// @Success      200   {object}  dto.UpdateOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Заказ не найден"})
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "Неверные данные заказа"})
	}

	out, err := h.uc.UpdateStatus(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "Заказ не найден"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка обновления заказа"})
	}
	return c.JSON(out)
}

// UpdatePosition godoc
// @Summary      Отметить готовность позиции
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orderId     path  int                       true  "id заказа"
// @Param        positionId  path  int                       true  "id позиции"
// @Param        body        body  dto.UpdatePositionRequest  true  "готовность"
// @Success      200  {object}  dto.UpdatePositionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{orderId}/positions/{positionId} [put]
func (h *OrderHandler) UpdatePosition(c *fiber.Ctx) error {
	orderID := parseIDParam(c, "orderId")
	positionID := parseIDParam(c, "positionId")
	if orderID == 0 || positionID == 0 {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Позиция не найдена"})
	}
	var in dto.UpdatePositionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "Неверные данные заказа"})
	}

	out, err := h.uc.UpdatePositionReady(c.Context(), orderID, positionID, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "Позиция не найдена"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка обновления статуса"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Удалить заказ
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "id заказа"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id := parseIDParam(c, "id")
	if id == 0 {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Заказ не найден"})
	}

	out, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "Заказ не найден"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка удаления заказа"})
	}
	return c.JSON(out)
}
