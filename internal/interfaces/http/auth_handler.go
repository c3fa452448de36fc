package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/restsystem/restaurant-api/internal/application/auth"
	"github.com/restsystem/restaurant-api/internal/application/dto"
	"github.com/restsystem/restaurant-api/internal/domain"
)

// AuthHandler — регистрация, вход, профиль.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler собирает handler аутентификации.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Регистрация пользователя
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, name, role"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "Заполните все поля"})
	}

	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "Заполните все поля"})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "Пользователь уже существует"})
		default:
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: "Ошибка регистрации"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Вход
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "Заполните все поля"})
	}

	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Error: "Пользователь не найден"})
		case errors.Is(err, domain.ErrWrongPassword):
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Error: "Неверный пароль"})
		default:
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: "Ошибка входа"})
		}
	}
	return c.JSON(out)
}

// Profile godoc
// @Summary      Профиль текущего пользователя
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.Context(), GetUserID(c), GetRole(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "Пользователь не найден"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Ошибка получения профиля"})
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Выход
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Токен живёт до истечения срока, серверного состояния сессии нет.
	return c.JSON(dto.MessageResponse{Message: "Успешный выход"})
}
