package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/restsystem/restaurant-api/internal/application/dto"
	"github.com/restsystem/restaurant-api/internal/domain/role"
	"github.com/restsystem/restaurant-api/pkg/jwt"
)

// Ключи Locals, заполняемые Authenticate.
const (
	LocalUserID      = "user_id"
	LocalEmail       = "email"
	LocalName        = "name"
	LocalRole        = "role"
	LocalRoleDisplay = "role_display"
)

// Authenticate проверяет Bearer-токен и кладёт личность в c.Locals.
// Каноническая роль не берётся из токена как есть: она каждый раз
// пересчитывается из сырого текста должности. Устаревший или подправленный
// снимок роли в токене таким образом не переживает смену должности.
func Authenticate(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Error: "Требуется аутентификация"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Error: "Требуется аутентификация"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Error: "Требуется аутентификация"})
		}

		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Error: "Неверный токен"})
		}

		rawRole := claims.RoleDisplay
		if rawRole == "" {
			rawRole = claims.Role
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalName, claims.Name)
		c.Locals(LocalRole, role.Normalize(rawRole))
		c.Locals(LocalRoleDisplay, rawRole)
		return c.Next()
	}
}

// RequireRole пропускает запрос, только если каноническая роль входит в
// allow-list маршрута. Ставится после Authenticate.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		current := GetRole(c)
		for _, r := range allowedRoles {
			if current == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).
			JSON(dto.ErrorResponse{Error: "Недостаточно прав"})
	}
}

// GetUserID возвращает идентификатор сотрудника из контекста.
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetEmail возвращает email из контекста.
func GetEmail(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalEmail).(string)
	return v
}

// GetName возвращает имя из контекста.
func GetName(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalName).(string)
	return v
}

// GetRole возвращает каноническую роль из контекста.
func GetRole(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalRole).(string)
	return v
}

// GetRoleDisplay возвращает сырой текст должности из контекста.
func GetRoleDisplay(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalRoleDisplay).(string)
	return v
}
