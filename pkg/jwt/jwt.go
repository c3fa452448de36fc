package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims — стандартные JWT-клеймы плюс поля приложения.
// RoleDisplay хранит исходный текст должности ("Шеф-повар"); Role — снимок
// канонической роли на момент выдачи. Снимку нельзя доверять при проверке:
// каноническая роль пересчитывается из RoleDisplay на каждом запросе.
type Claims struct {
	jwt.RegisteredClaims
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	RoleDisplay string `json:"role_display"`
}

// Generate выдаёт подписанный HS256-токен со сроком жизни expHours часов.
func Generate(secret string, userID int64, email, name, role, roleDisplay, issuer string, expHours int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: пустой секрет")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expHours) * time.Hour)),
		},
		UserID:      userID,
		Email:       email,
		Name:        name,
		Role:        role,
		RoleDisplay: roleDisplay,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse проверяет подпись и срок действия токена и возвращает клеймы.
// Ошибка при неверной подписи, искажённом payload или истёкшем exp.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: пустой секрет")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("невалидные клеймы")
	}
	return claims, nil
}
