package dto

// RegisterRequest — вход регистрации. Роль передаётся свободным текстом
// ("Официант", "Менеджер зала"), каноническая роль выводится из него.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginRequest — вход аутентификации.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse — публичный профиль пользователя в токен-ответах.
// RoleDisplay — исходный текст должности, из которого выведена роль.
type UserResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	RoleDisplay string `json:"role_display,omitempty"`
}

// RegisterResponse — ответ регистрации. Токен не выдаётся, клиент логинится.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse — ответ входа.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// ProfileResponse — ответ /auth/profile.
type ProfileResponse struct {
	User UserResponse `json:"user"`
}
