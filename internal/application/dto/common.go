package dto

// ErrorResponse — единый формат ошибки API: {"error": "<сообщение>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse — ответ операций, возвращающих только подтверждение.
type MessageResponse struct {
	Message string `json:"message"`
}
