package entity

import "time"

// UserAccount — учётная запись для входа, отдельная от кадровой записи.
// Role — снимок канонической роли на момент создания; источником истины
// остаётся текст должности в est_empl, роль пересчитывается при каждом входе.
type UserAccount struct {
	AccountID    int64
	EmployeeID   int64
	Email        string
	PasswordHash string // bcrypt, в домене никогда не появляется в открытом виде
	Role         string
	CreatedAt    time.Time
}
