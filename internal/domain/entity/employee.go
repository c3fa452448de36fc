package entity

// Employee — кадровая запись сотрудника. Создаётся при регистрации или
// сидированием; после создания меняются только профильные поля.
type Employee struct {
	ID          int64
	FullName    string
	Mail        string
	Experience  string
	Age         int
	Information string
}
