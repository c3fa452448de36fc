// Package role нормализует свободный текст должности сотрудника
// ("Шеф-повар", "Менеджер зала") в каноническую роль для авторизации.
package role

import "strings"

// Канонические роли. Закрытый набор: маршруты объявляют allow-list из этих
// значений. HeadChef входит в набор ради совместимости allow-list'ов, но
// таблица правил его не порождает: варианты "шеф" схлопываются в Chef.
const (
	Admin    = "admin"
	Manager  = "manager"
	Analyst  = "analyst"
	HeadChef = "head_chef"
	Chef     = "chef"
	Waiter   = "waiter"
	Barista  = "barista"
	Employee = "employee"
)

// rule — одна пара (ключевые подстроки, каноническая роль).
type rule struct {
	keywords []string
	role     string
}

// rules проверяются строго сверху вниз: первая совпавшая выигрывает.
// Порядок — часть контракта: "Шеф-повар" содержит и "шеф", и "повар",
// обе подстроки дают Chef; "менедж" проверяется раньше, чтобы
// "Менеджер кухни" не уходил в другие группы.
var rules = []rule{
	{[]string{"админ", "admin"}, Admin},
	{[]string{"менедж", "manager"}, Manager},
	{[]string{"аналит", "analyst"}, Analyst},
	{[]string{"шеф", "повар", "chef"}, Chef},
	{[]string{"официант", "waiter"}, Waiter},
	{[]string{"бариста", "barista"}, Barista},
}

// Normalize приводит свободный текст должности к канонической роли.
// Чистая и тотальная: никогда не паникует, стабильна для одинакового входа.
// Пустой вход даёт Employee; вход без известных подстрок возвращается как есть
// (такая роль не пройдёт ни один allow-list).
func Normalize(raw string) string {
	if raw == "" {
		return Employee
	}
	lower := strings.ToLower(raw)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.role
			}
		}
	}
	return raw
}

// IsCanonical сообщает, является ли значение одной из канонических ролей.
func IsCanonical(r string) bool {
	switch r {
	case Admin, Manager, Analyst, HeadChef, Chef, Waiter, Barista, Employee:
		return true
	}
	return false
}
