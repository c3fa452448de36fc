package role_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/restsystem/restaurant-api/internal/domain/role"
)

// Фиксированное соответствие текстов должностей каноническим ролям.
// Порядок правил — часть контракта, поэтому случаи с несколькими
// совпадающими подстроками закреплены явно.
func TestNormalize_FixedMapping(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Администратор", role.Admin},
		{"admin", role.Admin},
		{"Менеджер зала", role.Manager},
		{"Менеджер кухни", role.Manager},
		{"Аналитик", role.Analyst},
		{"Шеф-повар", role.Chef}, // и "шеф", и "повар" дают chef
		{"Повар", role.Chef},
		{"Су-шеф", role.Chef},
		{"Официант", role.Waiter},
		{"Старший официант", role.Waiter},
		{"Бариста", role.Barista},
		{"", role.Employee},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, role.Normalize(tc.raw), "raw=%q", tc.raw)
	}
}

func TestNormalize_CaseInsensitive(t *testing.T) {
	assert.Equal(t, role.Admin, role.Normalize("АДМИНИСТРАТОР"))
	assert.Equal(t, role.Chef, role.Normalize("ШЕФ-ПОВАР"))
	assert.Equal(t, role.Manager, role.Normalize("MANAGER"))
}

// Неизвестный текст возвращается как есть: такая "роль" не входит
// ни в один allow-list и доступ не получит.
func TestNormalize_UnknownPassthrough(t *testing.T) {
	assert.Equal(t, "Сомелье", role.Normalize("Сомелье"))
	assert.False(t, role.IsCanonical(role.Normalize("Сомелье")))
}

// Повторная нормализация канонического значения ничего не меняет.
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Администратор", "Менеджер зала", "Шеф-повар", "Официант", "Бариста", "Аналитик", ""}
	for _, raw := range inputs {
		once := role.Normalize(raw)
		assert.Equal(t, once, role.Normalize(once), "raw=%q", raw)
	}
}

func TestNormalize_StableAcrossCalls(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, role.Chef, role.Normalize("Шеф-повар"))
	}
}

func TestIsCanonical(t *testing.T) {
	for _, r := range []string{role.Admin, role.Manager, role.Analyst, role.HeadChef, role.Chef, role.Waiter, role.Barista, role.Employee} {
		assert.True(t, role.IsCanonical(r), r)
	}
	assert.False(t, role.IsCanonical("Шеф-повар"))
	assert.False(t, role.IsCanonical(""))
}
