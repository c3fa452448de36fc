// Команда seed наполняет базу демонстрационными данными: заведения,
// сотрудники с должностями, поставщики, склад и меню. Повторный запуск
// безопасен, вставки идут с ON CONFLICT DO NOTHING.
package main

import (
	"context"

	"github.com/restsystem/restaurant-api/internal/infrastructure/postgres"
	"github.com/restsystem/restaurant-api/pkg/config"
	"github.com/restsystem/restaurant-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("загрузка конфигурации: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	if err := postgres.Migrate(ctx, cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("миграции схемы")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("подключение к PostgreSQL")
	}
	defer pool.Close()

	for _, stmt := range seedStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatal().Err(err).Str("stmt", stmt[:min(len(stmt), 60)]).Msg("сидирование")
		}
	}

	log.Info().Msg("демо-данные загружены")
}

var seedStatements = []string{
	`INSERT INTO establishments (establishment_id, name, address)
	 VALUES
	   (1, 'Ресторан на Невском', 'Невский проспект, 28'),
	   (2, 'Гриль-бар на Рубинштейна', 'ул. Рубинштейна, 15')
	 ON CONFLICT (establishment_id) DO NOTHING`,

	`INSERT INTO employees (employee_id, full_name, mail, experience, age, information)
	 VALUES
	   (1, 'Волков Андрей', 'volkov@rest.ru', '10 лет', 45, 'Управляющий сетью'),
	   (2, 'Морозова Елена', 'morozova@rest.ru', '5 лет', 32, 'Менеджер зала'),
	   (3, 'Соколов Дмитрий', 'sokolov@rest.ru', '12 лет', 40, 'Кухня'),
	   (4, 'Лебедева Ольга', 'lebedeva@rest.ru', '2 года', 24, 'Зал'),
	   (5, 'Козлов Артём', 'kozlov@rest.ru', '1 год', 22, 'Бар'),
	   (6, 'Павлова Мария', 'pavlova@rest.ru', '4 года', 29, 'Отчётность')
	 ON CONFLICT (employee_id) DO NOTHING`,

	`INSERT INTO est_empl (establishment_id, employee_id, position)
	 VALUES
	   (1, 1, 'Администратор'),
	   (1, 2, 'Менеджер зала'),
	   (1, 3, 'Шеф-повар'),
	   (1, 4, 'Официант'),
	   (2, 5, 'Бариста'),
	   (1, 6, 'Аналитик')
	 ON CONFLICT DO NOTHING`,

	`INSERT INTO suppliers (supplier_id, supplier_name, phone)
	 VALUES
	   (1, 'Мясной двор', '+7 (812) 333-10-10'),
	   (2, 'Овощи и зелень СПб', '+7 (812) 333-20-20'),
	   (3, 'Морепродукты Балтики', '+7 (812) 333-30-30')
	 ON CONFLICT (supplier_id) DO NOTHING`,

	`INSERT INTO ingredients
	   (ingredient_id, ingredient_name, quantity, unit, date_of_delivery, expiration_date, supplier_id, establishment_id)
	 VALUES
	   (1, 'Говядина рибай', 25, 'кг', CURRENT_DATE - 2, CURRENT_DATE + 5, 1, 1),
	   (2, 'Салат романо', 8, 'кг', CURRENT_DATE - 1, CURRENT_DATE + 2, 2, 1),
	   (3, 'Сыр пармезан', 5, 'кг', CURRENT_DATE - 7, CURRENT_DATE + 30, 2, 1),
	   (4, 'Креветки тигровые', 12, 'кг', CURRENT_DATE - 1, CURRENT_DATE + 4, 3, 2),
	   (5, 'Свинина шея', 18, 'кг', CURRENT_DATE - 3, CURRENT_DATE + 3, 1, 2),
	   (6, 'Маскарпоне', 3, 'кг', CURRENT_DATE - 5, CURRENT_DATE + 7, 2, 1)
	 ON CONFLICT (ingredient_id) DO NOTHING`,

	`INSERT INTO dishes (dish_id, dish_name, category, price, cooking_time, availability)
	 VALUES
	   (1, 'Стейк Рибай', 'Вторые блюда', 1200, '00:30:00', true),
	   (2, 'Салат Цезарь', 'Закуски', 450, '00:10:00', true),
	   (3, 'Тирамису', 'Десерты', 350, '00:15:00', true),
	   (4, 'Кола', 'Напитки', 150, '00:01:00', true),
	   (5, 'Шашлык из свинины', 'На мангале', 800, '00:25:00', false)
	 ON CONFLICT (dish_id) DO NOTHING`,

	`INSERT INTO dish_ingredients (dish_id, ingredient_id, required_quantity)
	 VALUES
	   (1, 1, 0.4),
	   (2, 2, 0.15),
	   (2, 3, 0.05),
	   (3, 6, 0.2),
	   (5, 5, 0.5)
	 ON CONFLICT DO NOTHING`,

	`INSERT INTO orders (order_id, type, datetime, status, establishment_id, table_number, employee_id)
	 VALUES
	   (1, 'offline', NOW() - INTERVAL '2 days', 'Завершен', 1, 5, 4),
	   (2, 'offline', NOW() - INTERVAL '1 day',  'Завершен', 1, 3, 4),
	   (3, 'online',  NOW() - INTERVAL '3 hours', 'В процессе', 1, NULL, 2)
	 ON CONFLICT (order_id) DO NOTHING`,

	`UPDATE orders SET customer_address = 'ул. Марата, 10, кв. 42' WHERE order_id = 3 AND customer_address IS NULL`,

	`INSERT INTO positions (order_id, dish_id, quantity, notes, is_ready)
	 SELECT v.order_id, v.dish_id, v.quantity, v.notes, v.is_ready
	 FROM (VALUES
	   (1, 1, 1, 'Прожарка medium', true),
	   (1, 4, 2, '', true),
	   (2, 2, 1, 'Без гренок', true),
	   (2, 3, 2, '', true),
	   (3, 2, 1, '', false),
	   (3, 4, 1, '', true)
	 ) AS v(order_id, dish_id, quantity, notes, is_ready)
	 WHERE NOT EXISTS (SELECT 1 FROM positions p WHERE p.order_id = v.order_id AND p.dish_id = v.dish_id)`,

	`INSERT INTO bills (order_id, total_price, payment_method, tips, rating)
	 VALUES
	   (1, 1500, 'Карта', 150, 5),
	   (2, 1150, 'Наличные', 0, 4)
	 ON CONFLICT (order_id) DO NOTHING`,

	// Выравниваем последовательности после вставок с явными id.
	`SELECT setval('establishments_establishment_id_seq', (SELECT MAX(establishment_id) FROM establishments))`,
	`SELECT setval('employees_employee_id_seq', (SELECT MAX(employee_id) FROM employees))`,
	`SELECT setval('suppliers_supplier_id_seq', (SELECT MAX(supplier_id) FROM suppliers))`,
	`SELECT setval('ingredients_ingredient_id_seq', (SELECT MAX(ingredient_id) FROM ingredients))`,
	`SELECT setval('dishes_dish_id_seq', (SELECT MAX(dish_id) FROM dishes))`,
	`SELECT setval('orders_order_id_seq', (SELECT MAX(order_id) FROM orders))`,
}
