package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/restsystem/restaurant-api/internal/domain/entity"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// Порог "мало на складе" в единицах хранения ингредиента.
const lowStockThreshold = 10

// InventoryRepo — реализация порта InventoryRepository поверх PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository создаёт адаптер персистентности склада.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const ingredientColumns = `
	i.ingredient_id, i.ingredient_name, i.quantity, i.unit,
	i.date_of_delivery, i.expiration_date, i.supplier_id, i.establishment_id,
	s.supplier_name,
	es.name AS establishment_name,
	CASE
	  WHEN i.expiration_date < CURRENT_DATE THEN 'Просрочен'
	  WHEN i.expiration_date <= CURRENT_DATE + INTERVAL '3 days' THEN 'Скоро истекает'
	  ELSE 'Норма'
	END AS expiration_status,
	i.expiration_date - CURRENT_DATE AS days_until_expiry`

const ingredientJoins = `
	FROM ingredients i
	JOIN suppliers s       ON i.supplier_id = s.supplier_id
	JOIN establishments es ON i.establishment_id = es.establishment_id`

func scanIngredientRow(row pgx.Row, r *repository.IngredientRow) error {
	return row.Scan(
		&r.ID, &r.Name, &r.Quantity, &r.Unit,
		&r.DateOfDelivery, &r.ExpirationDate, &r.SupplierID, &r.EstablishmentID,
		&r.SupplierName, &r.EstablishmentName, &r.ExpirationStatus, &r.DaysUntilExpiry,
	)
}

// List возвращает ингредиенты, опционально сужая по заведению.
func (r *InventoryRepo) List(ctx context.Context, establishmentID *int64) ([]repository.IngredientRow, error) {
	query := `SELECT ` + ingredientColumns + ingredientJoins + ` WHERE 1=1`
	var args []any
	if establishmentID != nil {
		args = append(args, *establishmentID)
		query += ` AND i.establishment_id = $1`
	}
	query += ` ORDER BY i.expiration_date ASC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	var list []repository.IngredientRow
	for rows.Next() {
		var row repository.IngredientRow
		if err := scanIngredientRow(rows, &row); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// LowStock возвращает ингредиенты с остатком ниже порога
// вместе с суммарной потребностью по рецептам.
func (r *InventoryRepo) LowStock(ctx context.Context) ([]repository.LowStockRow, error) {
	query := `
		SELECT ` + ingredientColumns + `,
		       (SELECT SUM(required_quantity)
		        FROM dish_ingredients di
		        WHERE di.ingredient_id = i.ingredient_id) AS total_required` +
		ingredientJoins + `
		WHERE i.quantity < $1
		ORDER BY i.quantity ASC`

	rows, err := r.q.Query(ctx, query, lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Quantity, &row.Unit,
			&row.DateOfDelivery, &row.ExpirationDate, &row.SupplierID, &row.EstablishmentID,
			&row.SupplierName, &row.EstablishmentName, &row.ExpirationStatus, &row.DaysUntilExpiry,
			&row.TotalRequired,
		); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ExpiringSoon возвращает ингредиенты со сроком годности в ближайшие 7 дней.
func (r *InventoryRepo) ExpiringSoon(ctx context.Context) ([]repository.IngredientRow, error) {
	query := `SELECT ` + ingredientColumns + ingredientJoins + `
		WHERE i.expiration_date BETWEEN CURRENT_DATE AND CURRENT_DATE + INTERVAL '7 days'
		ORDER BY i.expiration_date ASC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list expiring soon: %w", err)
	}
	defer rows.Close()

	var list []repository.IngredientRow
	for rows.Next() {
		var row repository.IngredientRow
		if err := scanIngredientRow(rows, &row); err != nil {
			return nil, fmt.Errorf("scan expiring soon: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetByID возвращает ингредиент или (nil, nil), если записи нет.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*repository.IngredientRow, error) {
	query := `SELECT ` + ingredientColumns + ingredientJoins + ` WHERE i.ingredient_id = $1`
	var row repository.IngredientRow
	err := scanIngredientRow(r.q.QueryRow(ctx, query, id), &row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return &row, nil
}

// Create вставляет ингредиент и проставляет i.ID.
func (r *InventoryRepo) Create(ctx context.Context, i *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients
		(ingredient_name, quantity, unit, date_of_delivery, expiration_date, supplier_id, establishment_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ingredient_id`
	err := r.q.QueryRow(ctx, query,
		i.Name, i.Quantity, i.Unit, i.DateOfDelivery, i.ExpirationDate, i.SupplierID, i.EstablishmentID,
	).Scan(&i.ID)
	if err != nil {
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// Update применяет частичное обновление через COALESCE:
// nil-аргумент оставляет сохранённое значение нетронутым.
func (r *InventoryRepo) Update(ctx context.Context, id int64, u repository.IngredientUpdate) (*entity.Ingredient, error) {
	query := `
		UPDATE ingredients
		SET quantity        = COALESCE($1, quantity),
		    expiration_date = COALESCE($2, expiration_date),
		    ingredient_name = COALESCE($3, ingredient_name)
		WHERE ingredient_id = $4
		RETURNING ingredient_id, ingredient_name, quantity, unit, date_of_delivery, expiration_date, supplier_id, establishment_id`
	var i entity.Ingredient
	err := r.q.QueryRow(ctx, query, u.Quantity, u.ExpirationDate, u.Name, id).Scan(
		&i.ID, &i.Name, &i.Quantity, &i.Unit, &i.DateOfDelivery, &i.ExpirationDate, &i.SupplierID, &i.EstablishmentID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update ingredient: %w", err)
	}
	return &i, nil
}

// Delete удаляет ингредиент; false — записи не было.
func (r *InventoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM ingredients WHERE ingredient_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete ingredient: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Suppliers возвращает всех поставщиков по имени.
func (r *InventoryRepo) Suppliers(ctx context.Context) ([]entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT supplier_id, supplier_name, phone FROM suppliers ORDER BY supplier_name`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
