package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/restsystem/restaurant-api/internal/domain/entity"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo — реализация порта MenuRepository поверх PostgreSQL
// (работает и с пулом, и с транзакцией через Querier).
type MenuRepo struct {
	q Querier
}

// NewMenuRepository создаёт адаптер персистентности меню.
func NewMenuRepository(q Querier) *MenuRepo {
	return &MenuRepo{q: q}
}

// List возвращает блюда по аддитивным предикатам фильтра.
// calculated_availability — false, если по рецепту не хватает ингредиента
// или его срок годности вышел.
func (r *MenuRepo) List(ctx context.Context, f repository.DishFilter) ([]repository.DishRow, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT d.dish_id, d.dish_name, d.category, d.price, d.cooking_time, d.availability,
		       CASE
		         WHEN EXISTS (
		             SELECT 1
		             FROM dish_ingredients di
		             JOIN ingredients i ON di.ingredient_id = i.ingredient_id
		             WHERE di.dish_id = d.dish_id
		               AND (i.expiration_date < CURRENT_DATE OR i.quantity < di.required_quantity)
		         ) THEN false
		         ELSE true
		       END AS calculated_availability
		FROM dishes d
		WHERE 1=1`)

	var args []any
	if f.Category != "" {
		args = append(args, f.Category)
		fmt.Fprintf(&sb, " AND d.category = $%d::dish_type", len(args))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		fmt.Fprintf(&sb, " AND d.price >= $%d", len(args))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		fmt.Fprintf(&sb, " AND d.price <= $%d", len(args))
	}
	if f.OnlyAvailable {
		sb.WriteString(" AND d.availability = true")
	}
	sb.WriteString(" ORDER BY d.dish_name")

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	defer rows.Close()

	var list []repository.DishRow
	for rows.Next() {
		var row repository.DishRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Category, &row.Price, &row.CookingTime,
			&row.Availability, &row.CalculatedAvailability); err != nil {
			return nil, fmt.Errorf("scan dish: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Categories возвращает значения enum dish_type в порядке объявления.
func (r *MenuRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT unnest(enum_range(NULL::dish_type)) AS category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID возвращает блюдо с рецептом или (nil, nil).
func (r *MenuRepo) GetByID(ctx context.Context, id int64) (*repository.DishDetails, error) {
	query := `
		SELECT dish_id, dish_name, category, price, cooking_time, availability
		FROM dishes WHERE dish_id = $1`
	var det repository.DishDetails
	err := r.q.QueryRow(ctx, query, id).Scan(
		&det.ID, &det.Name, &det.Category, &det.Price, &det.CookingTime, &det.Availability,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dish: %w", err)
	}

	ingQuery := `
		SELECT i.ingredient_id, i.ingredient_name, di.required_quantity, i.unit
		FROM dish_ingredients di
		JOIN ingredients i ON di.ingredient_id = i.ingredient_id
		WHERE di.dish_id = $1
		ORDER BY i.ingredient_name`
	rows, err := r.q.Query(ctx, ingQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list dish ingredients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ing repository.DishIngredientRow
		if err := rows.Scan(&ing.IngredientID, &ing.IngredientName, &ing.RequiredQuantity, &ing.Unit); err != nil {
			return nil, fmt.Errorf("scan dish ingredient: %w", err)
		}
		det.Ingredients = append(det.Ingredients, ing)
	}
	return &det, rows.Err()
}

// Create вставляет блюдо (availability = true) и проставляет d.ID.
func (r *MenuRepo) Create(ctx context.Context, d *entity.Dish) error {
	query := `
		INSERT INTO dishes (dish_name, category, price, cooking_time, availability)
		VALUES ($1, $2, $3, $4, true)
		RETURNING dish_id`
	d.Availability = true
	err := r.q.QueryRow(ctx, query, d.Name, d.Category, d.Price, d.CookingTime).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert dish: %w", err)
	}
	return nil
}

// AddIngredient вставляет строку рецепта.
func (r *MenuRepo) AddIngredient(ctx context.Context, di *entity.DishIngredient) error {
	query := `
		INSERT INTO dish_ingredients (dish_id, ingredient_id, required_quantity)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, di.DishID, di.IngredientID, di.RequiredQuantity)
	if err != nil {
		return fmt.Errorf("insert dish ingredient: %w", err)
	}
	return nil
}

// Update применяет частичное обновление через COALESCE; (nil, nil) — блюда нет.
func (r *MenuRepo) Update(ctx context.Context, id int64, u repository.DishUpdate) (*entity.Dish, error) {
	query := `
		UPDATE dishes
		SET dish_name    = COALESCE($1, dish_name),
		    category     = COALESCE($2::dish_type, category),
		    price        = COALESCE($3, price),
		    cooking_time = COALESCE($4, cooking_time),
		    availability = COALESCE($5, availability)
		WHERE dish_id = $6
		RETURNING dish_id, dish_name, category, price, cooking_time, availability`
	var d entity.Dish
	err := r.q.QueryRow(ctx, query, u.Name, u.Category, u.Price, u.CookingTime, u.Availability, id).Scan(
		&d.ID, &d.Name, &d.Category, &d.Price, &d.CookingTime, &d.Availability,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update dish: %w", err)
	}
	return &d, nil
}

// Delete удаляет блюдо (рецепт уходит каскадом); false — блюда не было.
func (r *MenuRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM dishes WHERE dish_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete dish: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
