package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restsystem/restaurant-api/internal/application/dto"
	"github.com/restsystem/restaurant-api/internal/application/usecase"
	"github.com/restsystem/restaurant-api/internal/domain"
	"github.com/restsystem/restaurant-api/internal/domain/entity"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

type fakeInventoryRepo struct {
	ingredients map[int64]*entity.Ingredient
	suppliers   []entity.Supplier
	nextID      int64
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{ingredients: make(map[int64]*entity.Ingredient)}
}

func (r *fakeInventoryRepo) List(_ context.Context, establishmentID *int64) ([]repository.IngredientRow, error) {
	var rows []repository.IngredientRow
	for _, i := range r.ingredients {
		if establishmentID != nil && i.EstablishmentID != *establishmentID {
			continue
		}
		rows = append(rows, repository.IngredientRow{Ingredient: *i})
	}
	return rows, nil
}

func (r *fakeInventoryRepo) LowStock(_ context.Context) ([]repository.LowStockRow, error) {
	return nil, nil
}

func (r *fakeInventoryRepo) ExpiringSoon(_ context.Context) ([]repository.IngredientRow, error) {
	return nil, nil
}

func (r *fakeInventoryRepo) GetByID(_ context.Context, id int64) (*repository.IngredientRow, error) {
	i, ok := r.ingredients[id]
	if !ok {
		return nil, nil
	}
	return &repository.IngredientRow{Ingredient: *i}, nil
}

func (r *fakeInventoryRepo) Create(_ context.Context, i *entity.Ingredient) error {
	r.nextID++
	i.ID = r.nextID
	clone := *i
	r.ingredients[i.ID] = &clone
	return nil
}

// Update повторяет COALESCE-семантику SQL: nil-поле не трогается.
func (r *fakeInventoryRepo) Update(_ context.Context, id int64, u repository.IngredientUpdate) (*entity.Ingredient, error) {
	i, ok := r.ingredients[id]
	if !ok {
		return nil, nil
	}
	if u.Quantity != nil {
		i.Quantity = *u.Quantity
	}
	if u.ExpirationDate != nil {
		i.ExpirationDate = *u.ExpirationDate
	}
	if u.Name != nil {
		i.Name = *u.Name
	}
	clone := *i
	return &clone, nil
}

func (r *fakeInventoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.ingredients[id]; !ok {
		return false, nil
	}
	delete(r.ingredients, id)
	return true, nil
}

func (r *fakeInventoryRepo) Suppliers(_ context.Context) ([]entity.Supplier, error) {
	return r.suppliers, nil
}

func seedIngredient(t *testing.T, repo *fakeInventoryRepo) *entity.Ingredient {
	t.Helper()
	i := &entity.Ingredient{
		Name:            "Говядина рибай",
		Quantity:        decimal.NewFromInt(25),
		Unit:            "кг",
		DateOfDelivery:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ExpirationDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		SupplierID:      1,
		EstablishmentID: 1,
	}
	require.NoError(t, repo.Create(context.Background(), i))
	return i
}

func TestUpdateIngredient_QuantityOnly_PreservesOtherFields(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := usecase.NewInventoryUseCase(repo)
	seeded := seedIngredient(t, repo)

	qty := decimal.NewFromInt(3)
	resp, err := uc.Update(context.Background(), seeded.ID, dto.UpdateIngredientRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, "Ингредиент успешно обновлен", resp.Message)

	stored := repo.ingredients[seeded.ID]
	assert.True(t, stored.Quantity.Equal(qty))
	assert.Equal(t, "Говядина рибай", stored.Name)
	assert.Equal(t, "кг", stored.Unit)
	assert.Equal(t, seeded.ExpirationDate, stored.ExpirationDate)
	assert.Equal(t, seeded.SupplierID, stored.SupplierID)
}

func TestUpdateIngredient_Unknown_ReturnsNotFound(t *testing.T) {
	uc := usecase.NewInventoryUseCase(newFakeInventoryRepo())

	name := "Лосось"
	_, err := uc.Update(context.Background(), 777, dto.UpdateIngredientRequest{IngredientName: &name})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateIngredient_AssignsID(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := usecase.NewInventoryUseCase(repo)

	resp, err := uc.Create(context.Background(), dto.CreateIngredientRequest{
		IngredientName:  "Маскарпоне",
		Quantity:        decimal.NewFromInt(3),
		Unit:            "кг",
		DateOfDelivery:  time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		ExpirationDate:  time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		SupplierID:      2,
		EstablishmentID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ингредиент успешно добавлен", resp.Message)
	assert.NotZero(t, resp.Ingredient.IngredientID)
	assert.Len(t, repo.ingredients, 1)
}

func TestListIngredients_FiltersByEstablishment(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := usecase.NewInventoryUseCase(repo)
	ctx := context.Background()

	first := seedIngredient(t, repo)
	other := &entity.Ingredient{
		Name:            "Креветки тигровые",
		Quantity:        decimal.NewFromInt(12),
		Unit:            "кг",
		ExpirationDate:  time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
		SupplierID:      3,
		EstablishmentID: 2,
	}
	require.NoError(t, repo.Create(ctx, other))

	rows, err := uc.List(ctx, int64Ptr(1))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, first.ID, rows[0].IngredientID)

	all, err := uc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetIngredient_Unknown_ReturnsNotFound(t *testing.T) {
	uc := usecase.NewInventoryUseCase(newFakeInventoryRepo())

	_, err := uc.Get(context.Background(), 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteIngredient_SecondDeleteReturnsNotFound(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := usecase.NewInventoryUseCase(repo)
	seeded := seedIngredient(t, repo)

	resp, err := uc.Delete(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ингредиент успешно удален", resp.Message)

	_, err = uc.Delete(context.Background(), seeded.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSuppliers_ReturnsAll(t *testing.T) {
	repo := newFakeInventoryRepo()
	repo.suppliers = []entity.Supplier{
		{ID: 1, Name: "Мясной двор", Phone: "+7 (812) 333-10-10"},
		{ID: 2, Name: "Овощи и зелень СПб", Phone: "+7 (812) 333-20-20"},
	}
	uc := usecase.NewInventoryUseCase(repo)

	rows, err := uc.Suppliers(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Мясной двор", rows[0].SupplierName)
}
