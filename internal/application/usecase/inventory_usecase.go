package usecase

import (
	"context"

	"github.com/restsystem/restaurant-api/internal/application/dto"
	"github.com/restsystem/restaurant-api/internal/domain"
	"github.com/restsystem/restaurant-api/internal/domain/entity"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

// InventoryUseCase — операции над складом.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase собирает кейс склада.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// List возвращает склад, опционально по одному заведению.
func (uc *InventoryUseCase) List(ctx context.Context, establishmentID *int64) ([]dto.IngredientResponse, error) {
	rows, err := uc.repo.List(ctx, establishmentID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.IngredientResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ToIngredientResponse(r))
	}
	return result, nil
}

// LowStock возвращает ингредиенты с остатком ниже порога.
func (uc *InventoryUseCase) LowStock(ctx context.Context) ([]dto.LowStockResponse, error) {
	rows, err := uc.repo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.LowStockResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.LowStockResponse{
			IngredientResponse: dto.ToIngredientResponse(r.IngredientRow),
			TotalRequired:      r.TotalRequired,
		})
	}
	return result, nil
}

// ExpiringSoon возвращает ингредиенты с истекающим сроком годности.
func (uc *InventoryUseCase) ExpiringSoon(ctx context.Context) ([]dto.IngredientResponse, error) {
	rows, err := uc.repo.ExpiringSoon(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.IngredientResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ToIngredientResponse(r))
	}
	return result, nil
}

// Get возвращает ингредиент по id.
func (uc *InventoryUseCase) Get(ctx context.Context, id int64) (*dto.IngredientResponse, error) {
	row, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToIngredientResponse(*row)
	return &resp, nil
}

// Create добавляет ингредиент на склад.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.CreateIngredientRequest) (*dto.CreateIngredientResponse, error) {
	ingredient := &entity.Ingredient{
		Name:            in.IngredientName,
		Quantity:        in.Quantity,
		Unit:            in.Unit,
		DateOfDelivery:  in.DateOfDelivery,
		ExpirationDate:  in.ExpirationDate,
		SupplierID:      in.SupplierID,
		EstablishmentID: in.EstablishmentID,
	}
	if err := uc.repo.Create(ctx, ingredient); err != nil {
		return nil, err
	}
	return &dto.CreateIngredientResponse{
		Message:    "Ингредиент успешно добавлен",
		Ingredient: dto.ToIngredientResponseFromEntity(ingredient),
	}, nil
}

// Update применяет частичное обновление: незаданные поля не меняются.
func (uc *InventoryUseCase) Update(ctx context.Context, id int64, in dto.UpdateIngredientRequest) (*dto.UpdateIngredientResponse, error) {
	ingredient, err := uc.repo.Update(ctx, id, repository.IngredientUpdate{
		Quantity:       in.Quantity,
		ExpirationDate: in.ExpirationDate,
		Name:           in.IngredientName,
	})
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.UpdateIngredientResponse{
		Message:    "Ингредиент успешно обновлен",
		Ingredient: dto.ToIngredientResponseFromEntity(ingredient),
	}, nil
}

// Delete удаляет ингредиент.
func (uc *InventoryUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, domain.ErrNotFound
	}
	return &dto.MessageResponse{Message: "Ингредиент успешно удален"}, nil
}

// Suppliers возвращает всех поставщиков.
func (uc *InventoryUseCase) Suppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.Suppliers(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		result = append(result, dto.ToSupplierResponse(s))
	}
	return result, nil
}
