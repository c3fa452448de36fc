package usecase

import (
	"context"

	"github.com/restsystem/restaurant-api/internal/application/dto"
	"github.com/restsystem/restaurant-api/internal/domain"
	"github.com/restsystem/restaurant-api/internal/domain/entity"
	"github.com/restsystem/restaurant-api/internal/domain/repository"
)

// MenuTxRunner выполняет запись блюда с рецептом в одной транзакции.
type MenuTxRunner interface {
	RunMenu(ctx context.Context, fn func(menuRepo repository.MenuRepository) error) error
}

// MenuUseCase — операции над меню.
type MenuUseCase struct {
	repo     repository.MenuRepository
	txRunner MenuTxRunner
}

// NewMenuUseCase собирает кейс меню.
func NewMenuUseCase(repo repository.MenuRepository, txRunner MenuTxRunner) *MenuUseCase {
	return &MenuUseCase{repo: repo, txRunner: txRunner}
}

// List возвращает блюда по аддитивным фильтрам с вычисленной доступностью.
func (uc *MenuUseCase) List(ctx context.Context, f repository.DishFilter) ([]dto.DishResponse, error) {
	rows, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	result := make([]dto.DishResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.ToDishResponse(r))
	}
	return result, nil
}

// Categories возвращает значения перечисления категорий.
func (uc *MenuUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.repo.Categories(ctx)
}

// Get возвращает карточку блюда с рецептом.
func (uc *MenuUseCase) Get(ctx context.Context, id int64) (*dto.DishDetailsResponse, error) {
	details, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToDishDetailsResponse(details)
	return &resp, nil
}

// Create создаёт блюдо и его рецепт атомарно.
func (uc *MenuUseCase) Create(ctx context.Context, in dto.CreateDishRequest) (*dto.CreateDishResponse, error) {
	dish := &entity.Dish{
		Name:        in.DishName,
		Category:    in.Category,
		Price:       in.Price,
		CookingTime: in.CookingTime,
	}

	err := uc.txRunner.RunMenu(ctx, func(menuRepo repository.MenuRepository) error {
		if err := menuRepo.Create(ctx, dish); err != nil {
			return err
		}
		for _, i := range in.Ingredients {
			di := &entity.DishIngredient{
				DishID:           dish.ID,
				IngredientID:     i.IngredientID,
				RequiredQuantity: i.RequiredQuantity,
			}
			if err := menuRepo.AddIngredient(ctx, di); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateDishResponse{
		Message: "Блюдо успешно создано",
		Dish:    dto.ToDishResponseFromEntity(dish),
	}, nil
}

// Update применяет частичное обновление блюда.
func (uc *MenuUseCase) Update(ctx context.Context, id int64, in dto.UpdateDishRequest) (*dto.UpdateDishResponse, error) {
	dish, err := uc.repo.Update(ctx, id, repository.DishUpdate{
		Name:         in.DishName,
		Category:     in.Category,
		Price:        in.Price,
		CookingTime:  in.CookingTime,
		Availability: in.Availability,
	})
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.UpdateDishResponse{
		Message: "Блюдо успешно обновлено",
		Dish:    dto.ToDishResponseFromEntity(dish),
	}, nil
}

// Delete удаляет блюдо вместе с рецептом (каскад в схеме).
func (uc *MenuUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, domain.ErrNotFound
	}
	return &dto.MessageResponse{Message: "Блюдо успешно удалено"}, nil
}
