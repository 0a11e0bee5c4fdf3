package usecase

import (
	"context"

	"mongo-crud-api/internal/item"
	repo "mongo-crud-api/internal/item/repository"
)

// Create persists a new Item.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Debugf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: created}, nil
}
