package usecase

import (
	"context"

	"mongo-crud-api/internal/item"
)

// List returns every Item, newest first.
func (uc *implUseCase) List(ctx context.Context) (item.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	return item.ListItemsOutput{
		Items: items,
		Count: len(items),
	}, nil
}
