package usecase

import (
	"context"

	"mongo-crud-api/internal/user"
	repo "mongo-crud-api/internal/user/repository"
)

func (uc *implUseCase) Create(ctx context.Context, input user.CreateUserInput) (user.CreateUserOutput, error) {
	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		uc.l.Debugf(ctx, "uc.Create CreateUser: %v", err)
		return user.CreateUserOutput{}, err
	}
	return user.CreateUserOutput{User: created}, nil
}

func (uc *implUseCase) List(ctx context.Context) (user.ListUsersOutput, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListUsers: %v", err)
		return user.ListUsersOutput{}, err
	}
	return user.ListUsersOutput{Users: users, Count: len(users)}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (user.DetailUserOutput, error) {
	found, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return user.DetailUserOutput{}, err
	}
	if found.ID == "" {
		return user.DetailUserOutput{}, user.ErrUserNotFound
	}
	return user.DetailUserOutput{User: found}, nil
}

// Update succeeds whenever the user exists, including when nothing changes.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateUserInput) (user.UpdateUserOutput, error) {
	updated, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:    input.ID,
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		uc.l.Debugf(ctx, "uc.Update UpdateUser: %v", err)
		return user.UpdateUserOutput{}, err
	}
	if updated.ID == "" {
		return user.UpdateUserOutput{}, user.ErrUserNotFound
	}
	return user.UpdateUserOutput{User: updated}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.repo.DeleteUser(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteUser: %v", err)
		return err
	}
	if !deleted {
		return user.ErrUserNotFound
	}
	return nil
}
