package usecase

import (
	"mongo-crud-api/internal/user"
	"mongo-crud-api/internal/user/repository"
	"mongo-crud-api/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates a new user UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
