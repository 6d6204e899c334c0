package usecase

import (
	"relationship-os/internal/person/repository"
	"relationship-os/pkg/log"
)

// implUseCase is the private implementation of person.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new person UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
