package horses

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("horse not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Horse, error) {
	return s.repo.List(ctx)
}

// GetByID normaliza cualquier error del repo a ErrNotFound (el repo es in-memory).
func (s *Service) GetByID(ctx context.Context, id string) (Horse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Horse{}, ErrInvalidInput
	}
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Horse{}, ErrNotFound
	}
	return h, nil
}

// Default es el caballo que se selecciona al abrir una sesión (el primero del listado).
func (s *Service) Default(ctx context.Context) (Horse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return Horse{}, err
	}
	if len(items) == 0 {
		return Horse{}, ErrNotFound
	}
	return items[0], nil
}
