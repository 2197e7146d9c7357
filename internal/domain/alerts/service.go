package alerts

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("alert not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByHorse(ctx context.Context, horseID string) ([]Alert, error) {
	return s.repo.ListByHorse(ctx, horseID)
}

func (s *Service) GetByID(ctx context.Context, horseID, id string) (Alert, error) {
	id = strings.TrimSpace(id)
	items, err := s.repo.ListByHorse(ctx, horseID)
	if err != nil {
		return Alert{}, err
	}
	for _, a := range items {
		if a.ID == id {
			return a, nil
		}
	}
	return Alert{}, ErrNotFound
}
