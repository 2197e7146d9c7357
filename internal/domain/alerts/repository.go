package alerts

import "context"

type Repository interface {
	ListByHorse(ctx context.Context, horseID string) ([]Alert, error)
}
